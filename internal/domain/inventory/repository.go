package inventory

import (
	"context"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRepository defines the interface for inventory item persistence
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByName finds an item by its lower-cased product name
	FindByName(ctx context.Context, productName string) (*Item, error)

	// FindByCode finds an item by its generated code
	FindByCode(ctx context.Context, code string) (*Item, error)

	// FindByIDs finds multiple items by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)

	// FindAll finds items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)

	// Count counts items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks whether another item already uses the product name
	ExistsByName(ctx context.Context, productName string, excludeID uuid.UUID) (bool, error)

	// ExistsByCode checks whether any item already uses the code
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// SumTotalValue sums the stock value across all items
	SumTotalValue(ctx context.Context) (decimal.Decimal, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockBatchRepository defines the interface for stock batch persistence.
// Batches are children of the Item aggregate: every mutation here must run in
// the same transaction as the item rollup it invalidates.
type StockBatchRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockBatch, error)

	// FindByItem finds all batches of an item, newest purchase first
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]StockBatch, error)

	// FindActiveByItem finds the item's consumable batches, oldest purchase first
	FindActiveByItem(ctx context.Context, itemID uuid.UUID) ([]*StockBatch, error)

	// FindByPurchase finds all batches created by a purchase
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]StockBatch, error)

	// HasConsumedStock reports whether any batch of the purchase has been
	// partially or fully consumed
	HasConsumedStock(ctx context.Context, purchaseID uuid.UUID) (bool, error)

	// ExistsByItem reports whether the item has any batches at all
	ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *StockBatch) error

	// SaveAll persists a set of batches in one statement
	SaveAll(ctx context.Context, batches []*StockBatch) error

	// DeleteByPurchase removes all batches created by a purchase
	DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) error
}
