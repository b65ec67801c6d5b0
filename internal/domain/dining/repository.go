package dining

import (
	"context"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SectionRepository defines the interface for kitchen section persistence
type SectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Section, error)
	ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, section *Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TableRepository defines the interface for dining table persistence
type TableRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Table, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Table, error)
	CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error)
	Save(ctx context.Context, table *Table) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByID finds a menu item with its ingredient mappings
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindByIDs finds multiple menu items with their ingredient mappings
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]MenuItem, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]MenuItem, error)
	CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error)
	ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its line items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindActiveByTable finds the newest open order seated at the table
	FindActiveByTable(ctx context.Context, tableID uuid.UUID) (*Order, error)

	// FindAll finds orders matching the filter, open orders first then newest
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindActiveBySection finds open orders containing at least one line routed
	// to the section; used by the kitchen view
	FindActiveBySection(ctx context.Context, sectionID uuid.UUID) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an order together with its line items
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its line items
	Delete(ctx context.Context, id uuid.UUID) error
}
