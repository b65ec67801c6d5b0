package persistence

import (
	"context"
	"errors"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockBatchRepository implements inventory.StockBatchRepository using GORM
type GormStockBatchRepository struct {
	db *gorm.DB
}

// NewGormStockBatchRepository creates a new GormStockBatchRepository
func NewGormStockBatchRepository(db *gorm.DB) *GormStockBatchRepository {
	return &GormStockBatchRepository{db: db}
}

// FindByID finds a batch by its ID
func (r *GormStockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockBatch, error) {
	var batch inventory.StockBatch
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByItem finds all batches of an item, newest purchase first
func (r *GormStockBatchRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]inventory.StockBatch, error) {
	var batches []inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("purchase_date DESC, created_at DESC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindActiveByItem finds the item's consumable batches, oldest purchase first.
// The ordering is the FIFO contract: depletion walks this slice front to back.
func (r *GormStockBatchRepository) FindActiveByItem(ctx context.Context, itemID uuid.UUID) ([]*inventory.StockBatch, error) {
	var batches []*inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, inventory.BatchStatusActive).
		Order("purchase_date ASC, created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindByPurchase finds all batches created by a purchase
func (r *GormStockBatchRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]inventory.StockBatch, error) {
	var batches []inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// HasConsumedStock reports whether any batch of the purchase has been
// partially or fully consumed
func (r *GormStockBatchRepository) HasConsumedStock(ctx context.Context, purchaseID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockBatch{}).
		Where("purchase_id = ? AND remaining_quantity != quantity", purchaseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByItem reports whether the item has any batches at all
func (r *GormStockBatchRepository) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockBatch{}).
		Where("item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a batch
func (r *GormStockBatchRepository) Save(ctx context.Context, batch *inventory.StockBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// SaveAll persists a set of batches in one statement
func (r *GormStockBatchRepository) SaveAll(ctx context.Context, batches []*inventory.StockBatch) error {
	if len(batches) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(batches).Error
}

// DeleteByPurchase removes all batches created by a purchase
func (r *GormStockBatchRepository) DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&inventory.StockBatch{}, "purchase_id = ?", purchaseID).Error
}

// Ensure GormStockBatchRepository implements StockBatchRepository
var _ inventory.StockBatchRepository = (*GormStockBatchRepository)(nil)
