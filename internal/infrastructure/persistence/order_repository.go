package persistence

import (
	"context"
	"errors"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// terminalOrderStatuses are the states an order can no longer leave
var terminalOrderStatuses = []dining.OrderStatus{
	dining.OrderStatusCheckout,
	dining.OrderStatusCancelled,
}

// GormOrderRepository implements dining.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its line items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Order, error) {
	var order dining.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindActiveByTable finds the newest open order seated at the table
func (r *GormOrderRepository) FindActiveByTable(ctx context.Context, tableID uuid.UUID) (*dining.Order, error) {
	var order dining.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("table_id = ? AND status NOT IN ?", tableID, terminalOrderStatuses).
		Order("created_at DESC").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders matching the filter, open orders first then newest
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.Order, error) {
	var orders []dining.Order
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&dining.Order{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	query = query.
		Order("CASE WHEN status IN ('checkout', 'cancelled') THEN 1 ELSE 0 END ASC").
		Order("created_at DESC")

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindActiveBySection finds open orders containing at least one line routed
// to the section
func (r *GormOrderRepository) FindActiveBySection(ctx context.Context, sectionID uuid.UUID) ([]dining.Order, error) {
	var orders []dining.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status NOT IN ?", terminalOrderStatuses).
		Where("id IN (?)", r.db.Model(&dining.OrderItem{}).
			Select("order_id").
			Where("section_id = ?", sectionID)).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&dining.Order{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an order together with its line items. Lines
// removed from the aggregate are deleted, the rest are upserted.
func (r *GormOrderRepository) Save(ctx context.Context, order *dining.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(order.Items))
		for i := range order.Items {
			currentItemIDs[i] = order.Items[i].ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", order.ID, currentItemIDs).
				Delete(&dining.OrderItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&dining.OrderItem{}).Error; err != nil {
				return err
			}
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes an order and its line items
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&dining.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&dining.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("order_number LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "table_id":
			query = query.Where("table_id = ?", value)
		}
	}

	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ dining.OrderRepository = (*GormOrderRepository)(nil)
