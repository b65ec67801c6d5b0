package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dinehub/backend/internal/domain/purchasing"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements purchasing.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase with its line items
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	var purchase purchasing.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindByInvoiceNumber finds a purchase by invoice number
func (r *GormPurchaseRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*purchasing.Purchase, error) {
	var purchase purchasing.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("invoice_number = ?", invoiceNumber).
		First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindBySupplier finds all purchases from a supplier
func (r *GormPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]purchasing.Purchase, error) {
	var purchases []purchasing.Purchase
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&purchasing.Purchase{}).Where("supplier_id = ?", supplierID),
		filter,
	)
	if err := query.Preload("Items").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// FindAll finds purchases matching the filter
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.Purchase, error) {
	var purchases []purchasing.Purchase
	query := r.applyFilter(r.db.WithContext(ctx).Model(&purchasing.Purchase{}), filter)
	if err := query.Preload("Items").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Count counts purchases matching the filter
func (r *GormPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&purchasing.Purchase{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByInvoiceNumber checks whether an invoice number is already taken
func (r *GormPurchaseRepository) ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&purchasing.Purchase{}).
		Where("invoice_number = ?", invoiceNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a purchase together with its line items. Line items
// removed from the aggregate are deleted, the rest are upserted.
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *purchasing.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(purchase).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(purchase.Items))
		for i := range purchase.Items {
			currentItemIDs[i] = purchase.Items[i].ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("purchase_id = ? AND id NOT IN ?", purchase.ID, currentItemIDs).
				Delete(&purchasing.PurchaseItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("purchase_id = ?", purchase.ID).
				Delete(&purchasing.PurchaseItem{}).Error; err != nil {
				return err
			}
		}

		for i := range purchase.Items {
			purchase.Items[i].PurchaseID = purchase.ID
			if err := tx.Save(&purchase.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteLineItems removes the purchase's current line items
func (r *GormPurchaseRepository) DeleteLineItems(ctx context.Context, purchaseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&purchasing.PurchaseItem{}, "purchase_id = ?", purchaseID).Error
}

// Delete deletes a purchase and its line items
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&purchasing.PurchaseItem{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&purchasing.Purchase{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilter applies filter options including pagination
func (r *GormPurchaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("purchase_date DESC, created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormPurchaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(invoice_number) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "exported":
			query = query.Where("exported = ?", value)
		}
	}

	return query
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ purchasing.PurchaseRepository = (*GormPurchaseRepository)(nil)
