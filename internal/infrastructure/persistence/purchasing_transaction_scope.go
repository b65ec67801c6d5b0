package persistence

import (
	"context"

	purchasingapp "github.com/dinehub/backend/internal/application/purchasing"
	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/partner"
	"github.com/dinehub/backend/internal/domain/purchasing"
	"gorm.io/gorm"
)

// GormPurchasingTransactionScope implements the purchasing TransactionScope
// using GORM transactions.
type GormPurchasingTransactionScope struct {
	db *gorm.DB
}

// NewGormPurchasingTransactionScope creates a new GormPurchasingTransactionScope
func NewGormPurchasingTransactionScope(db *gorm.DB) *GormPurchasingTransactionScope {
	return &GormPurchasingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPurchasingTransactionScope) Execute(ctx context.Context, fn func(repos purchasingapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPurchasingRepositories{tx: tx})
	})
}

// gormPurchasingRepositories provides transaction-scoped repositories for
// purchase transitions
type gormPurchasingRepositories struct {
	tx *gorm.DB
}

// PurchaseRepo returns the purchase repository scoped to the current transaction
func (r *gormPurchasingRepositories) PurchaseRepo() purchasing.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// SupplierRepo returns the supplier repository scoped to the current transaction
func (r *gormPurchasingRepositories) SupplierRepo() partner.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

// ItemRepo returns the inventory item repository scoped to the current transaction
func (r *gormPurchasingRepositories) ItemRepo() inventory.ItemRepository {
	return NewGormItemRepository(r.tx)
}

// BatchRepo returns the stock batch repository scoped to the current transaction
func (r *gormPurchasingRepositories) BatchRepo() inventory.StockBatchRepository {
	return NewGormStockBatchRepository(r.tx)
}

var _ purchasingapp.TransactionScope = (*GormPurchasingTransactionScope)(nil)
var _ purchasingapp.TransactionalRepositories = (*gormPurchasingRepositories)(nil)
