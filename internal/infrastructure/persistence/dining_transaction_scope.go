package persistence

import (
	"context"

	diningapp "github.com/dinehub/backend/internal/application/dining"
	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormDiningTransactionScope implements the dining TransactionScope using
// GORM transactions. Order fulfillment spans both dining and inventory
// collections, so the scope hands out repositories for both.
type GormDiningTransactionScope struct {
	db *gorm.DB
}

// NewGormDiningTransactionScope creates a new GormDiningTransactionScope
func NewGormDiningTransactionScope(db *gorm.DB) *GormDiningTransactionScope {
	return &GormDiningTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormDiningTransactionScope) Execute(ctx context.Context, fn func(repos diningapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormDiningRepositories{tx: tx})
	})
}

// gormDiningRepositories provides transaction-scoped repositories for order
// transitions
type gormDiningRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormDiningRepositories) OrderRepo() dining.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// TableRepo returns the table repository scoped to the current transaction
func (r *gormDiningRepositories) TableRepo() dining.TableRepository {
	return NewGormTableRepository(r.tx)
}

// MenuItemRepo returns the menu item repository scoped to the current transaction
func (r *gormDiningRepositories) MenuItemRepo() dining.MenuItemRepository {
	return NewGormMenuItemRepository(r.tx)
}

// ItemRepo returns the inventory item repository scoped to the current transaction
func (r *gormDiningRepositories) ItemRepo() inventory.ItemRepository {
	return NewGormItemRepository(r.tx)
}

// BatchRepo returns the stock batch repository scoped to the current transaction
func (r *gormDiningRepositories) BatchRepo() inventory.StockBatchRepository {
	return NewGormStockBatchRepository(r.tx)
}

var _ diningapp.TransactionScope = (*GormDiningTransactionScope)(nil)
var _ diningapp.TransactionalRepositories = (*gormDiningRepositories)(nil)
