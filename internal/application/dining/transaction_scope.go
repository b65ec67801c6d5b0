package dining

import (
	"context"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories an order
// workflow touches. Inventory repositories are part of the scope because order
// fulfillment consumes stock atomically with marking the order fulfilled.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the dining and inventory
// repositories within a transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() dining.OrderRepository
	// TableRepo returns the table repository scoped to the current transaction
	TableRepo() dining.TableRepository
	// MenuItemRepo returns the menu item repository scoped to the current transaction
	MenuItemRepo() dining.MenuItemRepository
	// ItemRepo returns the inventory item repository scoped to the current transaction
	ItemRepo() inventory.ItemRepository
	// BatchRepo returns the stock batch repository scoped to the current transaction
	BatchRepo() inventory.StockBatchRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	orderRepo    dining.OrderRepository
	tableRepo    dining.TableRepository
	menuItemRepo dining.MenuItemRepository
	itemRepo     inventory.ItemRepository
	batchRepo    inventory.StockBatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	orderRepo dining.OrderRepository,
	tableRepo dining.TableRepository,
	menuItemRepo dining.MenuItemRepository,
	itemRepo inventory.ItemRepository,
	batchRepo inventory.StockBatchRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:    orderRepo,
		tableRepo:    tableRepo,
		menuItemRepo: menuItemRepo,
		itemRepo:     itemRepo,
		batchRepo:    batchRepo,
	}
}

// Execute runs the function without transaction semantics.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() dining.OrderRepository {
	return s.orderRepo
}

// TableRepo returns the table repository
func (s *NoOpTransactionScope) TableRepo() dining.TableRepository {
	return s.tableRepo
}

// MenuItemRepo returns the menu item repository
func (s *NoOpTransactionScope) MenuItemRepo() dining.MenuItemRepository {
	return s.menuItemRepo
}

// ItemRepo returns the inventory item repository
func (s *NoOpTransactionScope) ItemRepo() inventory.ItemRepository {
	return s.itemRepo
}

// BatchRepo returns the stock batch repository
func (s *NoOpTransactionScope) BatchRepo() inventory.StockBatchRepository {
	return s.batchRepo
}
