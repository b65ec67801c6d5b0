package purchasing

import (
	"context"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/partner"
	"github.com/dinehub/backend/internal/domain/purchasing"
)

// TransactionScope provides transactional access to the repositories a
// purchase mutation touches. A purchase create/update/delete writes the
// purchase, its batches and every affected item rollup; all of it commits or
// rolls back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories a purchase
// transition needs, scoped to one transaction.
type TransactionalRepositories interface {
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() purchasing.PurchaseRepository
	// SupplierRepo returns the supplier repository scoped to the current transaction
	SupplierRepo() partner.SupplierRepository
	// ItemRepo returns the inventory item repository scoped to the current transaction
	ItemRepo() inventory.ItemRepository
	// BatchRepo returns the stock batch repository scoped to the current transaction
	BatchRepo() inventory.StockBatchRepository
}

// NoOpTransactionScope is a transaction scope without transaction semantics,
// for tests.
type NoOpTransactionScope struct {
	purchaseRepo purchasing.PurchaseRepository
	supplierRepo partner.SupplierRepository
	itemRepo     inventory.ItemRepository
	batchRepo    inventory.StockBatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	purchaseRepo purchasing.PurchaseRepository,
	supplierRepo partner.SupplierRepository,
	itemRepo inventory.ItemRepository,
	batchRepo inventory.StockBatchRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		batchRepo:    batchRepo,
	}
}

// Execute runs the function without transaction semantics.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseRepo returns the purchase repository
func (s *NoOpTransactionScope) PurchaseRepo() purchasing.PurchaseRepository {
	return s.purchaseRepo
}

// SupplierRepo returns the supplier repository
func (s *NoOpTransactionScope) SupplierRepo() partner.SupplierRepository {
	return s.supplierRepo
}

// ItemRepo returns the inventory item repository
func (s *NoOpTransactionScope) ItemRepo() inventory.ItemRepository {
	return s.itemRepo
}

// BatchRepo returns the stock batch repository
func (s *NoOpTransactionScope) BatchRepo() inventory.StockBatchRepository {
	return s.batchRepo
}
