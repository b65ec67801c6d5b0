package purchasing

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/partner"
	"github.com/dinehub/backend/internal/domain/purchasing"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	invoiceNumberLength = 6
	// invoiceAttempts bounds the uniqueness retry loop for generated invoice numbers
	invoiceAttempts = 5
)

// PurchaseService orchestrates purchase create/update/delete as atomic
// transitions over the purchase, its stock batches and the affected item
// rollups. Any validation failure aborts the whole transaction.
type PurchaseService struct {
	scope          TransactionScope
	purchaseRepo   purchasing.PurchaseRepository
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(scope TransactionScope, purchaseRepo purchasing.PurchaseRepository, supplierRepo partner.SupplierRepository) *PurchaseService {
	return &PurchaseService{
		scope:        scope,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records a purchase: the purchase row, one stock batch per line and
// the inventory line effects, all in one transaction.
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	var purchase *purchasing.Purchase

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := s.requireActiveSupplier(ctx, repos, req.SupplierID)
		if err != nil {
			return err
		}

		items, lines, err := resolveLines(ctx, repos.ItemRepo(), req.Items)
		if err != nil {
			return err
		}

		invoiceNumber, err := s.generateInvoiceNumber(ctx, repos.PurchaseRepo())
		if err != nil {
			return err
		}

		purchaseDate := time.Now()
		if req.PurchaseDate != nil {
			purchaseDate = *req.PurchaseDate
		}

		purchase, err = purchasing.NewPurchase(req.Title, invoiceNumber, supplier.ID, purchaseDate, lines, req.PaidAmount, req.Notes, req.CreatedBy)
		if err != nil {
			return err
		}
		snapshotLineProducts(purchase, items)

		if err := repos.PurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}

		return applyPurchaseStock(ctx, repos, purchase, items)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, purchase)

	return NewPurchaseResponse(purchase), nil
}

// Update rewrites a purchase. The old inventory effects are reversed and the
// old batches purged before the new lines are applied, so the end state is
// identical to having created the purchase with the new lines in the first
// place. Blocked once any of the purchase's stock has been consumed.
func (s *PurchaseService) Update(ctx context.Context, id uuid.UUID, req UpdatePurchaseRequest) (*PurchaseResponse, error) {
	var purchase *purchasing.Purchase

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		purchase, err = repos.PurchaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.requireUnconsumed(ctx, repos, purchase.ID); err != nil {
			return err
		}

		if err := reversePurchaseStock(ctx, repos, purchase); err != nil {
			return err
		}
		if err := repos.BatchRepo().DeleteByPurchase(ctx, purchase.ID); err != nil {
			return err
		}

		supplier, err := s.requireActiveSupplier(ctx, repos, req.SupplierID)
		if err != nil {
			return err
		}

		items, lines, err := resolveLines(ctx, repos.ItemRepo(), req.Items)
		if err != nil {
			return err
		}

		purchaseDate := purchase.PurchaseDate
		if req.PurchaseDate != nil {
			purchaseDate = *req.PurchaseDate
		}

		if err := repos.PurchaseRepo().DeleteLineItems(ctx, purchase.ID); err != nil {
			return err
		}

		if err := purchase.Replace(req.Title, supplier.ID, purchaseDate, lines, req.PaidAmount, req.Notes, req.UpdatedBy); err != nil {
			return err
		}
		snapshotLineProducts(purchase, items)

		if err := repos.PurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}

		return applyPurchaseStock(ctx, repos, purchase, items)
	})
	if err != nil {
		return nil, err
	}

	return NewPurchaseResponse(purchase), nil
}

// Delete removes a purchase, its batches and its inventory effects. Blocked
// once any of the purchase's stock has been consumed.
func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.PurchaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.requireUnconsumed(ctx, repos, purchase.ID); err != nil {
			return err
		}

		if err := reversePurchaseStock(ctx, repos, purchase); err != nil {
			return err
		}
		if err := repos.BatchRepo().DeleteByPurchase(ctx, purchase.ID); err != nil {
			return err
		}

		return repos.PurchaseRepo().Delete(ctx, purchase.ID)
	})
}

// Export is the legacy manual acknowledgement of a purchase's push into
// inventory. Stock and batches are created with the purchase itself, so
// exporting only flips the flag; running it twice conflicts.
func (s *PurchaseService) Export(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := purchase.MarkExported(); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, purchase)

	return NewPurchaseResponse(purchase), nil
}

// GetByID fetches a purchase with its lines
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPurchaseResponse(purchase), nil
}

// GetBySupplier lists a supplier's purchases
func (s *PurchaseService) GetBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]PurchaseResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.FindBySupplier(ctx, supplierID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PurchaseResponse, 0, len(purchases))
	for idx := range purchases {
		responses = append(responses, *NewPurchaseResponse(&purchases[idx]))
	}
	return responses, nil
}

// requireActiveSupplier loads the supplier and rejects inactive ones
func (s *PurchaseService) requireActiveSupplier(ctx context.Context, repos TransactionalRepositories, supplierID uuid.UUID) (*partner.Supplier, error) {
	supplier, err := repos.SupplierRepo().FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsActive() {
		return nil, shared.NewDomainError("SUPPLIER_INACTIVE", "Supplier is inactive and cannot receive new purchases")
	}
	return supplier, nil
}

// requireUnconsumed enforces the consumed-stock guard: a purchase whose
// batches have been drawn down is immutable, otherwise reversing its
// inventory effects would corrupt the cost ledger.
func (s *PurchaseService) requireUnconsumed(ctx context.Context, repos TransactionalRepositories, purchaseID uuid.UUID) error {
	consumed, err := repos.BatchRepo().HasConsumedStock(ctx, purchaseID)
	if err != nil {
		return err
	}
	if consumed {
		return shared.NewDomainError("CONFLICT", "Purchase stock has already been consumed and cannot be modified")
	}
	return nil
}

// resolveLines validates every line's item and converts the request lines to
// domain lines. The error names the offending line for the caller.
func resolveLines(ctx context.Context, itemRepo inventory.ItemRepository, reqLines []PurchaseLineRequest) (map[uuid.UUID]*inventory.Item, []purchasing.PurchaseLine, error) {
	items := make(map[uuid.UUID]*inventory.Item, len(reqLines))
	lines := make([]purchasing.PurchaseLine, 0, len(reqLines))

	for i, line := range reqLines {
		if _, ok := items[line.ItemID]; !ok {
			item, err := itemRepo.FindByID(ctx, line.ItemID)
			if err != nil {
				return nil, nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Inventory item for line %d not found", i+1))
			}
			items[line.ItemID] = item
		}

		lines = append(lines, purchasing.PurchaseLine{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	return items, lines, nil
}

// snapshotLineProducts copies the product name and unit onto the purchase
// lines so the purchase stays readable after item renames.
func snapshotLineProducts(purchase *purchasing.Purchase, items map[uuid.UUID]*inventory.Item) {
	for idx := range purchase.Items {
		if item, ok := items[purchase.Items[idx].ItemID]; ok {
			purchase.Items[idx].ProductName = item.ProductName
			purchase.Items[idx].Unit = item.Unit
		}
	}
}

// applyPurchaseStock creates one batch per line and applies the line effects
// to each item's rollup.
func applyPurchaseStock(ctx context.Context, repos TransactionalRepositories, purchase *purchasing.Purchase, items map[uuid.UUID]*inventory.Item) error {
	for idx := range purchase.Items {
		line := &purchase.Items[idx]

		batch, err := inventory.NewStockBatch(line.ItemID, purchase.ID, &purchase.SupplierID, line.Quantity, line.UnitPrice, purchase.PurchaseDate)
		if err != nil {
			return err
		}
		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}

		item := items[line.ItemID]
		if err := item.ApplyPurchaseLine(line.Quantity, line.TotalPrice); err != nil {
			return err
		}
	}

	for _, item := range items {
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// reversePurchaseStock backs the purchase's line effects out of the item rollups
func reversePurchaseStock(ctx context.Context, repos TransactionalRepositories, purchase *purchasing.Purchase) error {
	for idx := range purchase.Items {
		line := &purchase.Items[idx]

		item, err := repos.ItemRepo().FindByID(ctx, line.ItemID)
		if err != nil {
			return err
		}
		if err := item.ReversePurchaseLine(line.Quantity, line.TotalPrice); err != nil {
			return err
		}
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// generateInvoiceNumber draws random digit invoice numbers until one is free
func (s *PurchaseService) generateInvoiceNumber(ctx context.Context, repo purchasing.PurchaseRepository) (string, error) {
	for attempt := 0; attempt < invoiceAttempts; attempt++ {
		number, err := randomDigits(invoiceNumberLength)
		if err != nil {
			return "", err
		}

		exists, err := repo.ExistsByInvoiceNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}

	return "", shared.NewDomainError("INVOICE_GENERATION_EXHAUSTED", "Could not generate a unique invoice number")
}

// randomDigits returns a cryptographically random string of n digits
func randomDigits(n int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		buf[i] = digits[idx.Int64()]
	}
	return string(buf), nil
}

func (s *PurchaseService) publishEvents(ctx context.Context, purchase *purchasing.Purchase) {
	if s.eventPublisher == nil || purchase == nil {
		return
	}
	events := purchase.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	purchase.ClearDomainEvents()
}
