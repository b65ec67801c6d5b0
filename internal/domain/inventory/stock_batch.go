package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle state of a stock batch
type BatchStatus string

const (
	BatchStatusActive   BatchStatus = "active"
	BatchStatusDepleted BatchStatus = "depleted"
)

// StockBatch is one purchase lot of an item, carried at its own unit cost.
// Batches are consumed oldest-first; a batch whose remaining quantity reaches
// zero flips to depleted and is never consumed again.
type StockBatch struct {
	shared.BaseEntity
	ItemID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_batches_item"`
	PurchaseID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_batches_purchase"`
	SupplierID        *uuid.UUID      `gorm:"type:uuid"`
	Quantity          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RemainingQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PurchaseDate      time.Time       `gorm:"not null"`
	Status            BatchStatus     `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (StockBatch) TableName() string {
	return "stock_batches"
}

// NewStockBatch creates a fully stocked batch for a purchase line.
func NewStockBatch(itemID, purchaseID uuid.UUID, supplierID *uuid.UUID, quantity, unitCost decimal.Decimal, purchaseDate time.Time) (*StockBatch, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID is required")
	}
	if purchaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE", "Purchase ID is required")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Batch quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	return &StockBatch{
		BaseEntity:        shared.NewBaseEntity(),
		ItemID:            itemID,
		PurchaseID:        purchaseID,
		SupplierID:        supplierID,
		Quantity:          quantity,
		RemainingQuantity: quantity,
		UnitCost:          unitCost,
		PurchaseDate:      purchaseDate,
		Status:            BatchStatusActive,
	}, nil
}

// Deplete takes up to amount from the batch and returns the quantity actually
// taken. The batch flips to depleted when its remaining quantity hits zero.
func (b *StockBatch) Deplete(amount decimal.Decimal) decimal.Decimal {
	if !b.HasStock() || amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	taken := decimal.Min(b.RemainingQuantity, amount)
	b.RemainingQuantity = b.RemainingQuantity.Sub(taken)
	if b.RemainingQuantity.LessThanOrEqual(decimal.Zero) {
		b.RemainingQuantity = decimal.Zero
		b.Status = BatchStatusDepleted
	}
	b.Touch()

	return taken
}

// HasStock returns true if the batch still has consumable quantity
func (b *StockBatch) HasStock() bool {
	return b.Status == BatchStatusActive && b.RemainingQuantity.IsPositive()
}

// IsPartiallyConsumed returns true if any quantity has been taken from the batch
func (b *StockBatch) IsPartiallyConsumed() bool {
	return b.RemainingQuantity.LessThan(b.Quantity)
}

// RemainingValue returns the cost value of the batch's remaining stock
func (b *StockBatch) RemainingValue() decimal.Decimal {
	return b.RemainingQuantity.Mul(b.UnitCost)
}

// DepletionResult records one batch's contribution to a FIFO depletion.
type DepletionResult struct {
	BatchID  uuid.UUID
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
}

// DepleteFIFO consumes the requested quantity from the given batches oldest
// purchase first. It validates availability before mutating anything: with no
// consumable stock at all it fails with NO_STOCK_AVAILABLE, and with some but
// not enough it fails with INSUFFICIENT_STOCK, leaving every batch untouched.
// On success it returns the per-batch depletions and the total cost value consumed.
func DepleteFIFO(batches []*StockBatch, quantity decimal.Decimal) ([]DepletionResult, decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, shared.NewDomainError("INVALID_QUANTITY", "Consumption quantity must be positive")
	}

	sort.SliceStable(batches, func(a, b int) bool {
		if !batches[a].PurchaseDate.Equal(batches[b].PurchaseDate) {
			return batches[a].PurchaseDate.Before(batches[b].PurchaseDate)
		}
		return batches[a].CreatedAt.Before(batches[b].CreatedAt)
	})

	available := decimal.Zero
	for _, b := range batches {
		if b.HasStock() {
			available = available.Add(b.RemainingQuantity)
		}
	}
	if available.IsZero() {
		return nil, decimal.Zero, shared.ErrNoStockAvailable
	}
	if available.LessThan(quantity) {
		return nil, decimal.Zero, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock: requested %s, available %s", quantity.String(), available.String()))
	}

	results := make([]DepletionResult, 0, len(batches))
	consumedValue := decimal.Zero
	remaining := quantity
	for _, b := range batches {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		taken := b.Deplete(remaining)
		if taken.IsZero() {
			continue
		}
		remaining = remaining.Sub(taken)
		consumedValue = consumedValue.Add(taken.Mul(b.UnitCost))
		results = append(results, DepletionResult{
			BatchID:  b.ID,
			Quantity: taken,
			UnitCost: b.UnitCost,
		})
	}

	return results, consumedValue, nil
}
