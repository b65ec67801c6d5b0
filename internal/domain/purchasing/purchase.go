package purchasing

import (
	"strings"
	"time"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a purchase
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPartial, PaymentStatusPending:
		return true
	}
	return false
}

// PurchaseItem is one line of a purchase. TotalPrice is always
// Quantity * UnitPrice; lines are replaced wholesale on purchase update.
type PurchaseItem struct {
	shared.BaseEntity
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"` // snapshot at purchase time
	Unit        string          `gorm:"type:varchar(20)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// PurchaseLine is the input for one purchase line.
type PurchaseLine struct {
	ItemID    uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Purchase is the aggregate root for a supplier purchase. Creating one also
// creates a stock batch per line and bumps the inventory rollups; those side
// effects live in the application layer so the aggregate only owns its own
// lines and settlement arithmetic.
type Purchase struct {
	shared.BaseAggregateRoot
	Title         string          `gorm:"type:varchar(200)"`
	InvoiceNumber string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseDate  time.Time       `gorm:"not null"`
	Items         []PurchaseItem  `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DueAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes         string          `gorm:"type:text"`
	Exported      bool            `gorm:"not null;default:false"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
	UpdatedBy     *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a settled purchase from its lines.
func NewPurchase(title, invoiceNumber string, supplierID uuid.UUID, purchaseDate time.Time, lines []PurchaseLine, paidAmount decimal.Decimal, notes string, createdBy *uuid.UUID) (*Purchase, error) {
	if strings.TrimSpace(invoiceNumber) == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	purchase := &Purchase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		InvoiceNumber:     strings.TrimSpace(invoiceNumber),
		SupplierID:        supplierID,
		PurchaseDate:      purchaseDate,
		Notes:             notes,
		CreatedBy:         createdBy,
	}

	if err := purchase.setLines(lines); err != nil {
		return nil, err
	}
	if err := purchase.settle(paidAmount); err != nil {
		return nil, err
	}

	purchase.AddDomainEvent(NewPurchaseCreatedEvent(purchase))

	return purchase, nil
}

// Replace swaps out the purchase's supplier, date, lines and settlement in one
// step. The caller must have verified that none of the purchase's stock has
// been consumed; this only rewrites the aggregate's own state.
func (p *Purchase) Replace(title string, supplierID uuid.UUID, purchaseDate time.Time, lines []PurchaseLine, paidAmount decimal.Decimal, notes string, updatedBy *uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}

	if err := p.setLines(lines); err != nil {
		return err
	}
	if err := p.settle(paidAmount); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.SupplierID = supplierID
	if !purchaseDate.IsZero() {
		p.PurchaseDate = purchaseDate
	}
	p.Notes = notes
	p.UpdatedBy = updatedBy
	p.Touch()
	p.IncrementVersion()

	return nil
}

// setLines validates and installs the lines, recomputing the total.
func (p *Purchase) setLines(lines []PurchaseLine) error {
	if len(lines) == 0 {
		return shared.NewDomainError("EMPTY_PURCHASE", "Purchase must have at least one line item")
	}

	items := make([]PurchaseItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.ItemID == uuid.Nil {
			return shared.NewDomainError("INVALID_ITEM", "Line item ID is required")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Line unit price cannot be negative")
		}

		lineTotal := line.Quantity.Mul(line.UnitPrice)
		items = append(items, PurchaseItem{
			BaseEntity: shared.NewBaseEntity(),
			PurchaseID: p.ID,
			ItemID:     line.ItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	p.Items = items
	p.TotalAmount = total

	return nil
}

// settle derives DueAmount and PaymentStatus from the paid amount.
// Paying more than the total is rejected; pending is never produced here, it
// only exists as a seed state for records settled elsewhere.
func (p *Purchase) settle(paidAmount decimal.Decimal) error {
	if paidAmount.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Paid amount cannot be negative")
	}
	if paidAmount.GreaterThan(p.TotalAmount) {
		return shared.NewDomainError("OVERPAYMENT", "Paid amount cannot exceed total amount")
	}

	p.PaidAmount = paidAmount
	p.DueAmount = p.TotalAmount.Sub(paidAmount)
	if p.DueAmount.IsZero() {
		p.PaymentStatus = PaymentStatusPaid
	} else {
		p.PaymentStatus = PaymentStatusPartial
	}

	return nil
}

// MarkExported flags the purchase as pushed to inventory via the legacy
// manual export path. Exporting twice would double-count stock.
func (p *Purchase) MarkExported() error {
	if p.Exported {
		return shared.NewDomainError("ALREADY_EXPORTED", "Purchase has already been exported to inventory")
	}

	p.Exported = true
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewPurchaseExportedEvent(p))

	return nil
}

// IsFullyPaid returns true if nothing is owed on the purchase
func (p *Purchase) IsFullyPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

// ItemCount returns the number of line items
func (p *Purchase) ItemCount() int {
	return len(p.Items)
}
