package purchasing

import (
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePurchase = "Purchase"

// Event type constants
const (
	EventTypePurchaseCreated  = "PurchaseCreated"
	EventTypePurchaseExported = "PurchaseExported"
)

// PurchaseCreatedEvent is raised when a purchase is recorded
type PurchaseCreatedEvent struct {
	shared.BaseDomainEvent
	PurchaseID    uuid.UUID       `json:"purchase_id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	LineCount     int             `json:"line_count"`
}

// NewPurchaseCreatedEvent creates a new PurchaseCreatedEvent
func NewPurchaseCreatedEvent(purchase *Purchase) *PurchaseCreatedEvent {
	return &PurchaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseCreated, AggregateTypePurchase, purchase.ID),
		PurchaseID:      purchase.ID,
		SupplierID:      purchase.SupplierID,
		InvoiceNumber:   purchase.InvoiceNumber,
		TotalAmount:     purchase.TotalAmount,
		LineCount:       len(purchase.Items),
	}
}

// EventType returns the event type name
func (e *PurchaseCreatedEvent) EventType() string {
	return EventTypePurchaseCreated
}

// PurchaseExportedEvent is raised when a purchase is manually exported to inventory
type PurchaseExportedEvent struct {
	shared.BaseDomainEvent
	PurchaseID    uuid.UUID `json:"purchase_id"`
	InvoiceNumber string    `json:"invoice_number"`
}

// NewPurchaseExportedEvent creates a new PurchaseExportedEvent
func NewPurchaseExportedEvent(purchase *Purchase) *PurchaseExportedEvent {
	return &PurchaseExportedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseExported, AggregateTypePurchase, purchase.ID),
		PurchaseID:      purchase.ID,
		InvoiceNumber:   purchase.InvoiceNumber,
	}
}

// EventType returns the event type name
func (e *PurchaseExportedEvent) EventType() string {
	return EventTypePurchaseExported
}
