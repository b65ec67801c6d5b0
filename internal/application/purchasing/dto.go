package purchasing

import (
	"time"

	"github.com/dinehub/backend/internal/domain/purchasing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLineRequest is one line of a purchase request
type PurchaseLineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// CreatePurchaseRequest represents a request to record a purchase
type CreatePurchaseRequest struct {
	Title        string                `json:"title"`
	SupplierID   uuid.UUID             `json:"supplier_id" binding:"required"`
	PurchaseDate *time.Time            `json:"purchase_date"`
	Items        []PurchaseLineRequest `json:"items" binding:"required,min=1,dive"`
	PaidAmount   decimal.Decimal       `json:"paid_amount"`
	Notes        string                `json:"notes"`
	CreatedBy    *uuid.UUID            `json:"-"`
}

// UpdatePurchaseRequest represents a request to rewrite a purchase
type UpdatePurchaseRequest struct {
	Title        string                `json:"title"`
	SupplierID   uuid.UUID             `json:"supplier_id" binding:"required"`
	PurchaseDate *time.Time            `json:"purchase_date"`
	Items        []PurchaseLineRequest `json:"items" binding:"required,min=1,dive"`
	PaidAmount   decimal.Decimal       `json:"paid_amount"`
	Notes        string                `json:"notes"`
	UpdatedBy    *uuid.UUID            `json:"-"`
}

// PurchaseItemResponse represents one purchase line in API responses
type PurchaseItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ItemID      uuid.UUID       `json:"item_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title,omitempty"`
	InvoiceNumber string                 `json:"invoice_number"`
	SupplierID    uuid.UUID              `json:"supplier_id"`
	PurchaseDate  time.Time              `json:"purchase_date"`
	Items         []PurchaseItemResponse `json:"items"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	PaidAmount    decimal.Decimal        `json:"paid_amount"`
	DueAmount     decimal.Decimal        `json:"due_amount"`
	PaymentStatus string                 `json:"payment_status"`
	Exported      bool                   `json:"exported"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// NewPurchaseResponse converts a purchase to its response form
func NewPurchaseResponse(purchase *purchasing.Purchase) *PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(purchase.Items))
	for idx := range purchase.Items {
		line := &purchase.Items[idx]
		items = append(items, PurchaseItemResponse{
			ID:          line.ID,
			ItemID:      line.ItemID,
			ProductName: line.ProductName,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.TotalPrice,
		})
	}

	return &PurchaseResponse{
		ID:            purchase.ID,
		Title:         purchase.Title,
		InvoiceNumber: purchase.InvoiceNumber,
		SupplierID:    purchase.SupplierID,
		PurchaseDate:  purchase.PurchaseDate,
		Items:         items,
		TotalAmount:   purchase.TotalAmount,
		PaidAmount:    purchase.PaidAmount,
		DueAmount:     purchase.DueAmount,
		PaymentStatus: string(purchase.PaymentStatus),
		Exported:      purchase.Exported,
		Notes:         purchase.Notes,
		CreatedAt:     purchase.CreatedAt,
		UpdatedAt:     purchase.UpdatedAt,
	}
}
