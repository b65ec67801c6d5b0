package inventory

import (
	"time"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductName  string          `json:"product_name"`
	Code         string          `json:"code"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	AveragePrice decimal.Decimal `json:"average_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewItemResponse converts an item to its response form
func NewItemResponse(item *inventory.Item) *ItemResponse {
	return &ItemResponse{
		ID:           item.ID,
		ProductName:  item.ProductName,
		Code:         item.Code,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		Price:        item.Price,
		AveragePrice: item.AveragePrice,
		TotalValue:   item.TotalValue,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// CreateItemRequest represents a request to create an inventory item
type CreateItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	CreatedBy   *uuid.UUID      `json:"-"`
}

// UpdateItemRequest represents a request to update an inventory item
type UpdateItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	UpdatedBy   *uuid.UUID      `json:"-"`
}

// ItemListFilter represents filter options for the item list
type ItemListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=in-stock low-stock out-of-stock"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BatchResponse represents one stock batch in API responses
type BatchResponse struct {
	ID                uuid.UUID       `json:"id"`
	PurchaseID        uuid.UUID       `json:"purchase_id"`
	SupplierID        *uuid.UUID      `json:"supplier_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	Status            string          `json:"status"`
}

// NewBatchResponse converts a stock batch to its response form
func NewBatchResponse(batch *inventory.StockBatch) *BatchResponse {
	return &BatchResponse{
		ID:                batch.ID,
		PurchaseID:        batch.PurchaseID,
		SupplierID:        batch.SupplierID,
		Quantity:          batch.Quantity,
		RemainingQuantity: batch.RemainingQuantity,
		UnitCost:          batch.UnitCost,
		PurchaseDate:      batch.PurchaseDate,
		Status:            string(batch.Status),
	}
}

// BatchSummary aggregates an item's batches
type BatchSummary struct {
	TotalBatches      int             `json:"total_batches"`
	ActiveBatches     int             `json:"active_batches"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	RemainingValue    decimal.Decimal `json:"remaining_value"`
}

// BatchHistoryResponse is the item's batch ledger with a summary
type BatchHistoryResponse struct {
	Item    *ItemResponse   `json:"item"`
	Batches []BatchResponse `json:"batches"`
	Summary BatchSummary    `json:"summary"`
}

// ConsumeLine is one item to consume stock from
type ConsumeLine struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// ConsumeRequest represents a request to consume stock FIFO
type ConsumeRequest struct {
	Items      []ConsumeLine `json:"items" binding:"required,min=1,dive"`
	ConsumedBy *uuid.UUID    `json:"-"`
}

// ConsumedItem reports the outcome of consuming one item
type ConsumedItem struct {
	ItemID            uuid.UUID       `json:"item_id"`
	ProductName       string          `json:"product_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	ConsumedValue     decimal.Decimal `json:"consumed_value"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	Status            string          `json:"status"`
}

// ConsumeResponse reports the outcome of a consumption request
type ConsumeResponse struct {
	Items []ConsumedItem `json:"items"`
}
