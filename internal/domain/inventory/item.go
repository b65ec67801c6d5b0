package inventory

import (
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStatus represents the stock-level status of an inventory item
type ItemStatus string

const (
	ItemStatusInStock    ItemStatus = "in-stock"
	ItemStatusLowStock   ItemStatus = "low-stock"
	ItemStatusOutOfStock ItemStatus = "out-of-stock"
)

// LowStockThreshold is the quantity at or below which an item counts as low stock.
var LowStockThreshold = decimal.NewFromInt(5)

// StatusForQuantity derives the stock-level status from a quantity.
// The status is a pure function of quantity: 0 is out of stock, 1-5 is low, above 5 is in stock.
func StatusForQuantity(quantity decimal.Decimal) ItemStatus {
	switch {
	case quantity.LessThanOrEqual(decimal.Zero):
		return ItemStatusOutOfStock
	case quantity.LessThanOrEqual(LowStockThreshold):
		return ItemStatusLowStock
	default:
		return ItemStatusInStock
	}
}

// Item is the aggregate root for a stocked product.
// Quantity, AveragePrice and TotalValue are a rollup of the item's stock batches;
// RecomputeFromBatches is the only writer of the derived fields after batch mutations.
type Item struct {
	shared.BaseAggregateRoot
	ProductName  string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Code         string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Unit         string          `gorm:"type:varchar(20);not null"`
	Price        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // list/reference price
	AveragePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // weighted average cost of remaining stock
	TotalValue   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // value of remaining stock at batch cost
	Status       ItemStatus      `gorm:"type:varchar(20);not null;default:'out-of-stock'"`
	CreatedBy    *uuid.UUID      `gorm:"type:uuid"`
	UpdatedBy    *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// NewItem creates a new inventory item with zero stock.
func NewItem(productName, code, unit string, price decimal.Decimal, createdBy *uuid.UUID) (*Item, error) {
	productName = strings.ToLower(strings.TrimSpace(productName))
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductName:       productName,
		Code:              code,
		Quantity:          decimal.Zero,
		Unit:              strings.ToLower(strings.TrimSpace(unit)),
		Price:             price,
		AveragePrice:      decimal.Zero,
		TotalValue:        decimal.Zero,
		Status:            StatusForQuantity(decimal.Zero),
		CreatedBy:         createdBy,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// UpdateDetails replaces the item's descriptive fields.
// Name/code uniqueness against other items is the caller's responsibility.
func (i *Item) UpdateDetails(productName, code, unit string, price decimal.Decimal, updatedBy *uuid.UUID) error {
	productName = strings.ToLower(strings.TrimSpace(productName))
	if productName == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	i.ProductName = productName
	i.Code = code
	i.Unit = strings.ToLower(strings.TrimSpace(unit))
	i.Price = price
	i.UpdatedBy = updatedBy
	i.Touch()
	i.IncrementVersion()

	return nil
}

// ApplyPurchaseLine adds purchased stock to the rollup.
// Used when a purchase is created or its new lines are reapplied after an update.
func (i *Item) ApplyPurchaseLine(quantity, value decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Line value cannot be negative")
	}

	oldStatus := i.Status
	i.Quantity = i.Quantity.Add(quantity)
	i.TotalValue = i.TotalValue.Add(value)
	i.refreshDerived()
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockIncreasedEvent(i, quantity, value))
	i.emitThresholdEvent(oldStatus)

	return nil
}

// ReversePurchaseLine backs out a previously applied purchase line.
// TotalValue is clamped at zero to guard against decimal drift accumulated
// across many apply/reverse cycles.
func (i *Item) ReversePurchaseLine(quantity, value decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	oldStatus := i.Status
	i.Quantity = i.Quantity.Sub(quantity)
	if i.Quantity.IsNegative() {
		i.Quantity = decimal.Zero
	}
	i.TotalValue = i.TotalValue.Sub(value)
	if i.TotalValue.IsNegative() {
		i.TotalValue = decimal.Zero
	}
	i.refreshDerived()
	i.Touch()
	i.IncrementVersion()

	i.emitThresholdEvent(oldStatus)

	return nil
}

// ConsumeQuantity subtracts consumed stock from the top-level quantity.
// The batch-level depletion must already have succeeded; this only maintains
// the rollup counter and status.
func (i *Item) ConsumeQuantity(quantity decimal.Decimal, consumedBy *uuid.UUID) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	oldStatus := i.Status
	i.Quantity = i.Quantity.Sub(quantity)
	if i.Quantity.IsNegative() {
		i.Quantity = decimal.Zero
	}
	i.UpdatedBy = consumedBy
	i.refreshDerived()
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockConsumedEvent(i, quantity))
	i.emitThresholdEvent(oldStatus)

	return nil
}

// RecomputeFromBatches rebuilds the derived value fields from the item's
// remaining active batches. It is idempotent and must run inside the same
// transaction as the batch mutation that made it necessary.
func (i *Item) RecomputeFromBatches(batches []StockBatch) {
	total := decimal.Zero
	for idx := range batches {
		if batches[idx].Status == BatchStatusActive {
			total = total.Add(batches[idx].RemainingValue())
		}
	}

	i.TotalValue = total
	i.refreshDerived()
	i.Touch()
}

// refreshDerived recomputes AveragePrice and Status from Quantity/TotalValue.
func (i *Item) refreshDerived() {
	if i.Quantity.IsPositive() {
		i.AveragePrice = i.TotalValue.Div(i.Quantity).Round(4)
	} else {
		i.AveragePrice = decimal.Zero
	}
	i.Status = StatusForQuantity(i.Quantity)
}

func (i *Item) emitThresholdEvent(oldStatus ItemStatus) {
	if i.Status == oldStatus {
		return
	}
	if i.Status == ItemStatusLowStock || i.Status == ItemStatusOutOfStock {
		i.AddDomainEvent(NewStockBelowThresholdEvent(i))
	}
}

// HasStock returns true if the item has remaining quantity
func (i *Item) HasStock() bool {
	return i.Quantity.IsPositive()
}
