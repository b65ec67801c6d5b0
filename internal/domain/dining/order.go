package dining

import (
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType represents how an order is served
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeTakeaway OrderType = "takeaway"
)

// IsValid checks if the order type is valid
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeDelivery, OrderTypeTakeaway:
		return true
	}
	return false
}

// OrderStatus represents the kitchen/service state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCheckout  OrderStatus = "checkout"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCheckout, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if the order can no longer change
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCheckout || s == OrderStatusCancelled
}

// OrderItemStatus represents the preparation state of a single order line
type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "pending"
	OrderItemStatusPreparing OrderItemStatus = "preparing"
	OrderItemStatusReady     OrderItemStatus = "ready"
	OrderItemStatusCompleted OrderItemStatus = "completed"
)

// IsValid checks if the order item status is valid
func (s OrderItemStatus) IsValid() bool {
	switch s {
	case OrderItemStatusPending, OrderItemStatusPreparing, OrderItemStatusReady, OrderItemStatusCompleted:
		return true
	}
	return false
}

// OrderItem is one line of an order. Title, section and price are snapshots
// taken from the menu item when the line was placed.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	SectionID   *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ExtrasPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Notes       string          `gorm:"type:text"`
	Status      OrderItemStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns the price contribution of the line.
// Extras are charged once per line, not per unit.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Add(i.ExtrasPrice)
}

// OrderLine is the priced input for one order line.
type OrderLine struct {
	MenuItemID  uuid.UUID
	Title       string
	SectionID   *uuid.UUID
	Quantity    int
	UnitPrice   decimal.Decimal
	ExtrasPrice decimal.Decimal
	Notes       string
}

// Order is the aggregate root for a customer order. Its status is a rollup of
// its items' preparation states until checkout or cancellation closes it.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string          `gorm:"type:varchar(10);not null;uniqueIndex"`
	Type        OrderType       `gorm:"type:varchar(20);not null"`
	TableID     *uuid.UUID      `gorm:"type:uuid;index"`
	Location    string          `gorm:"type:text"`
	LocationMap string          `gorm:"type:text"`
	GuestCount  int             `gorm:"not null;default:0"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Fulfilled   bool            `gorm:"not null;default:false"` // stock already consumed for this order
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order from priced lines.
func NewOrder(orderNumber string, orderType OrderType, tableID *uuid.UUID, location, locationMap string, guestCount int, lines []OrderLine, customerID *uuid.UUID) (*Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Invalid order type")
	}
	if orderType == OrderTypeDelivery && (strings.TrimSpace(location) == "" || strings.TrimSpace(locationMap) == "") {
		return nil, shared.NewDomainError("MISSING_LOCATION", "Location and location map are required for delivery orders")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must have at least one item")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       strings.TrimSpace(orderNumber),
		Type:              orderType,
		TableID:           tableID,
		GuestCount:        guestCount,
		Status:            OrderStatusPending,
		CustomerID:        customerID,
	}
	if orderType == OrderTypeDelivery {
		order.Location = location
		order.LocationMap = locationMap
	}

	if err := order.setLines(lines); err != nil {
		return nil, err
	}

	return order, nil
}

// setLines validates and installs the lines, recomputing the total.
func (o *Order) setLines(lines []OrderLine) error {
	items := make([]OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.MenuItemID == uuid.Nil {
			return shared.NewDomainError("INVALID_ORDER_ITEM", "Order line menu item ID is required")
		}
		if line.Quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Order line quantity must be positive")
		}
		if line.UnitPrice.IsNegative() || line.ExtrasPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Order line prices cannot be negative")
		}

		item := OrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     o.ID,
			MenuItemID:  line.MenuItemID,
			Title:       line.Title,
			SectionID:   line.SectionID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ExtrasPrice: line.ExtrasPrice,
			Notes:       line.Notes,
			Status:      OrderItemStatusPending,
		}
		items = append(items, item)
		total = total.Add(item.LineTotal())
	}

	o.Items = items
	o.TotalPrice = total

	return nil
}

// SetItemStatus updates one line's preparation status and rolls the order
// status up from the lines: all ready makes the order ready, all completed
// completes it, and any line still preparing pulls it back to preparing.
func (o *Order) SetItemStatus(itemID uuid.UUID, status OrderItemStatus) error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Cannot update items of a closed order")
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_ITEM_STATUS", "Invalid order item status")
	}

	found := false
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			o.Items[idx].Status = status
			o.Items[idx].Touch()
			found = true
			break
		}
	}
	if !found {
		return shared.NewDomainError("ORDER_ITEM_NOT_FOUND", "Order item not found")
	}

	o.rollupStatus()
	o.Touch()
	o.IncrementVersion()

	return nil
}

func (o *Order) rollupStatus() {
	allReady := true
	allCompleted := true
	anyPreparing := false
	for idx := range o.Items {
		if o.Items[idx].Status != OrderItemStatusReady {
			allReady = false
		}
		if o.Items[idx].Status != OrderItemStatusCompleted {
			allCompleted = false
		}
		if o.Items[idx].Status == OrderItemStatusPreparing {
			anyPreparing = true
		}
	}

	switch {
	case anyPreparing:
		o.Status = OrderStatusPreparing
	case allCompleted:
		o.Status = OrderStatusCompleted
	case allReady:
		o.Status = OrderStatusReady
	}
}

// MergeFrom folds the source order's lines into this order. Lines for the
// same menu item are combined; totals and guest counts add up. The caller
// deletes the source order and releases its table afterwards.
func (o *Order) MergeFrom(source *Order) error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Cannot merge into a closed order")
	}
	if source.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Cannot merge a closed order")
	}
	if source.ID == o.ID {
		return shared.NewDomainError("INVALID_MERGE", "Cannot merge an order into itself")
	}

	for _, incoming := range source.Items {
		merged := false
		for idx := range o.Items {
			if o.Items[idx].MenuItemID == incoming.MenuItemID {
				o.Items[idx].Quantity += incoming.Quantity
				o.Items[idx].ExtrasPrice = o.Items[idx].ExtrasPrice.Add(incoming.ExtrasPrice)
				o.Items[idx].Touch()
				merged = true
				break
			}
		}
		if !merged {
			item := incoming
			item.BaseEntity = shared.NewBaseEntity()
			item.OrderID = o.ID
			o.Items = append(o.Items, item)
		}
	}

	o.GuestCount += source.GuestCount
	o.TotalPrice = o.TotalPrice.Add(source.TotalPrice)
	o.Touch()
	o.IncrementVersion()

	return nil
}

// Checkout closes the order after payment
func (o *Order) Checkout() error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Order is already closed")
	}

	o.Status = OrderStatusCheckout
	o.Touch()
	o.IncrementVersion()

	return nil
}

// Cancel voids the order
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Order is already closed")
	}

	o.Status = OrderStatusCancelled
	o.Touch()
	o.IncrementVersion()

	return nil
}

// MarkFulfilled records that stock has been consumed for this order.
// Fulfilling twice would deplete batches twice.
func (o *Order) MarkFulfilled() error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("ORDER_CLOSED", "Cannot fulfill a closed order")
	}
	if o.Fulfilled {
		return shared.NewDomainError("ALREADY_FULFILLED", "Order stock has already been consumed")
	}

	o.Fulfilled = true
	o.Touch()
	o.IncrementVersion()

	return nil
}

// IsActive returns true if the order is still open
func (o *Order) IsActive() bool {
	return !o.Status.IsTerminal()
}
