package dining

import (
	"time"

	inventoryapp "github.com/dinehub/backend/internal/application/inventory"
	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSectionRequest is the request to create a kitchen section
type CreateSectionRequest struct {
	Title     string     `json:"title" binding:"required,max=100"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateSectionRequest is the request to rename a kitchen section
type UpdateSectionRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

// SectionResponse is the section representation returned to clients
type SectionResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSectionResponse maps a section to its response form
func NewSectionResponse(s *dining.Section) *SectionResponse {
	return &SectionResponse{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CreateTableRequest is the request to create a dining table
type CreateTableRequest struct {
	Title     string     `json:"title" binding:"required,max=100"`
	SectionID *uuid.UUID `json:"section_id"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateTableRequest is the request to update a dining table
type UpdateTableRequest struct {
	Title     string     `json:"title" binding:"required,max=100"`
	SectionID *uuid.UUID `json:"section_id"`
}

// SetTableStatusRequest changes a table's occupancy state
type SetTableStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Available Occupied Reserved"`
}

// TableResponse is the table representation returned to clients
type TableResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTableResponse maps a table to its response form
func NewTableResponse(t *dining.Table) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		Title:     t.Title,
		SectionID: t.SectionID,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// IngredientRequest maps one inventory item consumed per unit of a menu item
type IngredientRequest struct {
	InventoryItemID uuid.UUID       `json:"inventory_item_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateMenuItemRequest is the request to create a menu item
type CreateMenuItemRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Price       decimal.Decimal     `json:"price" binding:"required"`
	SectionID   *uuid.UUID          `json:"section_id"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
	CreatedBy   *uuid.UUID          `json:"-"`
}

// UpdateMenuItemRequest is the request to update a menu item
type UpdateMenuItemRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Price       decimal.Decimal     `json:"price" binding:"required"`
	SectionID   *uuid.UUID          `json:"section_id"`
	Available   bool                `json:"available"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

// IngredientResponse is one ingredient mapping of a menu item
type IngredientResponse struct {
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// MenuItemResponse is the menu item representation returned to clients
type MenuItemResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Price       decimal.Decimal      `json:"price"`
	SectionID   *uuid.UUID           `json:"section_id,omitempty"`
	Available   bool                 `json:"available"`
	Ingredients []IngredientResponse `json:"ingredients"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewMenuItemResponse maps a menu item to its response form
func NewMenuItemResponse(m *dining.MenuItem) *MenuItemResponse {
	ingredients := make([]IngredientResponse, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, IngredientResponse{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
		})
	}
	return &MenuItemResponse{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		SectionID:   m.SectionID,
		Available:   m.Available,
		Ingredients: ingredients,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// OrderLineRequest is one requested order line. Price and title come from the
// menu item at order time, never from the client.
type OrderLineRequest struct {
	MenuItemID  uuid.UUID       `json:"menu_item_id" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	ExtrasPrice decimal.Decimal `json:"extras_price"`
	Notes       string          `json:"notes"`
}

// CreateOrderRequest is the request to place an order
type CreateOrderRequest struct {
	Type        string             `json:"type" binding:"required,oneof=dine-in delivery takeaway"`
	TableID     *uuid.UUID         `json:"table_id"`
	Location    string             `json:"location"`
	LocationMap string             `json:"location_map"`
	GuestCount  int                `json:"guest_count" binding:"omitempty,min=0"`
	Items       []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	CustomerID  *uuid.UUID         `json:"-"`
}

// SetOrderItemStatusRequest updates the preparation state of one order line
type SetOrderItemStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready completed"`
}

// MergeOrdersRequest folds one order into another
type MergeOrdersRequest struct {
	SourceOrderID uuid.UUID `json:"source_order_id" binding:"required"`
	TargetOrderID uuid.UUID `json:"target_order_id" binding:"required"`
}

// OrderListFilter carries order list query parameters
type OrderListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status" binding:"omitempty,oneof=pending preparing ready completed checkout cancelled"`
	Type     string `form:"type" binding:"omitempty,oneof=dine-in delivery takeaway"`
}

// OrderItemResponse is one order line returned to clients
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	MenuItemID  uuid.UUID       `json:"menu_item_id"`
	Title       string          `json:"title"`
	SectionID   *uuid.UUID      `json:"section_id,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ExtrasPrice decimal.Decimal `json:"extras_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
}

// OrderResponse is the order representation returned to clients
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	Type        string              `json:"type"`
	TableID     *uuid.UUID          `json:"table_id,omitempty"`
	Location    string              `json:"location,omitempty"`
	LocationMap string              `json:"location_map,omitempty"`
	GuestCount  int                 `json:"guest_count"`
	Items       []OrderItemResponse `json:"items"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	Status      string              `json:"status"`
	Fulfilled   bool                `json:"fulfilled"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewOrderResponse maps an order to its response form
func NewOrderResponse(o *dining.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for idx := range o.Items {
		line := &o.Items[idx]
		items = append(items, OrderItemResponse{
			ID:          line.ID,
			MenuItemID:  line.MenuItemID,
			Title:       line.Title,
			SectionID:   line.SectionID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ExtrasPrice: line.ExtrasPrice,
			LineTotal:   line.LineTotal(),
			Notes:       line.Notes,
			Status:      string(line.Status),
		})
	}
	return &OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Type:        string(o.Type),
		TableID:     o.TableID,
		Location:    o.Location,
		LocationMap: o.LocationMap,
		GuestCount:  o.GuestCount,
		Items:       items,
		TotalPrice:  o.TotalPrice,
		Status:      string(o.Status),
		Fulfilled:   o.Fulfilled,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// KitchenOrderResponse is an order as a kitchen screen sees it: only the lines
// routed to the requested section.
type KitchenOrderResponse struct {
	OrderID     uuid.UUID           `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

// NewKitchenOrderResponse maps an order to its kitchen view, keeping only the
// lines belonging to the section.
func NewKitchenOrderResponse(o *dining.Order, sectionID uuid.UUID) *KitchenOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for idx := range o.Items {
		line := &o.Items[idx]
		if line.SectionID == nil || *line.SectionID != sectionID {
			continue
		}
		items = append(items, OrderItemResponse{
			ID:          line.ID,
			MenuItemID:  line.MenuItemID,
			Title:       line.Title,
			SectionID:   line.SectionID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ExtrasPrice: line.ExtrasPrice,
			LineTotal:   line.LineTotal(),
			Notes:       line.Notes,
			Status:      string(line.Status),
		})
	}
	return &KitchenOrderResponse{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Type:        string(o.Type),
		Status:      string(o.Status),
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}

// FulfillOrderResponse reports an order fulfillment together with the stock
// consumption it caused.
type FulfillOrderResponse struct {
	Order       *OrderResponse                `json:"order"`
	Consumption *inventoryapp.ConsumeResponse `json:"consumption,omitempty"`
}
