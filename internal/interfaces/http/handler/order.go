package handler

import (
	diningapp "github.com/dinehub/backend/internal/application/dining"
	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles customer order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *diningapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *diningapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places an order
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req diningapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CustomerID = currentUserID(c)

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns orders, open ones first
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter diningapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one order
// GET /api/v1/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// KitchenView returns a section's open orders, filtered to its lines
// GET /api/v1/orders/kitchen/:id
func (h *OrderHandler) KitchenView(c *gin.Context) {
	sectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	views, err := h.orderService.KitchenView(c.Request.Context(), sectionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// SetItemStatus updates one line's preparation state
// PUT /api/v1/orders/:id/items/:itemID/status
func (h *OrderHandler) SetItemStatus(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	itemID, ok := parseUUIDParam(c, "itemID")
	if !ok {
		h.BadRequest(c, "Invalid order item ID")
		return
	}

	var req diningapp.SetOrderItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.orderService.SetItemStatus(c.Request.Context(), orderID, itemID, dining.OrderItemStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Merge folds one open order into another
// POST /api/v1/orders/merge
func (h *OrderHandler) Merge(c *gin.Context) {
	var req diningapp.MergeOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.orderService.Merge(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Fulfill consumes the stock behind an order's recipes
// POST /api/v1/orders/:id/fulfill
func (h *OrderHandler) Fulfill(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.Fulfill(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Checkout closes an order and releases its table
// PUT /api/v1/orders/:id/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.Checkout(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel voids an open order and releases its table
// PUT /api/v1/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
