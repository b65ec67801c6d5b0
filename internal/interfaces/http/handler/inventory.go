package handler

import (
	inventoryapp "github.com/dinehub/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles inventory item and stock endpoints
type InventoryHandler struct {
	BaseHandler
	itemService        *inventoryapp.ItemService
	consumptionService *inventoryapp.ConsumptionService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(itemService *inventoryapp.ItemService, consumptionService *inventoryapp.ConsumptionService) *InventoryHandler {
	return &InventoryHandler{
		itemService:        itemService,
		consumptionService: consumptionService,
	}
}

// Create registers a new inventory item
// POST /api/v1/inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = currentUserID(c)

	resp, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns a paginated inventory snapshot
// GET /api/v1/inventory
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.ItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Search returns a lightweight item list for pickers
// GET /api/v1/inventory/items
func (h *InventoryHandler) Search(c *gin.Context) {
	items, err := h.itemService.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID returns one inventory item
// GET /api/v1/inventory/:id
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// BatchHistory returns an item's stock batch ledger
// GET /api/v1/inventory/batches/:id
func (h *InventoryHandler) BatchHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.itemService.GetBatchHistory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update rewrites an item's details
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = currentUserID(c)

	resp, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an item that has no stock batches
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Consume depletes stock oldest batch first
// POST /api/v1/inventory/consume
func (h *InventoryHandler) Consume(c *gin.Context) {
	var req inventoryapp.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.ConsumedBy = currentUserID(c)

	resp, err := h.consumptionService.Consume(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
