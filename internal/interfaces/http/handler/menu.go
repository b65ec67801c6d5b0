package handler

import (
	diningapp "github.com/dinehub/backend/internal/application/dining"
	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu item endpoints
type MenuHandler struct {
	BaseHandler
	menuService *diningapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *diningapp.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Create adds a menu item with its recipe
// POST /api/v1/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req diningapp.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = currentUserID(c)

	resp, err := h.menuService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns the full menu
// GET /api/v1/menu
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID returns one menu item
// GET /api/v1/menu/:id
func (h *MenuHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	resp, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update rewrites a menu item and its recipe
// PUT /api/v1/menu/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req diningapp.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.menuService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a menu item
// DELETE /api/v1/menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
