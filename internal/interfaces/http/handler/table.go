package handler

import (
	diningapp "github.com/dinehub/backend/internal/application/dining"
	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/gin-gonic/gin"
)

// TableHandler handles dining table endpoints
type TableHandler struct {
	BaseHandler
	tableService *diningapp.TableService
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(tableService *diningapp.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// Create adds a dining table
// POST /api/v1/tables
func (h *TableHandler) Create(c *gin.Context) {
	var req diningapp.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = currentUserID(c)

	resp, err := h.tableService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all tables
// GET /api/v1/tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tables)
}

// GetByID returns one table
// GET /api/v1/tables/:id
func (h *TableHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	resp, err := h.tableService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update renames a table or moves it to another section
// PUT /api/v1/tables/:id
func (h *TableHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req diningapp.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.tableService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetStatus changes a table's occupancy state
// PATCH /api/v1/tables/:id/status
func (h *TableHandler) SetStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req diningapp.SetTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.tableService.SetStatus(c.Request.Context(), id, dining.TableStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a table with no active order
// DELETE /api/v1/tables/:id
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
