package handler

import (
	diningapp "github.com/dinehub/backend/internal/application/dining"
	"github.com/gin-gonic/gin"
)

// SectionHandler handles kitchen section endpoints
type SectionHandler struct {
	BaseHandler
	sectionService *diningapp.SectionService
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(sectionService *diningapp.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// Create adds a kitchen section
// POST /api/v1/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req diningapp.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = currentUserID(c)

	resp, err := h.sectionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all sections
// GET /api/v1/sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sections)
}

// GetByID returns one section
// GET /api/v1/sections/:id
func (h *SectionHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	resp, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update renames a section
// PUT /api/v1/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	var req diningapp.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.sectionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a section that no table or menu item references
// DELETE /api/v1/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
