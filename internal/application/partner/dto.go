package partner

import (
	"time"

	"github.com/dinehub/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateSupplierRequest is the request to create a supplier
type CreateSupplierRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Code      string     `json:"code" binding:"omitempty,max=50"`
	Phone     string     `json:"phone" binding:"omitempty,max=50"`
	Address   string     `json:"address"`
	Type      string     `json:"type" binding:"omitempty,oneof=company individual distributor"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateSupplierRequest is the request to update a supplier
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Code    string `json:"code" binding:"omitempty,max=50"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address"`
	Type    string `json:"type" binding:"omitempty,oneof=company individual distributor"`
}

// SetSupplierStatusRequest toggles a supplier's status
type SetSupplierStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// SupplierListFilter carries list query parameters
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// SupplierResponse is the supplier representation returned to clients
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupplierResponse maps a supplier aggregate to its response form
func NewSupplierResponse(s *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Code:      s.Code,
		Phone:     s.Phone,
		Address:   s.Address,
		Status:    string(s.Status),
		Type:      string(s.Type),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
