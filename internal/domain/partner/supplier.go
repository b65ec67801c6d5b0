package partner

import (
	"net/mail"
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// IsValid checks if the supplier status is valid
func (s SupplierStatus) IsValid() bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}

// SupplierType represents the type of supplier
type SupplierType string

const (
	SupplierTypeCompany     SupplierType = "company"
	SupplierTypeIndividual  SupplierType = "individual"
	SupplierTypeDistributor SupplierType = "distributor"
)

// IsValid checks if the supplier type is valid
func (t SupplierType) IsValid() bool {
	switch t {
	case SupplierTypeCompany, SupplierTypeIndividual, SupplierTypeDistributor:
		return true
	}
	return false
}

// Supplier is the aggregate root for supplier-related operations.
// Only active suppliers can be referenced by new purchases.
type Supplier struct {
	shared.BaseAggregateRoot
	Name      string         `gorm:"type:varchar(200);not null"`
	Email     string         `gorm:"type:varchar(200);index"`
	Code      string         `gorm:"type:varchar(50);uniqueIndex"`
	Phone     string         `gorm:"type:varchar(50)"`
	Address   string         `gorm:"type:text"`
	Status    SupplierStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Type      SupplierType   `gorm:"type:varchar(20);not null;default:'company'"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new active supplier
func NewSupplier(name, email, code, phone, address string, supplierType SupplierType, createdBy *uuid.UUID) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if supplierType == "" {
		supplierType = SupplierTypeCompany
	}
	if !supplierType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_TYPE", "Invalid supplier type")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Code:              strings.ToUpper(strings.TrimSpace(code)),
		Phone:             strings.TrimSpace(phone),
		Address:           strings.TrimSpace(address),
		Status:            SupplierStatusActive,
		Type:              supplierType,
		CreatedBy:         createdBy,
	}, nil
}

// Update updates the supplier's details
func (s *Supplier) Update(name, email, code, phone, address string, supplierType SupplierType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if supplierType != "" && !supplierType.IsValid() {
		return shared.NewDomainError("INVALID_SUPPLIER_TYPE", "Invalid supplier type")
	}

	s.Name = name
	s.Email = email
	s.Code = strings.ToUpper(strings.TrimSpace(code))
	s.Phone = strings.TrimSpace(phone)
	s.Address = strings.TrimSpace(address)
	if supplierType != "" {
		s.Type = supplierType
	}
	s.Touch()
	s.IncrementVersion()

	return nil
}

// Activate makes the supplier usable for new purchases
func (s *Supplier) Activate() {
	s.Status = SupplierStatusActive
	s.Touch()
	s.IncrementVersion()
}

// Deactivate blocks the supplier from new purchases; existing records keep
// referencing it.
func (s *Supplier) Deactivate() {
	s.Status = SupplierStatusInactive
	s.Touch()
	s.IncrementVersion()
}

// IsActive returns true if the supplier can be used in new purchases
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
