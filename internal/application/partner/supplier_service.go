package partner

import (
	"context"
	"strings"

	"github.com/dinehub/backend/internal/domain/partner"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByName(ctx, strings.TrimSpace(req.Name), uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A supplier with this name already exists")
	}

	supplier, err := partner.NewSupplier(req.Name, req.Email, req.Code, req.Phone, req.Address, partner.SupplierType(req.Type), req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return NewSupplierResponse(supplier), nil
}

// Update updates a supplier's details
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByName(ctx, strings.TrimSpace(req.Name), id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A supplier with this name already exists")
	}

	if err := supplier.Update(req.Name, req.Email, req.Code, req.Phone, req.Address, partner.SupplierType(req.Type)); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return NewSupplierResponse(supplier), nil
}

// SetStatus activates or deactivates a supplier
func (s *SupplierService) SetStatus(ctx context.Context, id uuid.UUID, status partner.SupplierStatus) (*SupplierResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid supplier status")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == partner.SupplierStatusActive {
		supplier.Activate()
	} else {
		supplier.Deactivate()
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return NewSupplierResponse(supplier), nil
}

// Delete deletes a supplier. Historic purchases keep the supplier reference;
// only the supplier record itself goes away.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// GetByID fetches a single supplier
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSupplierResponse(supplier), nil
}

// List lists suppliers with pagination and optional search
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (*shared.Paginated[SupplierResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for idx := range suppliers {
		responses = append(responses, *NewSupplierResponse(&suppliers[idx]))
	}

	return shared.NewPaginated(responses, total, f.Page, f.PageSize), nil
}
