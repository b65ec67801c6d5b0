package dining

import (
	"context"
	"strings"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SectionService handles kitchen section operations
type SectionService struct {
	sectionRepo  dining.SectionRepository
	tableRepo    dining.TableRepository
	menuItemRepo dining.MenuItemRepository
}

// NewSectionService creates a new SectionService
func NewSectionService(sectionRepo dining.SectionRepository, tableRepo dining.TableRepository, menuItemRepo dining.MenuItemRepository) *SectionService {
	return &SectionService{
		sectionRepo:  sectionRepo,
		tableRepo:    tableRepo,
		menuItemRepo: menuItemRepo,
	}
}

// Create creates a new kitchen section
func (s *SectionService) Create(ctx context.Context, req CreateSectionRequest) (*SectionResponse, error) {
	title := strings.ToLower(strings.TrimSpace(req.Title))
	exists, err := s.sectionRepo.ExistsByTitle(ctx, title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A section with this title already exists")
	}

	section, err := dining.NewSection(req.Title, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	return NewSectionResponse(section), nil
}

// Update renames a kitchen section
func (s *SectionService) Update(ctx context.Context, id uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := strings.ToLower(strings.TrimSpace(req.Title))
	exists, err := s.sectionRepo.ExistsByTitle(ctx, title, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A section with this title already exists")
	}

	if err := section.Rename(req.Title); err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	return NewSectionResponse(section), nil
}

// Delete deletes a section. Sections still referenced by tables or menu items
// cannot be deleted.
func (s *SectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sectionRepo.FindByID(ctx, id); err != nil {
		return err
	}

	tables, err := s.tableRepo.CountBySection(ctx, id)
	if err != nil {
		return err
	}
	if tables > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete a section that still has tables")
	}

	menuItems, err := s.menuItemRepo.CountBySection(ctx, id)
	if err != nil {
		return err
	}
	if menuItems > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete a section that still has menu items")
	}

	return s.sectionRepo.Delete(ctx, id)
}

// GetByID fetches a single section
func (s *SectionService) GetByID(ctx context.Context, id uuid.UUID) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSectionResponse(section), nil
}

// List lists all sections
func (s *SectionService) List(ctx context.Context) ([]SectionResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 100

	sections, err := s.sectionRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]SectionResponse, 0, len(sections))
	for idx := range sections {
		responses = append(responses, *NewSectionResponse(&sections[idx]))
	}
	return responses, nil
}
