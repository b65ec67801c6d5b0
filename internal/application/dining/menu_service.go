package dining

import (
	"context"
	"strings"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MenuService handles menu item operations. Ingredient mappings are validated
// against the inventory so a dish can never reference stock that does not exist.
type MenuService struct {
	menuItemRepo dining.MenuItemRepository
	sectionRepo  dining.SectionRepository
	itemRepo     inventory.ItemRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuItemRepo dining.MenuItemRepository, sectionRepo dining.SectionRepository, itemRepo inventory.ItemRepository) *MenuService {
	return &MenuService{
		menuItemRepo: menuItemRepo,
		sectionRepo:  sectionRepo,
		itemRepo:     itemRepo,
	}
}

// Create creates a new menu item
func (s *MenuService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	exists, err := s.menuItemRepo.ExistsByTitle(ctx, strings.TrimSpace(req.Title), uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A menu item with this title already exists")
	}

	if req.SectionID != nil {
		if _, err := s.sectionRepo.FindByID(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}

	lines, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	menuItem, err := dining.NewMenuItem(req.Title, req.Price, req.SectionID, lines, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Save(ctx, menuItem); err != nil {
		return nil, err
	}

	return NewMenuItemResponse(menuItem), nil
}

// Update updates a menu item and replaces its ingredient mappings
func (s *MenuService) Update(ctx context.Context, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	menuItem, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.menuItemRepo.ExistsByTitle(ctx, strings.TrimSpace(req.Title), id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A menu item with this title already exists")
	}

	if req.SectionID != nil {
		if _, err := s.sectionRepo.FindByID(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}

	lines, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	if err := menuItem.Update(req.Title, req.Price, req.SectionID, req.Available, lines); err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Save(ctx, menuItem); err != nil {
		return nil, err
	}

	return NewMenuItemResponse(menuItem), nil
}

// Delete deletes a menu item. Past orders keep their line snapshots.
func (s *MenuService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.menuItemRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.menuItemRepo.Delete(ctx, id)
}

// GetByID fetches a single menu item
func (s *MenuService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	menuItem, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewMenuItemResponse(menuItem), nil
}

// List lists all menu items
func (s *MenuService) List(ctx context.Context) ([]MenuItemResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "title"
	f.OrderDir = "asc"
	f.PageSize = 500

	menuItems, err := s.menuItemRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, 0, len(menuItems))
	for idx := range menuItems {
		responses = append(responses, *NewMenuItemResponse(&menuItems[idx]))
	}
	return responses, nil
}

// resolveIngredients validates that every referenced inventory item exists and
// converts the request lines to domain input.
func (s *MenuService) resolveIngredients(ctx context.Context, reqs []IngredientRequest) ([]dining.IngredientLine, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.InventoryItemID)
	}

	items, err := s.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]struct{}, len(items))
	for idx := range items {
		known[items[idx].ID] = struct{}{}
	}

	lines := make([]dining.IngredientLine, 0, len(reqs))
	for _, req := range reqs {
		if _, ok := known[req.InventoryItemID]; !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "Ingredient inventory item not found")
		}
		lines = append(lines, dining.IngredientLine{
			InventoryItemID: req.InventoryItemID,
			Quantity:        req.Quantity,
		})
	}

	return lines, nil
}
