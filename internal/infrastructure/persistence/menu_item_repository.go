package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements dining.MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item with its ingredient mappings
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.MenuItem, error) {
	var item dining.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDs finds multiple menu items with their ingredient mappings
func (r *GormMenuItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]dining.MenuItem, error) {
	if len(ids) == 0 {
		return []dining.MenuItem{}, nil
	}
	var items []dining.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAll finds menu items matching the filter
func (r *GormMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.MenuItem, error) {
	var items []dining.MenuItem
	query := r.db.WithContext(ctx).Model(&dining.MenuItem{})

	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "section_id":
			query = query.Where("section_id = ?", value)
		case "available":
			query = query.Where("available = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	} else {
		query = query.Order("title ASC")
	}

	if err := query.Preload("Ingredients").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountBySection counts menu items routed to a section
func (r *GormMenuItemRepository) CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dining.MenuItem{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByTitle checks whether another menu item already uses the title
func (r *GormMenuItemRepository) ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&dining.MenuItem{}).
		Where("title = ?", strings.ToLower(strings.TrimSpace(title)))
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a menu item together with its ingredient mappings.
// The recipe is replaced wholesale: mappings no longer present are deleted.
func (r *GormMenuItemRepository) Save(ctx context.Context, item *dining.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(item).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(item.Ingredients))
		for i := range item.Ingredients {
			currentIDs[i] = item.Ingredients[i].ID
		}

		if len(currentIDs) > 0 {
			if err := tx.Where("menu_item_id = ? AND id NOT IN ?", item.ID, currentIDs).
				Delete(&dining.MenuItemIngredient{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("menu_item_id = ?", item.ID).
				Delete(&dining.MenuItemIngredient{}).Error; err != nil {
				return err
			}
		}

		for i := range item.Ingredients {
			item.Ingredients[i].MenuItemID = item.ID
			if err := tx.Save(&item.Ingredients[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes a menu item and its ingredient mappings
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&dining.MenuItemIngredient{}, "menu_item_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&dining.MenuItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ dining.MenuItemRepository = (*GormMenuItemRepository)(nil)
