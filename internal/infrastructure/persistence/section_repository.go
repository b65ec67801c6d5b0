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

// GormSectionRepository implements dining.SectionRepository using GORM
type GormSectionRepository struct {
	db *gorm.DB
}

// NewGormSectionRepository creates a new GormSectionRepository
func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

// FindByID finds a section by its ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Section, error) {
	var section dining.Section
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindAll finds sections matching the filter
func (r *GormSectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.Section, error) {
	var sections []dining.Section
	query := r.db.WithContext(ctx).Model(&dining.Section{})

	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	// Sections are a short fixed list; title order is the contract
	query = query.Order("title ASC")

	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// ExistsByTitle checks whether another section already uses the title
func (r *GormSectionRepository) ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&dining.Section{}).
		Where("title = ?", strings.ToLower(strings.TrimSpace(title)))
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a section
func (r *GormSectionRepository) Save(ctx context.Context, section *dining.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete deletes a section
func (r *GormSectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dining.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSectionRepository implements SectionRepository
var _ dining.SectionRepository = (*GormSectionRepository)(nil)
