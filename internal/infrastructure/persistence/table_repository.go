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

// GormTableRepository implements dining.TableRepository using GORM
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GormTableRepository
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// FindByID finds a table by its ID
func (r *GormTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Table, error) {
	var table dining.Table
	if err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindAll finds tables matching the filter
func (r *GormTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.Table, error) {
	var tables []dining.Table
	query := r.db.WithContext(ctx).Model(&dining.Table{})

	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "section_id":
			query = query.Where("section_id = ?", value)
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

	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// CountBySection counts tables assigned to a section
func (r *GormTableRepository) CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dining.Table{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a table
func (r *GormTableRepository) Save(ctx context.Context, table *dining.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}

// Delete deletes a table
func (r *GormTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dining.Table{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTableRepository implements TableRepository
var _ dining.TableRepository = (*GormTableRepository)(nil)
