package dining

import (
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Section is a kitchen section; menu items route to one for preparation.
type Section struct {
	shared.BaseAggregateRoot
	Title     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Section) TableName() string {
	return "sections"
}

// NewSection creates a new kitchen section
func NewSection(title string, createdBy *uuid.UUID) (*Section, error) {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return nil, shared.NewDomainError("INVALID_SECTION_TITLE", "Section title cannot be empty")
	}

	return &Section{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		CreatedBy:         createdBy,
	}, nil
}

// Rename changes the section title
func (s *Section) Rename(title string) error {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return shared.NewDomainError("INVALID_SECTION_TITLE", "Section title cannot be empty")
	}

	s.Title = title
	s.Touch()
	s.IncrementVersion()

	return nil
}
