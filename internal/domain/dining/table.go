package dining

import (
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TableStatus represents the occupancy state of a dining table
type TableStatus string

const (
	TableStatusAvailable TableStatus = "Available"
	TableStatusOccupied  TableStatus = "Occupied"
	TableStatusReserved  TableStatus = "Reserved"
)

// IsValid checks if the table status is valid
func (s TableStatus) IsValid() bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}

// Table is a physical dining table. It is occupied when an active order
// references it and released on checkout, cancel or merge.
type Table struct {
	shared.BaseAggregateRoot
	Title     string      `gorm:"type:varchar(100);not null"`
	SectionID *uuid.UUID  `gorm:"type:uuid;index"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'Available'"`
	CreatedBy *uuid.UUID  `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Table) TableName() string {
	return "dining_tables"
}

// NewTable creates an available table
func NewTable(title string, sectionID, createdBy *uuid.UUID) (*Table, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TABLE_TITLE", "Table title cannot be empty")
	}

	return &Table{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		SectionID:         sectionID,
		Status:            TableStatusAvailable,
		CreatedBy:         createdBy,
	}, nil
}

// Rename changes the table title and section
func (t *Table) Rename(title string, sectionID *uuid.UUID) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TABLE_TITLE", "Table title cannot be empty")
	}

	t.Title = title
	t.SectionID = sectionID
	t.Touch()
	t.IncrementVersion()

	return nil
}

// Occupy marks the table as seated
func (t *Table) Occupy() {
	t.Status = TableStatusOccupied
	t.Touch()
}

// Reserve marks the table as reserved
func (t *Table) Reserve() error {
	if t.Status == TableStatusOccupied {
		return shared.NewDomainError("TABLE_OCCUPIED", "Cannot reserve an occupied table")
	}

	t.Status = TableStatusReserved
	t.Touch()

	return nil
}

// Release frees the table
func (t *Table) Release() {
	t.Status = TableStatusAvailable
	t.Touch()
}

// IsAvailable returns true if the table can seat a new order
func (t *Table) IsAvailable() bool {
	return t.Status == TableStatusAvailable
}
