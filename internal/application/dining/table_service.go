package dining

import (
	"context"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TableService handles dining table operations
type TableService struct {
	tableRepo   dining.TableRepository
	sectionRepo dining.SectionRepository
}

// NewTableService creates a new TableService
func NewTableService(tableRepo dining.TableRepository, sectionRepo dining.SectionRepository) *TableService {
	return &TableService{tableRepo: tableRepo, sectionRepo: sectionRepo}
}

// Create creates a new dining table
func (s *TableService) Create(ctx context.Context, req CreateTableRequest) (*TableResponse, error) {
	if req.SectionID != nil {
		if _, err := s.sectionRepo.FindByID(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}

	table, err := dining.NewTable(req.Title, req.SectionID, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	return NewTableResponse(table), nil
}

// Update updates a table's title and section
func (s *TableService) Update(ctx context.Context, id uuid.UUID, req UpdateTableRequest) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SectionID != nil {
		if _, err := s.sectionRepo.FindByID(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}

	if err := table.Rename(req.Title, req.SectionID); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	return NewTableResponse(table), nil
}

// SetStatus changes a table's occupancy state by hand. Occupation and release
// normally follow the order lifecycle; this covers reservations and cleanup.
func (s *TableService) SetStatus(ctx context.Context, id uuid.UUID, status dining.TableStatus) (*TableResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid table status")
	}

	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case dining.TableStatusOccupied:
		table.Occupy()
	case dining.TableStatusReserved:
		if err := table.Reserve(); err != nil {
			return nil, err
		}
	case dining.TableStatusAvailable:
		table.Release()
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	return NewTableResponse(table), nil
}

// Delete deletes a table. Occupied tables cannot be deleted.
func (s *TableService) Delete(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if table.Status == dining.TableStatusOccupied {
		return shared.NewDomainError("CONFLICT", "Cannot delete an occupied table")
	}
	return s.tableRepo.Delete(ctx, id)
}

// GetByID fetches a single table
func (s *TableService) GetByID(ctx context.Context, id uuid.UUID) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewTableResponse(table), nil
}

// List lists all tables
func (s *TableService) List(ctx context.Context) ([]TableResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "title"
	f.OrderDir = "asc"
	f.PageSize = 200

	tables, err := s.tableRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]TableResponse, 0, len(tables))
	for idx := range tables {
		responses = append(responses, *NewTableResponse(&tables[idx]))
	}
	return responses, nil
}
