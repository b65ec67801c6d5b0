package dining

import (
	"context"
	"testing"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTableService() (*TableService, *MockTableRepository, *MockSectionRepository) {
	tableRepo := new(MockTableRepository)
	sectionRepo := new(MockSectionRepository)
	return NewTableService(tableRepo, sectionRepo), tableRepo, sectionRepo
}

func TestTableService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates available table in a section", func(t *testing.T) {
		service, tableRepo, sectionRepo := newTableService()

		section, err := dining.NewSection("patio", nil)
		require.NoError(t, err)

		sectionRepo.On("FindByID", ctx, section.ID).Return(section, nil)
		tableRepo.On("Save", ctx, mock.AnythingOfType("*dining.Table")).Return(nil)

		resp, err := service.Create(ctx, CreateTableRequest{Title: "T1", SectionID: &section.ID})
		require.NoError(t, err)
		assert.Equal(t, "T1", resp.Title)
		assert.Equal(t, "Available", resp.Status)
	})

	t.Run("unknown section", func(t *testing.T) {
		service, tableRepo, sectionRepo := newTableService()

		section, err := dining.NewSection("patio", nil)
		require.NoError(t, err)

		sectionRepo.On("FindByID", ctx, section.ID).Return(nil, shared.ErrNotFound)

		_, err = service.Create(ctx, CreateTableRequest{Title: "T1", SectionID: &section.ID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		tableRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTableService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves available table", func(t *testing.T) {
		service, tableRepo, _ := newTableService()

		table, err := dining.NewTable("T1", nil, nil)
		require.NoError(t, err)

		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		tableRepo.On("Save", ctx, table).Return(nil)

		resp, err := service.SetStatus(ctx, table.ID, dining.TableStatusReserved)
		require.NoError(t, err)
		assert.Equal(t, "Reserved", resp.Status)
	})

	t.Run("cannot reserve occupied table", func(t *testing.T) {
		service, tableRepo, _ := newTableService()

		table, err := dining.NewTable("T1", nil, nil)
		require.NoError(t, err)
		table.Occupy()

		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		_, err = service.SetStatus(ctx, table.ID, dining.TableStatusReserved)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TABLE_OCCUPIED", domainErr.Code)
	})
}

func TestTableService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot delete occupied table", func(t *testing.T) {
		service, tableRepo, _ := newTableService()

		table, err := dining.NewTable("T1", nil, nil)
		require.NoError(t, err)
		table.Occupy()

		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		err = service.Delete(ctx, table.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		tableRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes free table", func(t *testing.T) {
		service, tableRepo, _ := newTableService()

		table, err := dining.NewTable("T1", nil, nil)
		require.NoError(t, err)

		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		tableRepo.On("Delete", ctx, table.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, table.ID))
		tableRepo.AssertExpectations(t)
	})
}
