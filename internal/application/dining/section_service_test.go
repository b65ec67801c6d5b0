package dining

import (
	"context"
	"testing"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSectionService() (*SectionService, *MockSectionRepository, *MockTableRepository, *MockMenuItemRepository) {
	sectionRepo := new(MockSectionRepository)
	tableRepo := new(MockTableRepository)
	menuRepo := new(MockMenuItemRepository)
	return NewSectionService(sectionRepo, tableRepo, menuRepo), sectionRepo, tableRepo, menuRepo
}

func TestSectionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates section with lowercased title", func(t *testing.T) {
		service, sectionRepo, _, _ := newSectionService()

		sectionRepo.On("ExistsByTitle", ctx, "grill", uuid.Nil).Return(false, nil)
		sectionRepo.On("Save", ctx, mock.AnythingOfType("*dining.Section")).Return(nil)

		resp, err := service.Create(ctx, CreateSectionRequest{Title: "  Grill "})
		require.NoError(t, err)
		assert.Equal(t, "grill", resp.Title)
		sectionRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		service, sectionRepo, _, _ := newSectionService()

		sectionRepo.On("ExistsByTitle", ctx, "grill", uuid.Nil).Return(true, nil)

		_, err := service.Create(ctx, CreateSectionRequest{Title: "Grill"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestSectionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes empty section", func(t *testing.T) {
		service, sectionRepo, tableRepo, menuRepo := newSectionService()

		section, err := dining.NewSection("grill", nil)
		require.NoError(t, err)

		sectionRepo.On("FindByID", ctx, section.ID).Return(section, nil)
		tableRepo.On("CountBySection", ctx, section.ID).Return(int64(0), nil)
		menuRepo.On("CountBySection", ctx, section.ID).Return(int64(0), nil)
		sectionRepo.On("Delete", ctx, section.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, section.ID))
		sectionRepo.AssertExpectations(t)
	})

	t.Run("refuses section with tables", func(t *testing.T) {
		service, sectionRepo, tableRepo, _ := newSectionService()

		section, err := dining.NewSection("grill", nil)
		require.NoError(t, err)

		sectionRepo.On("FindByID", ctx, section.ID).Return(section, nil)
		tableRepo.On("CountBySection", ctx, section.ID).Return(int64(2), nil)

		err = service.Delete(ctx, section.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		sectionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("refuses section with menu items", func(t *testing.T) {
		service, sectionRepo, tableRepo, menuRepo := newSectionService()

		section, err := dining.NewSection("grill", nil)
		require.NoError(t, err)

		sectionRepo.On("FindByID", ctx, section.ID).Return(section, nil)
		tableRepo.On("CountBySection", ctx, section.ID).Return(int64(0), nil)
		menuRepo.On("CountBySection", ctx, section.ID).Return(int64(3), nil)

		err = service.Delete(ctx, section.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
	})
}
