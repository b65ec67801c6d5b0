package persistence

import (
	"context"
	"testing"

	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countIngredients(t *testing.T, db *gorm.DB, menuItemID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&dining.MenuItemIngredient{}).Where("menu_item_id = ?", menuItemID).Count(&count).Error)
	return count
}

func TestGormMenuItemRepository(t *testing.T) {
	ctx := context.Background()

	ingredients := func(n int) []dining.IngredientLine {
		out := make([]dining.IngredientLine, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, dining.IngredientLine{
				InventoryItemID: uuid.New(),
				Quantity:        decimal.RequireFromString("0.2"),
			})
		}
		return out
	}

	t.Run("save persists recipe and find preloads it", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormMenuItemRepository(db)

		item, err := dining.NewMenuItem("Margherita", decimal.NewFromInt(11), nil, ingredients(2), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))

		found, err := repo.FindByID(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, "margherita", found.Title)
		require.Len(t, found.Ingredients, 2)
	})

	t.Run("updating the recipe replaces it wholesale", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormMenuItemRepository(db)

		item, err := dining.NewMenuItem("carbonara", decimal.NewFromInt(13), nil, ingredients(3), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))
		require.EqualValues(t, 3, countIngredients(t, db, item.ID))

		require.NoError(t, item.Update("carbonara", decimal.NewFromInt(13), nil, true, ingredients(1)))
		require.NoError(t, repo.Save(ctx, item))
		require.EqualValues(t, 1, countIngredients(t, db, item.ID))
	})

	t.Run("exists by title is case insensitive", func(t *testing.T) {
		repo := NewGormMenuItemRepository(newTestDB(t))

		item, err := dining.NewMenuItem("Tiramisu", decimal.NewFromInt(6), nil, nil, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))

		exists, err := repo.ExistsByTitle(ctx, "TIRAMISU", uuid.Nil)
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = repo.ExistsByTitle(ctx, "TIRAMISU", item.ID)
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("find all filters by section and availability", func(t *testing.T) {
		repo := NewGormMenuItemRepository(newTestDB(t))
		sectionID := uuid.New()

		inSection, err := dining.NewMenuItem("grilled salmon", decimal.NewFromInt(18), &sectionID, nil, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, inSection))

		offMenu, err := dining.NewMenuItem("seasonal soup", decimal.NewFromInt(7), &sectionID, nil, nil)
		require.NoError(t, err)
		require.NoError(t, offMenu.Update("seasonal soup", decimal.NewFromInt(7), &sectionID, false, nil))
		require.NoError(t, repo.Save(ctx, offMenu))

		// Unavailability must survive the first insert
		reloaded, err := repo.FindByID(ctx, offMenu.ID)
		require.NoError(t, err)
		require.False(t, reloaded.Available)

		filter := shared.DefaultFilter()
		filter.Filters["section_id"] = sectionID
		items, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, items, 2)

		filter.Filters["available"] = true
		items, err = repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, inSection.ID, items[0].ID)

		count, err := repo.CountBySection(ctx, sectionID)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)
	})

	t.Run("delete removes the recipe rows", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormMenuItemRepository(db)

		item, err := dining.NewMenuItem("bruschetta", decimal.NewFromInt(5), nil, ingredients(2), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))

		require.NoError(t, repo.Delete(ctx, item.ID))
		require.EqualValues(t, 0, countIngredients(t, db, item.ID))

		_, err = repo.FindByID(ctx, item.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}
