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

func orderLines(sectionID *uuid.UUID, n int) []dining.OrderLine {
	out := make([]dining.OrderLine, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dining.OrderLine{
			MenuItemID: uuid.New(),
			Title:      "margherita",
			SectionID:  sectionID,
			Quantity:   1,
			UnitPrice:  decimal.NewFromInt(12),
		})
	}
	return out
}

func mustOrder(t *testing.T, orderNumber string, tableID *uuid.UUID, lines []dining.OrderLine) *dining.Order {
	t.Helper()
	order, err := dining.NewOrder(orderNumber, dining.OrderTypeDineIn, tableID, "", "", 2, lines, nil)
	require.NoError(t, err)
	return order
}

func countOrderItems(t *testing.T, db *gorm.DB, orderID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&dining.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error)
	return count
}

func TestGormOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save persists items and find preloads them", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrderRepository(db)

		tableID := uuid.New()
		order := mustOrder(t, "100001", &tableID, orderLines(nil, 2))
		require.NoError(t, repo.Save(ctx, order))

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 2)
		require.True(t, found.TotalPrice.Equal(decimal.NewFromInt(24)))
	})

	t.Run("save reconciles removed items", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrderRepository(db)

		order := mustOrder(t, "100002", nil, orderLines(nil, 3))
		require.NoError(t, repo.Save(ctx, order))
		require.EqualValues(t, 3, countOrderItems(t, db, order.ID))

		order.Items = order.Items[:1]
		require.NoError(t, repo.Save(ctx, order))
		require.EqualValues(t, 1, countOrderItems(t, db, order.ID))
	})

	t.Run("find active by table skips closed orders", func(t *testing.T) {
		repo := NewGormOrderRepository(newTestDB(t))
		tableID := uuid.New()

		closed := mustOrder(t, "100003", &tableID, orderLines(nil, 1))
		require.NoError(t, closed.Cancel())
		require.NoError(t, repo.Save(ctx, closed))

		_, err := repo.FindActiveByTable(ctx, tableID)
		require.ErrorIs(t, err, shared.ErrNotFound)

		open := mustOrder(t, "100004", &tableID, orderLines(nil, 1))
		require.NoError(t, repo.Save(ctx, open))

		found, err := repo.FindActiveByTable(ctx, tableID)
		require.NoError(t, err)
		require.Equal(t, open.ID, found.ID)
	})

	t.Run("find all lists open orders before closed ones", func(t *testing.T) {
		repo := NewGormOrderRepository(newTestDB(t))

		closed := mustOrder(t, "100005", nil, orderLines(nil, 1))
		require.NoError(t, closed.Cancel())
		require.NoError(t, repo.Save(ctx, closed))

		open := mustOrder(t, "100006", nil, orderLines(nil, 1))
		require.NoError(t, repo.Save(ctx, open))

		orders, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, orders, 2)
		require.Equal(t, open.ID, orders[0].ID)
		require.Equal(t, closed.ID, orders[1].ID)
	})

	t.Run("find active by section matches line sections", func(t *testing.T) {
		repo := NewGormOrderRepository(newTestDB(t))
		sectionID := uuid.New()

		inSection := mustOrder(t, "100007", nil, orderLines(&sectionID, 1))
		require.NoError(t, repo.Save(ctx, inSection))

		elsewhere := mustOrder(t, "100008", nil, orderLines(nil, 1))
		require.NoError(t, repo.Save(ctx, elsewhere))

		closed := mustOrder(t, "100009", nil, orderLines(&sectionID, 1))
		require.NoError(t, closed.Cancel())
		require.NoError(t, repo.Save(ctx, closed))

		orders, err := repo.FindActiveBySection(ctx, sectionID)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, inSection.ID, orders[0].ID)
	})

	t.Run("filter by status", func(t *testing.T) {
		repo := NewGormOrderRepository(newTestDB(t))

		pending := mustOrder(t, "100010", nil, orderLines(nil, 1))
		require.NoError(t, repo.Save(ctx, pending))

		cancelled := mustOrder(t, "100011", nil, orderLines(nil, 1))
		require.NoError(t, cancelled.Cancel())
		require.NoError(t, repo.Save(ctx, cancelled))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(dining.OrderStatusCancelled)
		orders, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, cancelled.ID, orders[0].ID)

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("delete removes order and items", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrderRepository(db)

		order := mustOrder(t, "100012", nil, orderLines(nil, 2))
		require.NoError(t, repo.Save(ctx, order))

		require.NoError(t, repo.Delete(ctx, order.ID))
		require.EqualValues(t, 0, countOrderItems(t, db, order.ID))

		_, err := repo.FindByID(ctx, order.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}
