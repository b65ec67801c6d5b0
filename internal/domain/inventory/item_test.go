package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) *Item {
	t.Helper()
	item, err := NewItem("Tomato", "123456", "kg", decimal.NewFromInt(10), nil)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates item with zero stock", func(t *testing.T) {
		createdBy := uuid.New()
		item, err := NewItem("  Tomato ", "123456", "KG", decimal.NewFromInt(10), &createdBy)

		require.NoError(t, err)
		assert.Equal(t, "tomato", item.ProductName)
		assert.Equal(t, "123456", item.Code)
		assert.Equal(t, "kg", item.Unit)
		assert.True(t, item.Quantity.IsZero())
		assert.True(t, item.TotalValue.IsZero())
		assert.True(t, item.AveragePrice.IsZero())
		assert.Equal(t, ItemStatusOutOfStock, item.Status)
		assert.Len(t, item.GetDomainEvents(), 1)
	})

	t.Run("rejects empty product name", func(t *testing.T) {
		_, err := NewItem("   ", "123456", "kg", decimal.NewFromInt(10), nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewItem("tomato", "123456", "kg", decimal.NewFromInt(-1), nil)
		assert.Error(t, err)
	})
}

func TestStatusForQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity decimal.Decimal
		want     ItemStatus
	}{
		{"zero is out of stock", decimal.Zero, ItemStatusOutOfStock},
		{"one is low stock", decimal.NewFromInt(1), ItemStatusLowStock},
		{"five is low stock", decimal.NewFromInt(5), ItemStatusLowStock},
		{"just above five is in stock", decimal.NewFromFloat(5.01), ItemStatusInStock},
		{"six is in stock", decimal.NewFromInt(6), ItemStatusInStock},
		{"fractional below one is low stock", decimal.NewFromFloat(0.5), ItemStatusLowStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForQuantity(tt.quantity))
		})
	}
}

func TestItemApplyPurchaseLine(t *testing.T) {
	t.Run("adds quantity and value and refreshes derived fields", func(t *testing.T) {
		item := newTestItem(t)

		err := item.ApplyPurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, item.TotalValue.Equal(decimal.NewFromInt(50)))
		assert.True(t, item.AveragePrice.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, ItemStatusInStock, item.Status)
	})

	t.Run("average price is weighted across lines", func(t *testing.T) {
		item := newTestItem(t)

		require.NoError(t, item.ApplyPurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(100)))
		require.NoError(t, item.ApplyPurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(200)))

		assert.True(t, item.AveragePrice.Equal(decimal.NewFromInt(15)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		item := newTestItem(t)
		assert.Error(t, item.ApplyPurchaseLine(decimal.Zero, decimal.NewFromInt(50)))
	})
}

func TestItemReversePurchaseLine(t *testing.T) {
	t.Run("backs out an applied line", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.ApplyPurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(50)))

		err := item.ReversePurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, item.Quantity.IsZero())
		assert.True(t, item.TotalValue.IsZero())
		assert.True(t, item.AveragePrice.IsZero())
		assert.Equal(t, ItemStatusOutOfStock, item.Status)
	})

	t.Run("clamps value at zero on drift", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.ApplyPurchaseLine(decimal.NewFromInt(5), decimal.NewFromInt(20)))

		err := item.ReversePurchaseLine(decimal.NewFromInt(5), decimal.NewFromFloat(20.0001))

		require.NoError(t, err)
		assert.True(t, item.TotalValue.IsZero())
		assert.False(t, item.Quantity.IsNegative())
	})
}

func TestItemConsumeQuantity(t *testing.T) {
	t.Run("drops status to low stock when crossing the threshold", func(t *testing.T) {
		item := newTestItem(t)
		require.NoError(t, item.ApplyPurchaseLine(decimal.NewFromInt(10), decimal.NewFromInt(100)))
		item.ClearDomainEvents()

		err := item.ConsumeQuantity(decimal.NewFromInt(7), nil)

		require.NoError(t, err)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, ItemStatusLowStock, item.Status)

		events := item.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeStockConsumed, events[0].EventType())
		assert.Equal(t, EventTypeStockBelowThreshold, events[1].EventType())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		item := newTestItem(t)
		assert.Error(t, item.ConsumeQuantity(decimal.Zero, nil))
	})
}

func TestItemRecomputeFromBatches(t *testing.T) {
	item := newTestItem(t)
	item.Quantity = decimal.NewFromInt(15)

	b1, err := NewStockBatch(item.ID, uuid.New(), nil, decimal.NewFromInt(10), decimal.NewFromInt(2), item.CreatedAt)
	require.NoError(t, err)
	b2, err := NewStockBatch(item.ID, uuid.New(), nil, decimal.NewFromInt(10), decimal.NewFromInt(3), item.CreatedAt)
	require.NoError(t, err)
	b2.RemainingQuantity = decimal.NewFromInt(5)
	depleted, err := NewStockBatch(item.ID, uuid.New(), nil, decimal.NewFromInt(4), decimal.NewFromInt(9), item.CreatedAt)
	require.NoError(t, err)
	depleted.Deplete(decimal.NewFromInt(4))

	item.RecomputeFromBatches([]StockBatch{*b1, *b2, *depleted})

	// 10*2 + 5*3, depleted batch contributes nothing
	assert.True(t, item.TotalValue.Equal(decimal.NewFromInt(35)), "got %s", item.TotalValue)
	assert.True(t, item.AveragePrice.Equal(decimal.NewFromFloat(2.3333)), "got %s", item.AveragePrice)
	assert.Equal(t, ItemStatusInStock, item.Status)
}
