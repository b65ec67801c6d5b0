package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/dinehub/backend/internal/domain/purchasing"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustPurchase(t *testing.T, invoiceNumber string, supplierID uuid.UUID, lines []purchasing.PurchaseLine) *purchasing.Purchase {
	t.Helper()
	purchase, err := purchasing.NewPurchase("weekly produce", invoiceNumber, supplierID, time.Now(), lines, decimal.Zero, "", nil)
	require.NoError(t, err)
	return purchase
}

func countPurchaseItems(t *testing.T, db *gorm.DB, purchaseID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&purchasing.PurchaseItem{}).Where("purchase_id = ?", purchaseID).Count(&count).Error)
	return count
}

func TestGormPurchaseRepository(t *testing.T) {
	ctx := context.Background()

	lines := func(n int) []purchasing.PurchaseLine {
		out := make([]purchasing.PurchaseLine, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, purchasing.PurchaseLine{
				ItemID:    uuid.New(),
				Quantity:  decimal.NewFromInt(int64(i + 1)),
				UnitPrice: decimal.NewFromInt(3),
			})
		}
		return out
	}

	t.Run("save persists lines and find preloads them", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormPurchaseRepository(db)

		purchase := mustPurchase(t, "INV-00001", uuid.New(), lines(2))
		require.NoError(t, repo.Save(ctx, purchase))

		found, err := repo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 2)
		require.True(t, found.TotalAmount.Equal(purchase.TotalAmount))
	})

	t.Run("replacing lines reconciles the child rows", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormPurchaseRepository(db)

		purchase := mustPurchase(t, "INV-00002", uuid.New(), lines(3))
		require.NoError(t, repo.Save(ctx, purchase))
		require.EqualValues(t, 3, countPurchaseItems(t, db, purchase.ID))

		require.NoError(t, purchase.Replace("weekly produce", purchase.SupplierID, time.Now(), lines(1), decimal.Zero, "", nil))
		require.NoError(t, repo.Save(ctx, purchase))

		require.EqualValues(t, 1, countPurchaseItems(t, db, purchase.ID))

		found, err := repo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
	})

	t.Run("exists by invoice number", func(t *testing.T) {
		repo := NewGormPurchaseRepository(newTestDB(t))

		require.NoError(t, repo.Save(ctx, mustPurchase(t, "INV-00003", uuid.New(), lines(1))))

		exists, err := repo.ExistsByInvoiceNumber(ctx, "INV-00003")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = repo.ExistsByInvoiceNumber(ctx, "INV-99999")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("find by supplier", func(t *testing.T) {
		repo := NewGormPurchaseRepository(newTestDB(t))
		supplierID := uuid.New()

		require.NoError(t, repo.Save(ctx, mustPurchase(t, "INV-00010", supplierID, lines(1))))
		require.NoError(t, repo.Save(ctx, mustPurchase(t, "INV-00011", supplierID, lines(1))))
		require.NoError(t, repo.Save(ctx, mustPurchase(t, "INV-00012", uuid.New(), lines(1))))

		purchases, err := repo.FindBySupplier(ctx, supplierID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, purchases, 2)
	})

	t.Run("delete removes purchase and lines", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormPurchaseRepository(db)

		purchase := mustPurchase(t, "INV-00020", uuid.New(), lines(2))
		require.NoError(t, repo.Save(ctx, purchase))

		require.NoError(t, repo.Delete(ctx, purchase.ID))
		require.EqualValues(t, 0, countPurchaseItems(t, db, purchase.ID))

		_, err := repo.FindByID(ctx, purchase.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)

		require.ErrorIs(t, repo.Delete(ctx, purchase.ID), shared.ErrNotFound)
	})
}
