package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("creates active supplier with normalized fields", func(t *testing.T) {
		supplier, err := NewSupplier("Fresh Farms", "sales@freshfarms.test", "ff-01", " 555-0101 ", "12 Market St", SupplierTypeDistributor, nil)

		require.NoError(t, err)
		assert.Equal(t, "Fresh Farms", supplier.Name)
		assert.Equal(t, "FF-01", supplier.Code)
		assert.Equal(t, "555-0101", supplier.Phone)
		assert.Equal(t, SupplierStatusActive, supplier.Status)
		assert.True(t, supplier.IsActive())
	})

	t.Run("defaults type to company", func(t *testing.T) {
		supplier, err := NewSupplier("Acme", "", "", "", "", "", nil)

		require.NoError(t, err)
		assert.Equal(t, SupplierTypeCompany, supplier.Type)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("   ", "", "", "", "", SupplierTypeCompany, nil)
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewSupplier("Acme", "not-an-email", "", "", "", SupplierTypeCompany, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewSupplier("Acme", "", "", "", "", SupplierType("franchise"), nil)
		assert.Error(t, err)
	})
}

func TestSupplierStatusTransitions(t *testing.T) {
	supplier, err := NewSupplier("Acme", "", "", "", "", SupplierTypeCompany, nil)
	require.NoError(t, err)

	supplier.Deactivate()
	assert.Equal(t, SupplierStatusInactive, supplier.Status)
	assert.False(t, supplier.IsActive())

	supplier.Activate()
	assert.True(t, supplier.IsActive())
}

func TestSupplierUpdate(t *testing.T) {
	supplier, err := NewSupplier("Acme", "", "", "", "", SupplierTypeCompany, nil)
	require.NoError(t, err)

	err = supplier.Update("Acme Foods", "orders@acme.test", "ac-2", "555-0102", "9 Dock Rd", SupplierTypeIndividual)

	require.NoError(t, err)
	assert.Equal(t, "Acme Foods", supplier.Name)
	assert.Equal(t, "AC-2", supplier.Code)
	assert.Equal(t, SupplierTypeIndividual, supplier.Type)
}
