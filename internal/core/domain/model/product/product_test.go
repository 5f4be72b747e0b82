package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := product.NewProduct(id, "Road Bike", 10)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Road Bike", p.Name())
		assert.Equal(t, 10, p.CurrentStock())
		assert.False(t, p.IsOversold())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Road Bike", 10)
		require.Error(t, err)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_IsOversold(t *testing.T) {
	t.Run("negative stock is oversold", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Road Bike", -3)

		require.NoError(t, err)
		assert.True(t, p.IsOversold())
	})

	t.Run("zero stock is not oversold", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Road Bike", 0)

		require.NoError(t, err)
		assert.False(t, p.IsOversold())
	})
}

func TestRestoreProduct(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), "Road Bike", 4)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.CurrentStock())
}
