package cart_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addedAt = time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)

func TestNewItem(t *testing.T) {
	t.Run("should create a line", func(t *testing.T) {
		customerID, productID := kernel.NewUUID(), kernel.NewUUID()

		item, err := cart.NewItem(kernel.NewUUID(), customerID, productID, 2, addedAt)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.BelongsTo(customerID))
		assert.True(t, item.ProductID().IsEqual(productID))
	})

	t.Run("should accept large quantities", func(t *testing.T) {
		item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 150, addedAt)

		require.NoError(t, err)
		assert.Equal(t, 150, item.Quantity())
	})

	t.Run("should reject non-positive quantities and the column overflow", func(t *testing.T) {
		for _, qty := range []int{0, -1, cart.MaxQuantity + 1} {
			_, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), qty, addedAt)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, qty)
		}
	})

	t.Run("should require customer and product", func(t *testing.T) {
		_, err := cart.NewItem(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, 1, addedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "productId")
	})
}

func TestItem_Increase(t *testing.T) {
	t.Run("should add to the existing quantity", func(t *testing.T) {
		item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, addedAt)
		later := addedAt.Add(time.Minute)

		require.NoError(t, item.Increase(2, later))

		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, later, item.UpdatedAt())
		assert.Equal(t, addedAt, item.CreatedAt())
	})

	t.Run("should grow past ninety nine", func(t *testing.T) {
		item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 99, addedAt)

		require.NoError(t, item.Increase(1, addedAt))

		assert.Equal(t, 100, item.Quantity())
	})

	t.Run("should refuse to overflow the column", func(t *testing.T) {
		item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), cart.MaxQuantity-1, addedAt)

		err := item.Increase(2, addedAt)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, cart.MaxQuantity-1, item.Quantity())
	})

	t.Run("should refuse non-positive increments", func(t *testing.T) {
		item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, addedAt)

		require.ErrorIs(t, item.Increase(0, addedAt), errs.ErrValueIsOutOfRange)
	})
}

func TestItem_SetQuantity(t *testing.T) {
	item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, addedAt)

	require.NoError(t, item.SetQuantity(1, addedAt))
	assert.Equal(t, 1, item.Quantity())

	require.ErrorIs(t, item.SetQuantity(0, addedAt), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 1, item.Quantity())
}

func TestItem_EnsureOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	item, _ := cart.NewItem(kernel.NewUUID(), owner, kernel.NewUUID(), 1, addedAt)

	require.NoError(t, item.EnsureOwnedBy(owner))

	err := item.EnsureOwnedBy(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), item.ID().String())
}

func TestItem_Subtotal(t *testing.T) {
	price, _ := kernel.NewMoney(480)
	item, _ := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3, addedAt)
	assert.Equal(t, int64(1440), item.Subtotal(price).Yen())

	legacy, err := cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, addedAt, addedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(0), legacy.Subtotal(price).Yen())
}
