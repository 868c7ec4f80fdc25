package services_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 11, 4, 19, 0, 0, 0, time.UTC)

func newProduct(t *testing.T, name string, price int64, active bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:     name,
		Price:    price,
		Category: product.Burger,
		IsActive: active,
	}, now)
	require.NoError(t, err)
	return p
}

func newLine(t *testing.T, customerID kernel.UUID, p *product.Product, qty int) services.CheckoutLine {
	t.Helper()
	item, err := cart.RestoreItem(kernel.NewUUID(), customerID, p.ID(), qty, now, now)
	require.NoError(t, err)
	return services.CheckoutLine{Item: item, Product: p}
}

func TestCheckout_PlaceOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	fixedNumber := func(time.Time) order.Number { return "ORD-20251104-ABC123" }
	checkout := services.NewCheckoutWithNumbers(fixedNumber)

	t.Run("should snapshot lines and total", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)
		fries := newProduct(t, "ポテトL", 330, true)

		o, err := checkout.PlaceOrder(customerID, []services.CheckoutLine{
			newLine(t, customerID, burger, 2),
			newLine(t, customerID, fries, 1),
		}, now)

		require.NoError(t, err)
		assert.Equal(t, order.Number("ORD-20251104-ABC123"), o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, int64(1110), o.TotalAmount().Yen())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, "チーズバーガー", o.Items()[0].ProductName())
		assert.Equal(t, int64(780), o.Items()[0].Subtotal().Yen())
		assert.True(t, o.BelongsTo(customerID))
	})

	t.Run("should skip zero quantity lines", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)
		drink := newProduct(t, "コーラ", 150, true)

		o, err := checkout.PlaceOrder(customerID, []services.CheckoutLine{
			newLine(t, customerID, burger, 0),
			newLine(t, customerID, drink, 1),
		}, now)

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(150), o.TotalAmount().Yen())
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)

		_, err := checkout.PlaceOrder(customerID, nil, now)
		require.ErrorIs(t, err, services.ErrCartIsEmpty)

		_, err = checkout.PlaceOrder(customerID, []services.CheckoutLine{newLine(t, customerID, burger, 0)}, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject inactive products", func(t *testing.T) {
		retired := newProduct(t, "期間限定バーガー", 550, false)

		_, err := checkout.PlaceOrder(customerID, []services.CheckoutLine{newLine(t, customerID, retired, 1)}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "期間限定バーガー")
	})

	t.Run("should reject lines from another cart", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)

		_, err := checkout.PlaceOrder(customerID, []services.CheckoutLine{newLine(t, kernel.NewUUID(), burger, 1)}, now)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should report a missing product", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)
		line := newLine(t, customerID, burger, 1)
		line.Product = nil

		_, err := checkout.PlaceOrder(customerID, []services.CheckoutLine{line}, now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("default checkout generates order numbers", func(t *testing.T) {
		burger := newProduct(t, "チーズバーガー", 390, true)

		o, err := services.NewCheckout().PlaceOrder(customerID, []services.CheckoutLine{newLine(t, customerID, burger, 1)}, now)

		require.NoError(t, err)
		assert.Regexp(t, `^ORD-20251104-[0-9A-Z]{6}$`, o.Number().String())
	})
}
