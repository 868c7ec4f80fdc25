package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, yen := range []int64{0, 1, 580, 1_000_000} {
			m, err := kernel.NewMoney(yen)

			require.NoError(t, err)
			assert.Equal(t, yen, m.Yen())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	burger, _ := kernel.NewMoney(580)
	fries, _ := kernel.NewMoney(280)

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, int64(860), burger.Add(fries).Yen())
		assert.True(t, kernel.ZeroYen.Add(burger).IsEqual(burger))
	})

	t.Run("Multiply", func(t *testing.T) {
		total, err := burger.Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1740), total.Yen())
	})

	t.Run("Multiply rejects non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -2} {
			_, err := burger.Multiply(qty)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		yen      int64
		expected string
	}{
		{0, "¥0"},
		{580, "¥580"},
		{1280, "¥1,280"},
		{1000000, "¥1,000,000"},
	}

	for _, tc := range testCases {
		m, err := kernel.NewMoney(tc.yen)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.String())
	}
}
