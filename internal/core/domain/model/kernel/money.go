package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// Money is an amount of Japanese yen. Yen has no minor unit, so the amount is
// a plain integer that is never negative.
type Money struct {
	yen int64
}

// ZeroYen is the additive identity used to start totals.
var ZeroYen = Money{}

// NewMoney returns an amount of yen. Negative amounts are rejected.
func NewMoney(yen int64) (Money, error) {
	if yen < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", yen))
	}
	return Money{yen: yen}, nil
}

// Yen returns the amount as an integer.
func (m Money) Yen() int64 {
	return m.yen
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{yen: m.yen + other.yen}
}

// Multiply returns the amount charged for qty units. qty must be positive.
func (m Money) Multiply(qty int) (Money, error) {
	if qty <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	return Money{yen: m.yen * int64(qty)}, nil
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.yen == other.yen
}

// String renders the amount the way receipts show it, e.g. "¥1,280".
func (m Money) String() string {
	return yenPrinter.Sprintf("¥%d", m.yen)
}
