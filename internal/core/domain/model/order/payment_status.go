package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// PaymentStatus tracks whether the customer has paid at the counter.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	p := PaymentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}
