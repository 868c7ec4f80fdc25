package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand records payment at the counter. An empty
// method clears the stored one.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus
	paymentMethod string

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
	paymentMethod string,
) (UpdatePaymentStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), paymentStatus.Validate()); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}
	return UpdatePaymentStatusCommand{
		orderID:       orderID,
		paymentStatus: paymentStatus,
		paymentMethod: strings.TrimSpace(paymentMethod),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID               { return c.orderID }
func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus { return c.paymentStatus }
func (c UpdatePaymentStatusCommand) PaymentMethod() string              { return c.paymentMethod }
