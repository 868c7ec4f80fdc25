package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// UpdatePaymentStatusCommandHandler records how and whether an order was paid.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdatePaymentStatusCommandHandler creates the handler. The order row is
// locked through OrderUoWFactory for the duration of the update.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle replaces the payment status and method. An empty method clears the
// stored one. Unknown orders yield errs.ObjectNotFoundError.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdatePayment(cmd.PaymentStatus(), cmd.PaymentMethod(), h.now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
