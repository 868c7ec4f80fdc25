package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/metrics"
)

// ExpirePendingOrdersCommandHandler cancels orders left pending past the
// configured TTL. It runs from the background scheduler.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle cancels up to one batch of stale pending orders and reports how
// many were cancelled.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now().UTC()
	repo := uow.OrderRepository()

	orders, err := repo.ListPendingPlacedBefore(ctx, now.Add(-cmd.OlderThan()), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		if err = o.ChangeStatus(order.Cancelled, now); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	for range orders {
		metrics.OrderStatusChanged(string(order.Cancelled))
	}

	return len(orders), nil
}
