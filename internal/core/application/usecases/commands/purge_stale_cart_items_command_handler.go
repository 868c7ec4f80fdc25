package commands

import (
	"context"
	"time"
)

// PurgeStaleCartItemsCommandHandler drops cart lines nobody touched within
// the retention window.
type PurgeStaleCartItemsCommandHandler struct {
	uowFactory CartUoWFactory
	now        func() time.Time
}

func NewPurgeStaleCartItemsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartItemsCommandHandler {
	return PurgeStaleCartItemsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the number of lines removed.
func (h *PurgeStaleCartItemsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartItemsCommand) (int64, error) {
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

	removed, err := uow.CartRepository().DeleteUpdatedBefore(ctx, h.now().UTC().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
