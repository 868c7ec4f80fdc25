package commands

import (
	"context"
)

// RemoveCartItemCommandHandler deletes single cart lines.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes a line after checking it belongs to the customer.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if err = item.EnsureOwnedBy(cmd.CustomerID()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
