package commands

import (
	"context"
	"time"
)

// UpdateCartItemQuantityCommandHandler sets the quantity of an existing line.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	now        func() time.Time
}

func NewUpdateCartItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns errs.ObjectNotFoundError for unknown lines and
// errs.ForbiddenError for lines in another customer's cart.
func (h *UpdateCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantityCommand) (CartLine, error) {
	if err := cmd.Validate(); err != nil {
		return CartLine{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CartLine{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return CartLine{}, err
	}
	if err = item.EnsureOwnedBy(cmd.CustomerID()); err != nil {
		return CartLine{}, err
	}

	if err = item.SetQuantity(cmd.Quantity(), h.now().UTC()); err != nil {
		return CartLine{}, err
	}
	if err = repo.Update(ctx, item); err != nil {
		return CartLine{}, err
	}

	p, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return CartLine{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartLine{}, err
	}

	return CartLine{Item: item, Product: p}, nil
}
