package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"
)

// CartLine is a stored cart line with the product it references.
type CartLine struct {
	Item    *cart.Item
	Product *product.Product
}

// Subtotal prices the line at the product's current price.
func (l CartLine) Subtotal() kernel.Money {
	return l.Item.Subtotal(l.Product.Price())
}

// AddCartItemCommandHandler implements the cart upsert: the first add of a
// product creates the line, later adds increment it.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	now        func() time.Time
}

// NewAddCartItemCommandHandler creates a handler that reads products and
// writes cart lines through units of work from uowFactory.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle checks that the product exists and is on sale, then creates or
// increments the line in one transaction.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (CartLine, error) {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return CartLine{}, err
	}
	if err = p.EnsureAvailable(); err != nil {
		return CartLine{}, err
	}

	now := h.now().UTC()
	repo := uow.CartRepository()

	existing, err := repo.FindForUpdate(ctx, cmd.CustomerID(), cmd.ProductID())
	var stored *cart.Item
	result := metrics.CartLineIncremented
	switch {
	case err == nil:
		if err = existing.Increase(cmd.Quantity(), now); err != nil {
			return CartLine{}, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return CartLine{}, err
		}
		stored = existing
	case errors.Is(err, errs.ErrObjectNotFound):
		item, newErr := cart.NewItem(kernel.NewUUID(), cmd.CustomerID(), cmd.ProductID(), cmd.Quantity(), now)
		if newErr != nil {
			return CartLine{}, newErr
		}
		// A concurrent first add for the same product merges into one line.
		if stored, err = repo.Upsert(ctx, item); err != nil {
			return CartLine{}, err
		}
		if stored.Quantity() == cmd.Quantity() {
			result = metrics.CartLineCreated
		}
	default:
		return CartLine{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartLine{}, err
	}
	metrics.CartUpserted(result)

	return CartLine{Item: stored, Product: p}, nil
}
