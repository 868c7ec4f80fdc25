package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/product"
)

// UpdateProductCommandHandler edits menu products.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle loads the product, applies the new details and saves it. Unknown
// products yield errs.ObjectNotFoundError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.Update(cmd.Details(), h.now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
