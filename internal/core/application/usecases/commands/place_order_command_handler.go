package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/metrics"
)

// PlaceOrderCommandHandler creates an order from the cart and empties the
// cart in the same transaction. The order.created event is published by the
// unit of work after commit.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.Checkout
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, checkout services.Checkout) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory, checkout: checkout, now: time.Now}
}

// Handle turns the customer's cart into a pending order.
//
// Parameters:
//   - ctx: request context, also bounding the transaction
//   - cmd: the customer placing the order
//
// Returns:
//   - *order.Order: the placed order with its item snapshots and total
//   - error: services.ErrCartIsEmpty for an empty cart, errs.ObjectNotFoundError
//     for a deleted product, errs.ValueIsInvalidError for an inactive one
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	cartRepo := uow.CartRepository()
	items, err := cartRepo.ListByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}
	products, err := uow.ProductRepository().GetMany(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID()] = i
	}

	// Oldest lines first so the receipt follows the order things were added.
	lines := make([]services.CheckoutLine, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		line := services.CheckoutLine{Item: items[i]}
		if idx, ok := byID[items[i].ProductID()]; ok {
			line.Product = products[idx]
		}
		lines = append(lines, line)
	}

	placed, err := h.checkout.PlaceOrder(cmd.CustomerID(), lines, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}
	if err = cartRepo.DeleteByCustomer(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	metrics.OrderPlaced()

	return placed, nil
}
