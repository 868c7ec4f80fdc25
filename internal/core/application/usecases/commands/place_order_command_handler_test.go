package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	burger := activeProduct("テリヤキバーガー", 480)
	fries := activeProduct("ポテトM", 290)
	// Newest first, as the repository returns them.
	lines := []*cart.Item{cartLine(customerID, fries.ID(), 1), cartLine(customerID, burger.ID(), 2)}
	cmd, _ := commands.NewPlaceOrderCommand(customerID)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("ListByCustomer", ctx, customerID).Return(lines, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetMany", ctx, []kernel.UUID{fries.ID(), burger.ID()}).
			Return([]*product.Product{burger, fries}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("DeleteByCustomer", ctx, customerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, int64(1250), placed.TotalAmount().Yen())
	require.Len(t, placed.Items(), 2)
	assert.Equal(t, "テリヤキバーガー", placed.Items()[0].ProductName())
	assert.Len(t, placed.DomainEvents(), 1)
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(customerID)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("ListByCustomer", ctx, customerID).Return([]*cart.Item{}, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetMany", ctx, []kernel.UUID{}).Return([]*product.Product{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCartIsEmpty)
	uow.AssertNotCalled(t, "OrderRepository")
	cartRepo.AssertNotCalled(t, "DeleteByCustomer", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CartNotEmptiedOnAddError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	burger := activeProduct("テリヤキバーガー", 480)
	cmd, _ := commands.NewPlaceOrderCommand(customerID)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("ListByCustomer", ctx, customerID).
		Return([]*cart.Item{cartLine(customerID, burger.ID(), 1)}, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetMany", ctx, mock.Anything).Return([]*product.Product{burger}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	cartRepo.AssertNotCalled(t, "DeleteByCustomer", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
