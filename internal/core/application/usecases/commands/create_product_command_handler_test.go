package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var burgerDetails = product.Details{
	Name:     "テリヤキバーガー",
	Price:    480,
	Category: product.Burger,
	IsActive: true,
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, burgerDetails)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	p, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.Equal(t, "テリヤキバーガー", p.Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_InvalidDetails(t *testing.T) {
	ctx := t.Context()
	details := burgerDetails
	details.Price = -10
	cmd, _ := commands.NewCreateProductCommand(kernel.NewUUID(), details)
	factory := new(MockProductUoWFactory)

	h := commands.NewCreateProductCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateProductCommandHandler(new(MockProductUoWFactory))

	_, err := h.Handle(t.Context(), commands.CreateProductCommand{})

	require.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}

func TestCreateProductCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProductCommand(kernel.NewUUID(), burgerDetails)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestNewProductCommands_RejectInvalidID(t *testing.T) {
	var zero kernel.UUID

	_, err := commands.NewCreateProductCommand(zero, burgerDetails)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewUpdateProductCommand(zero, burgerDetails)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDeleteProductCommand(zero)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
