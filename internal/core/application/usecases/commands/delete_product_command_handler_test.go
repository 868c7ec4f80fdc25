package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	t.Run("should delete the product", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteProductCommand(id)
		require.NoError(t, err)

		repo := new(MockProductRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Delete", ctx, id).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductCommandHandler(factory)

		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should not commit when the product is unknown", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteProductCommand(id)

		repo := new(MockProductRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("product", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject commands built without the constructor", func(t *testing.T) {
		factory := new(MockProductUoWFactory)
		h := commands.NewDeleteProductCommandHandler(factory)

		err := h.Handle(t.Context(), commands.DeleteProductCommand{})

		require.ErrorIs(t, err, commands.ErrDeleteProductCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
