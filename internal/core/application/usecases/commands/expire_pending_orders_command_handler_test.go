package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel every stale pending order", func(t *testing.T) {
		ctx := t.Context()
		stale := []*order.Order{pendingOrder(kernel.NewUUID()), pendingOrder(kernel.NewUUID())}
		cmd, err := commands.NewExpirePendingOrdersCommand(30*time.Minute, 0)
		require.NoError(t, err)
		assert.Equal(t, commands.DefaultExpireBatchSize, cmd.BatchSize())

		earliest := time.Now().UTC().Add(-30 * time.Minute)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("ListPendingPlacedBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(earliest) && cutoff.Before(time.Now().UTC())
		}), commands.DefaultExpireBatchSize).Return(stale, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewExpirePendingOrdersCommandHandler(factory)
		cancelled, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, cancelled)
		for _, o := range stale {
			assert.Equal(t, order.Cancelled, o.Status())
		}
		repo.AssertExpectations(t)
	})

	t.Run("should keep the batch when one update fails", func(t *testing.T) {
		ctx := t.Context()
		stale := []*order.Order{pendingOrder(kernel.NewUUID())}
		cmd, _ := commands.NewExpirePendingOrdersCommand(time.Hour, 10)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("ListPendingPlacedBefore", ctx, mock.Anything, 10).Return(stale, nil).Once()
		repo.On("Update", ctx, stale[0]).Return(errors.New("deadlock detected")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewExpirePendingOrdersCommandHandler(factory)
		cancelled, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Zero(t, cancelled)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject a non-positive ttl", func(t *testing.T) {
		_, err := commands.NewExpirePendingOrdersCommand(0, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
