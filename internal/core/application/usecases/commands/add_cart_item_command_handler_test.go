package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("should accept a valid request", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), commands.DefaultCartQuantity)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 1, cmd.Quantity())
	})

	t.Run("should join every problem", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.UUID{}, kernel.UUID{}, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "productId")
	})
}

func TestAddCartItemCommandHandler_Handle_CreatesLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := activeProduct("テリヤキバーガー", 480)
	cmd, _ := commands.NewAddCartItemCommand(customerID, p.ID(), 2)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("FindForUpdate", ctx, customerID, p.ID()).
			Return(nil, errs.NewObjectNotFoundError("cart item", p.ID().String())).Once(),
		cartRepo.On("Upsert", ctx, mock.MatchedBy(func(item *cart.Item) bool {
			return item.Quantity() == 2 && item.BelongsTo(customerID)
		})).Return(cartLine(customerID, p.ID(), 2), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, line.Item.Quantity())
	assert.Equal(t, int64(960), line.Subtotal().Yen())
	productRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_IncrementsExistingLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := activeProduct("ポテトM", 290)
	existing := cartLine(customerID, p.ID(), 1)
	cmd, _ := commands.NewAddCartItemCommand(customerID, p.ID(), 1)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("FindForUpdate", ctx, customerID, p.ID()).Return(existing, nil).Once()
	cartRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, line.Item.Quantity())
	assert.True(t, line.Item.ID().IsEqual(existing.ID()))
	cartRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ProductErrors(t *testing.T) {
	tests := []struct {
		name    string
		product *product.Product
		getErr  error
		wantErr error
	}{
		{
			name:    "unknown product",
			getErr:  errs.NewObjectNotFoundError("product", "missing"),
			wantErr: errs.ErrObjectNotFound,
		},
		{
			name:    "inactive product",
			product: inactiveProduct("期間限定バーガー", 550),
			wantErr: product.ErrProductIsNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			productID := kernel.NewUUID()
			if tt.product != nil {
				productID = tt.product.ID()
			}
			cmd, _ := commands.NewAddCartItemCommand(kernel.NewUUID(), productID, 1)

			productRepo := new(MockProductRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ProductRepository").Return(productRepo).Once()
			productRepo.On("Get", ctx, productID).Return(tt.product, tt.getErr).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockCartUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAddCartItemCommandHandler(factory)
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			uow.AssertNotCalled(t, "CartRepository")
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestAddCartItemCommandHandler_Handle_GrowsPastNinetyNine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := activeProduct("コーラ", 150)
	existing := cartLine(customerID, p.ID(), 99)
	cmd, err := commands.NewAddCartItemCommand(customerID, p.ID(), 5)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("FindForUpdate", ctx, customerID, p.ID()).Return(existing, nil).Once()
	cartRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 104, line.Item.Quantity())
	assert.Equal(t, int64(15600), line.Subtotal().Yen())
}

func TestAddCartItemCommandHandler_Handle_MergedLineOverflowsColumn(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p := activeProduct("コーラ", 150)
	cmd, _ := commands.NewAddCartItemCommand(customerID, p.ID(), 50)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("FindForUpdate", ctx, customerID, p.ID()).
		Return(nil, errs.NewObjectNotFoundError("cart item", "none")).Once()
	cartRepo.On("Upsert", ctx, mock.Anything).
		Return(nil, errs.NewValueIsOutOfRangeError("quantity", 50, 1, cart.MaxQuantity)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddCartItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 1)

	uow := new(MockUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
