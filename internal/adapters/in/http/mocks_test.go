package http

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/domain/model/staff"

	"github.com/stretchr/testify/mock"
)

type MockLoginCustomerHandler struct{ mock.Mock }

func (m *MockLoginCustomerHandler) Handle(ctx context.Context, cmd commands.LoginCustomerCommand) (*customer.Customer, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockAuthenticateStaffHandler struct{ mock.Mock }

func (m *MockAuthenticateStaffHandler) Handle(ctx context.Context, cmd commands.AuthenticateStaffCommand) (*staff.Staff, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockAddCartItemHandler struct{ mock.Mock }

func (m *MockAddCartItemHandler) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (commands.CartLine, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CartLine), args.Error(1)
}

type MockRemoveCartItemHandler struct{ mock.Mock }

func (m *MockRemoveCartItemHandler) Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdatePaymentStatusHandler struct{ mock.Mock }

func (m *MockUpdatePaymentStatusHandler) Handle(ctx context.Context, cmd commands.UpdatePaymentStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ProductView)
	return views, args.Error(1)
}

type MockGetCartHandler struct{ mock.Mock }

func (m *MockGetCartHandler) Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CartView), args.Error(1)
}

type MockGetCustomerHandler struct{ mock.Mock }

func (m *MockGetCustomerHandler) Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CustomerView), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.OrderPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderPage), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}
