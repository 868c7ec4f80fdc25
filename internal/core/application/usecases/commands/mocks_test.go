package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) FindByLineUserID(ctx context.Context, lineUserID string) (*customer.Customer, error) {
	args := m.Called(ctx, lineUserID)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Upsert(ctx context.Context, item *cart.Item) (*cart.Item, error) {
	args := m.Called(ctx, item)
	stored, _ := args.Get(0).(*cart.Item)
	return stored, args.Error(1)
}
func (m *MockCartRepository) Update(ctx context.Context, item *cart.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*cart.Item)
	return item, args.Error(1)
}
func (m *MockCartRepository) FindForUpdate(ctx context.Context, customerID, productID kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, customerID, productID)
	item, _ := args.Get(0).(*cart.Item)
	return item, args.Error(1)
}
func (m *MockCartRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.Item, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]*cart.Item)
	return items, args.Error(1)
}
func (m *MockCartRepository) DeleteByCustomer(ctx context.Context, customerID kernel.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}
func (m *MockCartRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) ListPendingPlacedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

type MockIdentityVerifier struct{ mock.Mock }

func (m *MockIdentityVerifier) Verify(ctx context.Context, idToken string) (customer.Profile, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(customer.Profile), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	return m.Called().Get(0).(commands.StaffUoW)
}

var fixtureTime = time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)

func activeProduct(name string, price int64) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:     name,
		Price:    price,
		Category: product.Burger,
		IsActive: true,
	}, fixtureTime)
	if err != nil {
		panic(err)
	}
	return p
}

func inactiveProduct(name string, price int64) *product.Product {
	p := activeProduct(name, price)
	d := p.Details()
	d.IsActive = false
	if err := p.Update(d, fixtureTime); err != nil {
		panic(err)
	}
	return p
}

func cartLine(customerID, productID kernel.UUID, qty int) *cart.Item {
	item, err := cart.RestoreItem(kernel.NewUUID(), customerID, productID, qty, fixtureTime, fixtureTime)
	if err != nil {
		panic(err)
	}
	return item
}

func pendingOrder(customerID kernel.UUID) *order.Order {
	price, _ := kernel.NewMoney(480)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "テリヤキバーガー", price, 1)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(fixtureTime), customerID, []order.Item{item}, fixtureTime)
	if err != nil {
		panic(err)
	}
	o.ClearDomainEvents()
	return o
}
