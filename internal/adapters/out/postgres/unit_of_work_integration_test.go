package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises transactions spanning several
// repositories and the post-commit event hand-off.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
	now       time.Time
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.now = time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)
}

// SetupTest ensures clean database state and a fresh publisher mock.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, suite.publisher, zap.NewNop())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutCommitsAndPublishes() {
	ctx := context.Background()
	c, p := suite.seedCustomerAndProduct(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	line, err := cart.NewItem(kernel.NewUUID(), c.ID(), p.ID(), 2, suite.now)
	suite.Require().NoError(err)
	_, err = uow.CartRepository().Upsert(ctx, line)
	suite.Require().NoError(err)

	placed := suite.newOrder(c.ID(), p)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.CartRepository().DeleteByCustomer(ctx, c.ID()))

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == order.EventTypeCreated &&
			events[0].AggregateID() == placed.ID()
	})).Return(nil).Once()

	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(placed.DomainEvents(), "events are cleared once handed off")

	check := suite.factory.Create()
	stored, err := check.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Len(stored.Items(), 1)
	lines, err := check.CartRepository().ListByCustomer(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Empty(lines)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWritesAndEvents() {
	ctx := context.Background()
	c, p := suite.seedCustomerAndProduct(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	placed := suite.newOrder(c.ID(), p)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))

	_, err := uow.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommit() {
	ctx := context.Background()
	c, p := suite.seedCustomerAndProduct(ctx)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	placed := suite.newOrder(c.ID(), p)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangePublishesOnce() {
	ctx := context.Background()
	c, p := suite.seedCustomerAndProduct(ctx)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	placed := suite.newOrder(c.ID(), p)
	suite.Require().NoError(setup.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.OrderRepository().GetForUpdate(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.ChangeStatus(order.Confirmed, suite.now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(locked.UpdatePayment(order.PaymentPaid, "card", suite.now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		changed, ok := events[0].(order.StatusChangedEvent)
		return ok && changed.From == order.Pending && changed.To == order.Confirmed
	})).Return(nil).Once()

	suite.Require().NoError(uow.Commit(ctx))
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	c, _ := suite.seedCustomerAndProduct(ctx)

	got, err := suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.LineUserID(), got.LineUserID())
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCustomerAndProduct(ctx context.Context) (*customer.Customer, *product.Product) {
	c, err := customer.NewCustomer(kernel.NewUUID(), customer.Profile{
		LineUserID:  "U-" + kernel.NewUUID().String(),
		DisplayName: "佐藤",
	}, suite.now)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:     "テリヤキバーガー",
		Price:    420,
		Category: product.Burger,
		IsActive: true,
	}, suite.now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))
	return c, p
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(customerID kernel.UUID, p *product.Product) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), p.Name(), p.Price(), 2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(suite.now), customerID, []order.Item{item}, suite.now)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
