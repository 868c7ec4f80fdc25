package cmd

import (
	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/events"
	"foodorder/internal/adapters/out/line"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	verifier   ports.IdentityVerifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		verifier:   line.NewVerifier(cfg.LineLoginChannelID, line.WithVerifyURL(cfg.LineVerifyURL)),
	}
}

// NewEventPublisher picks Kafka when a broker is configured and falls back to
// logging events otherwise. The returned close func is never nil.
func NewEventPublisher(cfg Config, logger *zap.Logger) (ports.EventPublisher, func() error, error) {
	if cfg.KafkaHost == "" {
		return events.NewLogPublisher(logger), func() error { return nil }, nil
	}
	p, err := events.NewKafkaPublisher(cfg.KafkaHost, cfg.KafkaOrderChangedTopic, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW { return c.unitOfWork() })
}

func (c *CompositionRoot) unitOfWork() *postgres.GormUnitOfWork {
	return c.uowFactory.Create().(*postgres.GormUnitOfWork)
}

func (c *CompositionRoot) CreateEnsureStaffUserCommandHandler() *commands.EnsureStaffUserCommandHandler {
	h := commands.NewEnsureStaffUserCommandHandler(c.staffUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() *commands.ExpirePendingOrdersCommandHandler {
	h := commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePurgeStaleCartItemsCommandHandler() *commands.PurgeStaleCartItemsCommandHandler {
	h := commands.NewPurgeStaleCartItemsCommandHandler(c.cartUoWFactory())
	return &h
}

// CreateCommands wires every write-side handler the HTTP server calls.
func (c *CompositionRoot) CreateCommands() http.Commands {
	loginCustomer := commands.NewLoginCustomerCommandHandler(c.customerUoWFactory(), c.verifier)
	authenticateStaff := commands.NewAuthenticateStaffCommandHandler(c.staffUoWFactory())
	createProduct := commands.NewCreateProductCommandHandler(c.productUoWFactory())
	updateProduct := commands.NewUpdateProductCommandHandler(c.productUoWFactory())
	deleteProduct := commands.NewDeleteProductCommandHandler(c.productUoWFactory())
	addCartItem := commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
	updateCartItem := commands.NewUpdateCartItemQuantityCommandHandler(c.cartUoWFactory())
	removeCartItem := commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
	placeOrder := commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory(), services.NewCheckout())
	changeOrderStatus := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	updatePaymentStatus := commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory())

	return http.Commands{
		LoginCustomer:          &loginCustomer,
		AuthenticateStaff:      &authenticateStaff,
		CreateProduct:          &createProduct,
		UpdateProduct:          &updateProduct,
		DeleteProduct:          &deleteProduct,
		AddCartItem:            &addCartItem,
		UpdateCartItemQuantity: &updateCartItem,
		RemoveCartItem:         &removeCartItem,
		PlaceOrder:             &placeOrder,
		ChangeOrderStatus:      &changeOrderStatus,
		UpdatePaymentStatus:    &updatePaymentStatus,
	}
}

// CreateQueries wires the read side straight onto the connection pool.
func (c *CompositionRoot) CreateQueries() http.Queries {
	return http.Queries{
		ListProducts:       queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:         queries.NewGetProductQueryHandler(c.gormDB),
		GetCart:            queries.NewGetCartQueryHandler(c.gormDB),
		GetCustomer:        queries.NewGetCustomerQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateSessionManager() (*http.SessionManager, error) {
	return http.NewSessionManager(http.SessionConfig{
		Secret: []byte(c.cfg.SessionSecret),
		TTL:    c.cfg.SessionTTL,
		Secure: c.cfg.CookieSecure,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.CreatePurgeStaleCartItemsCommandHandler(),
		jobs.Config{PendingOrderTTL: c.cfg.PendingOrderTTL, CartRetention: c.cfg.CartRetention},
		c.logger,
	)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
