// Package http is the inbound REST adapter. It implements the generated
// servers.ServerInterface on top of the application commands and queries.
package http

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/generated/servers"
)

// Command handler contracts, satisfied by pointers to the handlers in
// package commands.
type (
	LoginCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCustomerCommand) (*customer.Customer, error)
	}
	AuthenticateStaffHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateStaffCommand) (*staff.Staff, error)
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}
	DeleteProductHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (commands.CartLine, error)
	}
	UpdateCartItemQuantityHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCartItemQuantityCommand) (commands.CartLine, error)
	}
	RemoveCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) error
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	UpdatePaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePaymentStatusCommand) (*order.Order, error)
	}
)

// Query handler contracts.
type (
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductView, error)
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.OrderPage, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error)
	}
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	LoginCustomer          LoginCustomerHandler
	AuthenticateStaff      AuthenticateStaffHandler
	CreateProduct          CreateProductHandler
	UpdateProduct          UpdateProductHandler
	DeleteProduct          DeleteProductHandler
	AddCartItem            AddCartItemHandler
	UpdateCartItemQuantity UpdateCartItemQuantityHandler
	RemoveCartItem         RemoveCartItemHandler
	PlaceOrder             PlaceOrderHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	UpdatePaymentStatus    UpdatePaymentStatusHandler
}

// Queries groups the read-side handlers.
type Queries struct {
	ListProducts       ListProductsHandler
	GetProduct         GetProductHandler
	GetCart            GetCartHandler
	GetCustomer        GetCustomerHandler
	ListOrders         ListOrdersHandler
	GetOrder           GetOrderHandler
	ListCustomerOrders ListCustomerOrdersHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	sessions *SessionManager
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(commands Commands, queries Queries, sessions *SessionManager) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
		sessions: sessions,
	}
}
