// Package commands contains business operations that modify system state.
// Every command is validated by its constructor and executed by a handler
// inside one unit of work: Begin, repository calls, Commit, with a deferred
// Rollback that is a no-op once the transaction committed.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// ProductUoW manages transactions for menu maintenance.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CustomerUoW manages transactions for sign-in.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CartUoW manages cart edits, which read products to validate them.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans cart, products and orders so that placing an order
	// and emptying the cart commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lines, _ := uow.CartRepository().ListByCustomer(ctx, customerID)
	//   // ... build the order
	//   _ = uow.OrderRepository().Add(ctx, o)
	//   _ = uow.CartRepository().DeleteByCustomer(ctx, customerID)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages order lifecycle changes made by staff and jobs.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffUoW manages back-office accounts.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
