package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it hands out
// run inside the transaction opened by Begin; domain events recorded by
// aggregates saved through them are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	CustomerRepository() CustomerRepository
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	StaffRepository() StaffRepository
}
