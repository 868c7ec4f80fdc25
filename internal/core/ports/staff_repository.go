package ports

import (
	"context"

	"foodorder/internal/core/domain/model/staff"
)

type StaffRepository interface {
	Add(ctx context.Context, aggregate *staff.Staff) error
	Update(ctx context.Context, aggregate *staff.Staff) error

	// FindByEmail expects a normalized address, see staff.NormalizeEmail.
	FindByEmail(ctx context.Context, email string) (*staff.Staff, error)
}
