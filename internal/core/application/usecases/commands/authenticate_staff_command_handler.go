package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/pkg/errs"
)

// AuthenticateStaffCommandHandler checks admin credentials against the
// stored bcrypt hash.
type AuthenticateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewAuthenticateStaffCommandHandler(uowFactory StaffUoWFactory) AuthenticateStaffCommandHandler {
	return AuthenticateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle returns the account on success and staff.ErrInvalidCredentials
// for an unknown email or a wrong password alike.
func (h *AuthenticateStaffCommandHandler) Handle(ctx context.Context, cmd AuthenticateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Email() == "" || cmd.Password() == "" {
		return nil, staff.ErrInvalidCredentials
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.StaffRepository().FindByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, staff.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = account.Authenticate(cmd.Password()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
