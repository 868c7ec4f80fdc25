package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/pkg/errs"
)

// EnsureStaffUserCommandHandler provisions the admin account at startup.
type EnsureStaffUserCommandHandler struct {
	uowFactory StaffUoWFactory
	now        func() time.Time
}

func NewEnsureStaffUserCommandHandler(uowFactory StaffUoWFactory) EnsureStaffUserCommandHandler {
	return EnsureStaffUserCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle creates the account when missing. An existing account whose
// password no longer matches gets the configured password, so rotating
// ADMIN_PASSWORD takes effect on the next start.
func (h *EnsureStaffUserCommandHandler) Handle(ctx context.Context, cmd EnsureStaffUserCommand) (created bool, err error) {
	if err = cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now().UTC()
	repo := uow.StaffRepository()

	existing, err := repo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if existing.Authenticate(cmd.Password()) == nil {
			return false, nil
		}
		if err = existing.ChangePassword(cmd.Password(), now); err != nil {
			return false, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return false, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		account, newErr := staff.NewStaff(kernel.NewUUID(), cmd.Email(), cmd.Password(), now)
		if newErr != nil {
			return false, newErr
		}
		if err = repo.Add(ctx, account); err != nil {
			return false, err
		}
		created = true
	default:
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return created, nil
}
