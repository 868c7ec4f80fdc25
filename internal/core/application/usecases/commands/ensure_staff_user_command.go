package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrEnsureStaffUserCommandIsNotConstructed = errors.New(
	"EnsureStaffUserCommand must be created via NewEnsureStaffUserCommand constructor",
)

// EnsureStaffUserCommand bootstraps a back-office account at startup.
type EnsureStaffUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureStaffUserCommand(email, password string) (EnsureStaffUserCommand, error) {
	email = staff.NormalizeEmail(email)
	var err error
	if email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return EnsureStaffUserCommand{}, err
	}
	return EnsureStaffUserCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c EnsureStaffUserCommand) Validate() error {
	return c.guard.Validate(ErrEnsureStaffUserCommandIsNotConstructed)
}

func (c EnsureStaffUserCommand) Email() string    { return c.email }
func (c EnsureStaffUserCommand) Password() string { return c.password }
