package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/pkg/guard"
)

var ErrAuthenticateStaffCommandIsNotConstructed = errors.New(
	"AuthenticateStaffCommand must be created via NewAuthenticateStaffCommand constructor",
)

// AuthenticateStaffCommand checks back-office credentials.
type AuthenticateStaffCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateStaffCommand never fails on content: empty credentials are
// simply rejected by the handler like wrong ones.
func NewAuthenticateStaffCommand(email, password string) AuthenticateStaffCommand {
	return AuthenticateStaffCommand{
		email:    staff.NormalizeEmail(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c AuthenticateStaffCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateStaffCommandIsNotConstructed)
}

func (c AuthenticateStaffCommand) Email() string    { return c.email }
func (c AuthenticateStaffCommand) Password() string { return c.password }
