package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrLoginCustomerCommandIsNotConstructed = errors.New(
	"LoginCustomerCommand must be created via NewLoginCustomerCommand constructor",
)

// LoginCustomerCommand signs a customer in with a LIFF ID token.
type LoginCustomerCommand struct { //nolint:recvcheck //using for validation
	idToken string

	guard guard.ConstructorGuard
}

func NewLoginCustomerCommand(idToken string) (LoginCustomerCommand, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return LoginCustomerCommand{}, errs.NewValueIsRequiredError("idToken")
	}
	return LoginCustomerCommand{idToken: idToken, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCustomerCommand) Validate() error {
	return c.guard.Validate(ErrLoginCustomerCommandIsNotConstructed)
}

func (c LoginCustomerCommand) IDToken() string { return c.idToken }
