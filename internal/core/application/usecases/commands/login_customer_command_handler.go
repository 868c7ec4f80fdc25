package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// LoginCustomerCommandHandler verifies the token with LINE and upserts the
// customer by LINE user id.
type LoginCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	verifier   ports.IdentityVerifier
	now        func() time.Time
}

// NewLoginCustomerCommandHandler creates the handler. verifier exchanges the
// LINE ID token for a profile before any database work starts.
func NewLoginCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	verifier ports.IdentityVerifier,
) LoginCustomerCommandHandler {
	return LoginCustomerCommandHandler{uowFactory: uowFactory, verifier: verifier, now: time.Now}
}

// Handle returns the signed-in customer. Known customers get their profile
// and last login refreshed; inactive ones are refused with
// errs.ForbiddenError.
func (h *LoginCustomerCommandHandler) Handle(ctx context.Context, cmd LoginCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Verify before opening a transaction: it is a network round trip.
	profile, err := h.verifier.Verify(ctx, cmd.IDToken())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now().UTC()
	repo := uow.CustomerRepository()

	c, err := repo.FindByLineUserID(ctx, profile.LineUserID)
	switch {
	case err == nil:
		if err = recordLogin(ctx, repo, c, profile, now); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if c, err = customer.NewCustomer(kernel.NewUUID(), profile, now); err != nil {
			return nil, err
		}
		err = repo.Add(ctx, c)
		if errors.Is(err, errs.ErrConflict) {
			// A concurrent first login registered the account; sign in to it.
			if c, err = repo.FindByLineUserID(ctx, profile.LineUserID); err != nil {
				return nil, err
			}
			err = recordLogin(ctx, repo, c, profile, now)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func recordLogin(
	ctx context.Context,
	repo ports.CustomerRepository,
	c *customer.Customer,
	profile customer.Profile,
	now time.Time,
) error {
	if err := c.RecordLogin(profile, now); err != nil {
		return err
	}
	return repo.Update(ctx, c)
}
