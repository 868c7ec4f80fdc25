// Package customer models storefront users identified by their LINE account.
// Customers are created on first LIFF login and refreshed on every login after
// that; deactivated customers can no longer sign in.
package customer

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
	ErrCustomerIsInactive       = errs.NewForbiddenError("customer", "account is inactive")
)

// Profile is the identity provider's view of the user.
type Profile struct {
	LineUserID  string
	DisplayName string
	PictureURL  string
}

// Customer is the aggregate root for a storefront user.
type Customer struct {
	id          kernel.UUID
	lineUserID  string
	displayName string
	pictureURL  string
	nickname    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	lastLoginAt *time.Time

	guard guard.ConstructorGuard
}

// NewCustomer registers a customer from a verified profile. The first login
// counts as a login, so lastLoginAt is stamped too.
func NewCustomer(id kernel.UUID, profile Profile, now time.Time) (*Customer, error) {
	c := &Customer{
		isActive:  true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(c.setID(id), c.setLineUserID(profile.LineUserID), c.setProfile(profile)); err != nil {
		return nil, err
	}
	loginAt := now
	c.lastLoginAt = &loginAt
	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(
	id kernel.UUID,
	profile Profile,
	nickname string,
	isActive bool,
	createdAt, updatedAt time.Time,
	lastLoginAt *time.Time,
) (*Customer, error) {
	c := &Customer{
		nickname:    nickname,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		lastLoginAt: lastLoginAt,
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(c.setID(id), c.setLineUserID(profile.LineUserID), c.setProfile(profile)); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the customer came from a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// RecordLogin refreshes the profile from the identity provider and stamps the
// login time. Inactive customers are refused.
func (c *Customer) RecordLogin(profile Profile, now time.Time) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	if profile.LineUserID != c.lineUserID {
		return errs.NewValueIsInvalidError("lineUserId does not match customer")
	}
	if err := c.setProfile(profile); err != nil {
		return err
	}
	loginAt := now
	c.lastLoginAt = &loginAt
	c.updatedAt = now
	return nil
}

// EnsureActive returns ErrCustomerIsInactive for deactivated accounts.
func (c *Customer) EnsureActive() error {
	if !c.isActive {
		return ErrCustomerIsInactive
	}
	return nil
}

// Deactivate blocks future logins.
func (c *Customer) Deactivate(now time.Time) {
	c.isActive = false
	c.updatedAt = now
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) LineUserID() string      { return c.lineUserID }
func (c *Customer) DisplayName() string     { return c.displayName }
func (c *Customer) PictureURL() string      { return c.pictureURL }
func (c *Customer) Nickname() string        { return c.nickname }
func (c *Customer) IsActive() bool          { return c.isActive }
func (c *Customer) CreatedAt() time.Time    { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time    { return c.updatedAt }
func (c *Customer) LastLoginAt() *time.Time { return c.lastLoginAt }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setLineUserID(lineUserID string) error {
	lineUserID = strings.TrimSpace(lineUserID)
	if lineUserID == "" {
		return errs.NewValueIsRequiredError("lineUserId")
	}
	c.lineUserID = lineUserID
	return nil
}

func (c *Customer) setProfile(profile Profile) error {
	name := strings.TrimSpace(profile.DisplayName)
	if name == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	c.displayName = name
	c.pictureURL = strings.TrimSpace(profile.PictureURL)
	return nil
}
