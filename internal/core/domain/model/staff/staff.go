// Package staff holds the back-office accounts that manage products and
// orders. Passwords are stored as bcrypt hashes only.
package staff

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var (
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff")
	ErrInvalidCredentials    = errs.NewUnauthorizedError("invalid email or password")
)

type Staff struct {
	id           kernel.UUID
	email        string
	passwordHash []byte
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewStaff creates an account and hashes password with bcrypt.
func NewStaff(id kernel.UUID, email, password string, now time.Time) (*Staff, error) {
	s := &Staff{createdAt: now, updatedAt: now, guard: guard.NewConstructorGuard()}
	if err := errors.Join(id.Validate(), s.setEmail(email), s.setPassword(password)); err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

func RestoreStaff(id kernel.UUID, email string, passwordHash []byte, createdAt, updatedAt time.Time) (*Staff, error) {
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	s := &Staff{
		id:           id,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}
	if err := errors.Join(id.Validate(), s.setEmail(email)); err != nil {
		return nil, err
	}
	return s, nil
}

// NormalizeEmail lowercases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// Authenticate checks password against the stored hash.
func (s *Staff) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword replaces the stored hash.
func (s *Staff) ChangePassword(password string, now time.Time) error {
	if err := s.setPassword(password); err != nil {
		return err
	}
	s.updatedAt = now
	return nil
}

func (s *Staff) ID() kernel.UUID      { return s.id }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) PasswordHash() []byte { return s.passwordHash }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time { return s.updatedAt }

func (s *Staff) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	s.email = email
	return nil
}

func (s *Staff) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	s.passwordHash = hash
	return nil
}
