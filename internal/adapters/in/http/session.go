package http

import (
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// Role tells customer sessions from back-office sessions. Each role has its
// own cookie so a browser can hold both.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

const (
	CustomerCookieName = "customer_session"
	StaffCookieName    = "staff_session"

	DefaultSessionTTL    = 30 * 24 * time.Hour
	minSessionSecretSize = 32
	sessionIssuer        = "foodorder"
	principalContextKey  = "foodorder.principal"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    kernel.UUID
	Role  Role
	Email string
}

type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

// SessionManager issues and verifies HS256-signed session cookies.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type sessionClaims struct {
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func NewSessionManager(cfg SessionConfig) (*SessionManager, error) {
	if len(cfg.Secret) < minSessionSecretSize {
		return nil, errs.NewValueIsOutOfRangeError("sessionSecret length", len(cfg.Secret), minSessionSecretSize, "unbounded")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{secret: cfg.Secret, ttl: ttl, secure: cfg.Secure, now: time.Now}, nil
}

// Issue signs a session for p and returns the cookie carrying it.
func (m *SessionManager) Issue(p Principal) (*http.Cookie, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	claims := sessionClaims{
		Role:  p.Role,
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        kernel.NewUUID().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     cookieName(p.Role),
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Verify parses a session token and checks it was issued for role.
func (m *SessionManager) Verify(role Role, token string) (Principal, error) {
	if token == "" {
		return Principal{}, errs.NewUnauthorizedError("session is missing")
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("session is invalid", err)
	}
	if claims.Issuer != sessionIssuer || claims.Role != role {
		return Principal{}, errs.NewUnauthorizedError("session is not valid for this resource")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("session subject is invalid", err)
	}

	return Principal{ID: id, Role: claims.Role, Email: claims.Email}, nil
}

// Expired returns a cookie that removes the role's session from the browser.
func (m *SessionManager) Expired(role Role) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName(role),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// authenticate reads the role's cookie from the request, verifies it and
// stores the principal on the echo context.
func (m *SessionManager) authenticate(c echo.Context, role Role) error {
	cookie, err := c.Request().Cookie(cookieName(role))
	if err != nil {
		return errs.NewUnauthorizedErrorWithCause("session is missing", err)
	}
	p, err := m.Verify(role, cookie.Value)
	if err != nil {
		return err
	}
	c.Set(principalContextKey, p)
	return nil
}

func cookieName(role Role) string {
	if role == RoleStaff {
		return StaffCookieName
	}
	return CustomerCookieName
}

// principalFrom returns the caller authenticated for role.
func principalFrom(c echo.Context, role Role) (Principal, error) {
	p, ok := c.Get(principalContextKey).(Principal)
	if !ok || p.Role != role {
		return Principal{}, errs.NewUnauthorizedError("session is required")
	}
	return p, nil
}
