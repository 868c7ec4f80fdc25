package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
)

// IdentityVerifier exchanges a LIFF ID token for the verified LINE profile.
// Invalid or expired tokens yield errs.UnauthorizedError.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (customer.Profile, error)
}
