// Package verifier defines the credential verification capability the
// join gate depends on, its closed error set, and the implementations
// wired by the server: a MySQL member store, a static in-memory table
// and a Redis backed failed-attempt throttle.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Closed error set returned by every CredentialVerifier.  Anything else
// an implementation runs into is wrapped in ErrUnknown.
var (
	ErrNotFound              = errors.New("identity not found")
	ErrWrongCredential       = errors.New("wrong credential")
	ErrInvalidIdentityFormat = errors.New("invalid identity format")
	ErrRateLimited           = errors.New("too many attempts")
	ErrUnknown               = errors.New("verification failed")
)

// VerifiedIdentity is the result of a successful verification.
type VerifiedIdentity struct {
	Identity   string
	VerifiedAt time.Time
}

// CredentialVerifier authenticates an identity/credential pair.  Verify
// may block on I/O and must honour ctx cancellation.
type CredentialVerifier interface {
	Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error)
}

// Func adapts a plain function to CredentialVerifier.
type Func func(ctx context.Context, identity, credential string) (VerifiedIdentity, error)

// Verify calls f.
func (f Func) Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error) {
	return f(ctx, identity, credential)
}

var validate = validator.New()

// ValidIdentity reports whether identity is an email-shaped token.
func ValidIdentity(identity string) bool {
	return validate.Var(identity, "required,email") == nil
}

// Classify maps err onto the closed error set.  Known sentinels pass
// through; context errors and everything else are wrapped in ErrUnknown
// so callers can still inspect the cause.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrWrongCredential),
		errors.Is(err, ErrInvalidIdentityFormat),
		errors.Is(err, ErrRateLimited),
		errors.Is(err, ErrUnknown):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}
}
