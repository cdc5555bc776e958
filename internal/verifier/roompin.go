package verifier

import (
	"context"
	"crypto/subtle"
	"time"
)

type expectedKey struct{}

// WithExpectedCredential attaches the credential the target room
// expects.  The join gate sets it after resolving the room.
func WithExpectedCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, expectedKey{}, credential)
}

// ExpectedCredential returns the value set by WithExpectedCredential.
func ExpectedCredential(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(expectedKey{}).(string)
	return v, ok && v != ""
}

// RoomPin accepts any email-shaped identity whose credential equals the
// room PIN carried by ctx.  Without an expected PIN in ctx every
// attempt fails with ErrUnknown.
type RoomPin struct{}

// Verify implements CredentialVerifier.
func (RoomPin) Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error) {
	if err := ctx.Err(); err != nil {
		return VerifiedIdentity{}, Classify(err)
	}
	if !ValidIdentity(identity) {
		return VerifiedIdentity{}, ErrInvalidIdentityFormat
	}
	want, ok := ExpectedCredential(ctx)
	if !ok {
		return VerifiedIdentity{}, ErrUnknown
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(credential)) != 1 {
		return VerifiedIdentity{}, ErrWrongCredential
	}
	return VerifiedIdentity{Identity: identity, VerifiedAt: time.Now().UTC()}, nil
}
