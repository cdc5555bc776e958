package verifier

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"
)

// Static verifies against a fixed identity to credential table.  It is
// meant for local runs and demos where no member database exists.
type Static struct {
	creds map[string]string
}

// NewStatic copies creds into a new Static verifier.  Identities are
// matched case-insensitively.
func NewStatic(creds map[string]string) *Static {
	m := make(map[string]string, len(creds))
	for id, c := range creds {
		m[strings.ToLower(strings.TrimSpace(id))] = c
	}
	return &Static{creds: m}
}

// ParseStatic reads "email:credential" pairs separated by commas, the
// format of the STATIC_CREDENTIALS variable.  Malformed pairs are skipped.
func ParseStatic(raw string) *Static {
	creds := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		id, cred, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || id == "" || cred == "" {
			continue
		}
		creds[id] = strings.TrimSpace(cred)
	}
	return NewStatic(creds)
}

// Verify implements CredentialVerifier.
func (s *Static) Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error) {
	if err := ctx.Err(); err != nil {
		return VerifiedIdentity{}, Classify(err)
	}
	if !ValidIdentity(identity) {
		return VerifiedIdentity{}, ErrInvalidIdentityFormat
	}
	want, ok := s.creds[strings.ToLower(strings.TrimSpace(identity))]
	if !ok {
		return VerifiedIdentity{}, ErrNotFound
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(credential)) != 1 {
		return VerifiedIdentity{}, ErrWrongCredential
	}
	return VerifiedIdentity{Identity: identity, VerifiedAt: time.Now().UTC()}, nil
}
