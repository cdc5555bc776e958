package verifier

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/concert-watch-rooms/internal/repository"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// MemberStore is the lookup the SQL verifier needs.  *repository.MemberRepo satisfies it.
type MemberStore interface {
	GetByEmail(ctx context.Context, email string) (repository.Member, error)
}

// SQL verifies identities against bcrypt credential hashes stored in
// the members table.
type SQL struct {
	Members MemberStore
}

// NewSQL returns a verifier backed by members.
func NewSQL(members MemberStore) *SQL { return &SQL{Members: members} }

// Verify implements CredentialVerifier.
func (v *SQL) Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error) {
	if !ValidIdentity(identity) {
		return VerifiedIdentity{}, ErrInvalidIdentityFormat
	}
	m, err := v.Members.GetByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return VerifiedIdentity{}, ErrNotFound
		}
		return VerifiedIdentity{}, Classify(err)
	}
	if !m.IsActive {
		return VerifiedIdentity{}, ErrNotFound
	}
	if !utils.VerifyCredential(m.CredentialHash, credential) {
		return VerifiedIdentity{}, ErrWrongCredential
	}
	return VerifiedIdentity{Identity: m.Email, VerifiedAt: time.Now().UTC()}, nil
}
