package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberToken_RoundTrip(t *testing.T) {
	tok, err := NewMemberToken("secret", "member-1", "user@x.com", "room-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, tok.Exp.After(time.Now()))

	claims, err := ParseRoomToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "room-1", claims.RoomID)
	assert.Equal(t, RoleGuest, claims.Role)
	assert.Equal(t, "user@x.com", claims.Subject)
	assert.Equal(t, "member-1", claims.ID)

	_, err = NewMemberToken("secret", "", "user@x.com", "room-1", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidRoomToken)
}

func TestParseRoomToken_GuestNeedsMemberID(t *testing.T) {
	tok, err := NewRoomToken("secret", "user@x.com", "room-1", RoleGuest, time.Minute)
	require.NoError(t, err)
	_, err = ParseRoomToken("secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidRoomToken)

	host, err := NewRoomToken("secret", "host", "room-1", RoleHost, time.Minute)
	require.NoError(t, err)
	claims, err := ParseRoomToken("secret", host.Token)
	require.NoError(t, err)
	assert.Empty(t, claims.ID)
}

func TestParseRoomToken_Rejects(t *testing.T) {
	tok, err := NewRoomToken("secret", "host", "room-1", RoleHost, time.Minute)
	require.NoError(t, err)

	_, err = ParseRoomToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidRoomToken)

	expired, err := NewRoomToken("secret", "host", "room-1", RoleHost, -time.Minute)
	require.NoError(t, err)
	_, err = ParseRoomToken("secret", expired.Token)
	assert.ErrorIs(t, err, ErrInvalidRoomToken)

	_, err = ParseRoomToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidRoomToken)
}

func TestCredentialHash(t *testing.T) {
	hash, err := HashCredential("4242", 4)
	require.NoError(t, err)
	assert.True(t, VerifyCredential(hash, "4242"))
	assert.False(t, VerifyCredential(hash, "4243"))
}
