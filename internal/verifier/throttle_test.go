package verifier

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
)

// countingPin accepts only 4242 and counts how often it was asked.
type countingPin struct{ calls atomic.Int32 }

func (p *countingPin) Verify(_ context.Context, identity, credential string) (VerifiedIdentity, error) {
	p.calls.Add(1)
	if credential != "4242" {
		return VerifiedIdentity{}, ErrWrongCredential
	}
	return VerifiedIdentity{Identity: identity, VerifiedAt: time.Now()}, nil
}

func newThrottled(t *testing.T, next CredentialVerifier) (CredentialVerifier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.JoinThrottleConfig{Enabled: true, MaxFailures: 3, Window: 10 * time.Minute, Prefix: "join"}
	v := NewThrottled(next, rdb, cfg, nil)
	require.IsType(t, &Throttled{}, v)
	return v, mr
}

func TestThrottled_LocksOutAfterMaxFailures(t *testing.T) {
	inner := &countingPin{}
	v, mr := newThrottled(t, inner)
	ctx := context.Background()
	const key = "join:fail:user@x.com"

	for i := 1; i <= 3; i++ {
		_, err := v.Verify(ctx, "user@x.com", "0000")
		require.ErrorIs(t, err, ErrWrongCredential)
		got, err := mr.Get(key)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), got)
	}
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	// the right pin no longer helps, and identities are keyed case-insensitively
	_, err := v.Verify(ctx, "  USER@x.com ", "4242")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.EqualValues(t, 3, inner.calls.Load(), "a locked identity never reaches the backend")

	_, err = v.Verify(ctx, "other@x.com", "4242")
	assert.NoError(t, err, "other identities are unaffected")

	mr.FastForward(11 * time.Minute)
	vi, err := v.Verify(ctx, "user@x.com", "4242")
	require.NoError(t, err)
	assert.Equal(t, "user@x.com", vi.Identity)
	assert.False(t, mr.Exists(key))
}

func TestThrottled_SuccessClearsFailures(t *testing.T) {
	inner := &countingPin{}
	v, mr := newThrottled(t, inner)
	ctx := context.Background()
	const key = "join:fail:user@x.com"

	for i := 0; i < 2; i++ {
		_, err := v.Verify(ctx, "user@x.com", "0000")
		require.ErrorIs(t, err, ErrWrongCredential)
	}
	require.True(t, mr.Exists(key))

	_, err := v.Verify(ctx, "user@x.com", "4242")
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))

	// a fresh run of failures starts from zero
	for i := 0; i < 2; i++ {
		_, err = v.Verify(ctx, "user@x.com", "0000")
		require.ErrorIs(t, err, ErrWrongCredential)
	}
	_, err = v.Verify(ctx, "user@x.com", "4242")
	assert.NoError(t, err)
}

func TestThrottled_IgnoresNonCredentialErrors(t *testing.T) {
	flaky := Func(func(context.Context, string, string) (VerifiedIdentity, error) {
		return VerifiedIdentity{}, ErrUnknown
	})
	v, mr := newThrottled(t, flaky)

	for i := 0; i < 5; i++ {
		_, err := v.Verify(context.Background(), "user@x.com", "4242")
		assert.ErrorIs(t, err, ErrUnknown)
	}
	assert.False(t, mr.Exists("join:fail:user@x.com"))
}

func TestThrottled_FailsOpenWhenRedisIsDown(t *testing.T) {
	inner := &countingPin{}
	v, mr := newThrottled(t, inner)
	mr.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := v.Verify(ctx, "user@x.com", "0000")
		assert.ErrorIs(t, err, ErrWrongCredential)
	}
	vi, err := v.Verify(ctx, "user@x.com", "4242")
	require.NoError(t, err)
	assert.Equal(t, "user@x.com", vi.Identity)
	assert.EqualValues(t, 6, inner.calls.Load())
}
