package verifier

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
)

// Throttled wraps a verifier and refuses identities that failed too
// many times within a window.  Counters live in Redis so every instance
// of the service shares them.  When Redis is unreachable the throttle
// fails open and only logs.
type Throttled struct {
	next CredentialVerifier
	rdb  *redis.Client
	cfg  config.JoinThrottleConfig
	log  *zap.Logger
}

// NewThrottled returns next unchanged when throttling is disabled or no
// Redis client is available.
func NewThrottled(next CredentialVerifier, rdb *redis.Client, cfg config.JoinThrottleConfig, log *zap.Logger) CredentialVerifier {
	if !cfg.Enabled || rdb == nil {
		return next
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Throttled{next: next, rdb: rdb, cfg: cfg, log: log}
}

func (t *Throttled) key(identity string) string {
	return t.cfg.Prefix + ":fail:" + strings.ToLower(strings.TrimSpace(identity))
}

// Verify implements CredentialVerifier.
func (t *Throttled) Verify(ctx context.Context, identity, credential string) (VerifiedIdentity, error) {
	key := t.key(identity)
	rdb := t.rdb

	n, err := rdb.Get(ctx, key).Int()
	switch {
	case err == nil && n >= t.cfg.MaxFailures:
		return VerifiedIdentity{}, ErrRateLimited
	case err != nil && !errors.Is(err, redis.Nil):
		t.log.Warn("join throttle lookup failed", zap.String("key", key), zap.Error(err))
	}

	vi, verr := t.next.Verify(ctx, identity, credential)
	switch {
	case verr == nil:
		if err := rdb.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			t.log.Warn("join throttle reset failed", zap.String("key", key), zap.Error(err))
		}
	case errors.Is(verr, ErrWrongCredential), errors.Is(verr, ErrNotFound):
		t.recordFailure(context.WithoutCancel(ctx), key)
	}
	return vi, verr
}

func (t *Throttled) recordFailure(ctx context.Context, key string) {
	window := t.cfg.Window
	if window <= 0 {
		window = 15 * time.Minute
	}
	pipe := t.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		t.log.Warn("join throttle record failed", zap.String("key", key), zap.Error(err))
	}
}
