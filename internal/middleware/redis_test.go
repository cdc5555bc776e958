package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func joinServer(cfg config.RateLimitConfig, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.POST("/join", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, NewTokenBucket(cfg, rdb, nil))
	return e
}

func postJoin(e *echo.Echo, room string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/join", strings.NewReader(`{"room_name":"`+room+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bucketConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            time.Hour,
		KeyStrategy:    "ip_room",
		Prefix:         "rl:join",
	}
}

func TestTokenBucket_RefusesOnceCapacityIsSpent(t *testing.T) {
	rdb, mr := newRedis(t)
	e := joinServer(bucketConfig(), rdb)

	rec := postJoin(e, "Test Room")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = postJoin(e, "Test Room")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = postJoin(e, "Test Room")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	secs, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.True(t, secs >= 1 && secs <= 60, "retry after %d", secs)
	assert.Contains(t, rec.Body.String(), "too_many_requests")

	// buckets are per room, so another room still has tokens
	rec = postJoin(e, "Other Room")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	key := "rl:join:ip:10.0.0.1:room:test room"
	require.True(t, mr.Exists(key))
	assert.Equal(t, "0", mr.HGet(key, "tokens"))
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestTokenBucket_FailsOpenWhenRedisIsDown(t *testing.T) {
	rdb, mr := newRedis(t)
	e := joinServer(bucketConfig(), rdb)
	mr.Close()

	for i := 0; i < 5; i++ {
		rec := postJoin(e, "Test Room")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func cacheServer(rdb *redis.Client, calls *int) *echo.Echo {
	cfg := config.CacheConfig{
		Enabled: true,
		Methods: map[string]bool{http.MethodGet: true},
		TTL:     time.Minute,
		Prefix:  "cache:test",
	}
	e := echo.New()
	e.GET("/concerts", func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusOK, echo.Map{"q": c.QueryParam("q"), "n": *calls})
	}, NewRedisCache(cfg, rdb, nil))
	return e
}

func getCached(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRedisCache_ServesRepeatsFromRedis(t *testing.T) {
	rdb, mr := newRedis(t)
	calls := 0
	e := cacheServer(rdb, &calls)

	first := getCached(e, "/concerts?q=nicki")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	require.Len(t, mr.Keys(), 1)
	assert.True(t, strings.HasPrefix(mr.Keys()[0], "cache:test:"))
	assert.Equal(t, time.Minute, mr.TTL(mr.Keys()[0]))

	second := getCached(e, "/concerts?q=nicki")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.Equal(t, 1, calls)

	third := getCached(e, "/concerts?q=blonde")
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)

	mr.FastForward(2 * time.Minute)
	fourth := getCached(e, "/concerts?q=nicki")
	assert.Equal(t, "MISS", fourth.Header().Get("X-Cache"))
	assert.Equal(t, 3, calls)
}

func TestRedisCache_FailsOpenWhenRedisIsDown(t *testing.T) {
	rdb, mr := newRedis(t)
	calls := 0
	e := cacheServer(rdb, &calls)
	mr.Close()

	for i := 0; i < 2; i++ {
		rec := getCached(e, "/concerts")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, calls)
}
