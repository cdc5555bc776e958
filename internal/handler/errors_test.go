package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/service"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", &service.InvalidInputError{Field: "pin", Reason: "too short"}, http.StatusBadRequest, "invalid_input"},
		{"pin too short", directory.ErrPinTooShort, http.StatusBadRequest, "pin_too_short"},
		{"room missing", fmt.Errorf("lookup: %w", directory.ErrRoomNotFound), http.StatusNotFound, "room_not_found"},
		{"inactive", directory.ErrRoomInactive, http.StatusConflict, "room_inactive"},
		{"not joined", directory.ErrNotMember, http.StatusConflict, "not_joined"},
		{"wrong credential", verifier.ErrWrongCredential, http.StatusUnauthorized, "wrong_credential"},
		{"rate limited", verifier.ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"timeout", verifier.Classify(context.DeadlineExceeded), http.StatusServiceUnavailable, "verification_timeout"},
		{"unknown", verifier.Classify(errors.New("boom")), http.StatusBadGateway, "verification_failed"},
		{"unmapped", errors.New("disk on fire"), http.StatusInternalServerError, "internal"},
	}
	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, zap.NewNop(), tc.err))
			assert.Equal(t, tc.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["code"])
			assert.NotContains(t, body["error"], "disk on fire")
		})
	}
}

func TestWriteError_LogsUnmappedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/rooms/join", nil), rec)
	require.NoError(t, writeError(c, zap.New(core), errors.New("disk on fire")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "disk on fire", entries[0].ContextMap()["error"])
	assert.Equal(t, http.MethodPost, entries[0].ContextMap()["method"])

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, writeError(c, zap.New(core), directory.ErrRoomNotFound))
	assert.Equal(t, 1, logs.Len(), "mapped errors are not logged")
}
