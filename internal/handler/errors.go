package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/catalog"
	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/service"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

var validate = validator.New()

// apiError is the JSON body written for every failed request.
type apiError struct {
	status  int
	code    string
	message string
}

var errorTable = []struct {
	target error
	apiError
}{
	{directory.ErrEmptyName, apiError{http.StatusBadRequest, "empty_name", "room name is required"}},
	{directory.ErrNameTooLong, apiError{http.StatusBadRequest, "name_too_long", "room name must be at most 30 characters"}},
	{directory.ErrPinTooShort, apiError{http.StatusBadRequest, "pin_too_short", "pin must be at least 4 digits"}},
	{directory.ErrInvalidPin, apiError{http.StatusBadRequest, "invalid_pin", "pin must be 4 to 6 digits"}},
	{directory.ErrSectionNotFound, apiError{http.StatusNotFound, "section_not_found", "section not found"}},
	{directory.ErrSectionExists, apiError{http.StatusConflict, "section_exists", "section already exists"}},
	{directory.ErrRoomNotFound, apiError{http.StatusNotFound, "room_not_found", "room not found"}},
	{directory.ErrRoomInactive, apiError{http.StatusConflict, "room_inactive", "room is not active"}},
	{directory.ErrNotMember, apiError{http.StatusConflict, "not_joined", "this token has no seat in the room"}},
	{catalog.ErrConcertNotFound, apiError{http.StatusNotFound, "concert_not_found", "concert not found"}},
	{verifier.ErrWrongCredential, apiError{http.StatusUnauthorized, "wrong_credential", "incorrect pin"}},
	{verifier.ErrNotFound, apiError{http.StatusUnauthorized, "identity_not_found", "no account for this email"}},
	{verifier.ErrInvalidIdentityFormat, apiError{http.StatusBadRequest, "invalid_identity", "please enter a valid email address"}},
	{verifier.ErrRateLimited, apiError{http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later"}},
	{context.DeadlineExceeded, apiError{http.StatusServiceUnavailable, "verification_timeout", "verification timed out"}},
	{verifier.ErrUnknown, apiError{http.StatusBadGateway, "verification_failed", "could not verify credentials"}},
}

// writeError maps domain errors onto HTTP responses.  Unmapped errors
// are logged to log and become 500 without leaking their text.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	var inv *service.InvalidInputError
	if errors.As(err, &inv) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": inv.Reason, "code": "invalid_input", "field": inv.Field})
	}
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return c.JSON(e.status, echo.Map{"error": e.message, "code": e.code})
		}
	}
	if log != nil {
		log.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error", "code": "internal"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg, "code": "invalid_input"})
}
