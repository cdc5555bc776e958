// Package middleware holds the Echo middleware shared by the room API:
// room token authentication, role checks, the Redis join rate limiter,
// the concert response cache and request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// Context keys set by RoomAuth.
const (
	ctxClaims   = "room_claims"
	ctxRoomID   = "room_id"
	ctxRole     = "role"
	ctxIdentity = "identity"
)

// RoomAuth validates a Bearer room token and stores its claims in the
// request context.  Handlers read them back with ClaimsFrom.
func RoomAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims, err := utils.ParseRoomToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(ctxClaims, claims)
			c.Set(ctxRoomID, claims.RoomID)
			c.Set(ctxRole, claims.Role)
			c.Set(ctxIdentity, claims.Subject)
			return next(c)
		}
	}
}
