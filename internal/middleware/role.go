package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoomRole admits the request only when the room token carries
// one of roles and was issued for the room named by the :id path
// parameter.  It must run after RoomAuth.
func RequireRoomRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || !allowed[claims.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			if id := c.Param("id"); id != "" && id != claims.RoomID {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "token issued for another room"})
			}
			return next(c)
		}
	}
}
