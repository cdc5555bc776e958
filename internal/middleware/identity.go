package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// ClaimsFrom returns the room token claims stored by RoomAuth.
func ClaimsFrom(c echo.Context) (*utils.RoomClaims, bool) {
	claims, ok := c.Get(ctxClaims).(*utils.RoomClaims)
	return claims, ok && claims != nil
}

// maxPeek bounds how much of a request body roomFromBody buffers.
const maxPeek = 64 << 10

// roomFromBody reads the room_name field of a JSON join request without
// consuming the body for the handler.  Unreadable bodies key as
// "unknown".
func roomFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return "unknown"
	}
	head, err := io.ReadAll(io.LimitReader(req.Body, maxPeek))
	req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(head), req.Body))
	if err != nil {
		return "unknown"
	}
	var p struct {
		RoomName string `json:"room_name"`
	}
	if json.Unmarshal(head, &p) != nil {
		return "unknown"
	}
	name := strings.ToLower(strings.TrimSpace(p.RoomName))
	if name == "" {
		return "unknown"
	}
	return name
}
