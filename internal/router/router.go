// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-watch-rooms/internal/handler"
	"github.com/iliyamo/concert-watch-rooms/internal/middleware"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// Deps carries what the routes need besides the handlers.
type Deps struct {
	JWTSecret string
	JoinLimit echo.MiddlewareFunc // rate limiter in front of join
	Cache     echo.MiddlewareFunc // response cache for concert reads
}

// RegisterRoutes registers the unauthenticated probe endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterConcerts registers the read-only catalog and share routes.
// Catalog reads go through the response cache.
func RegisterConcerts(e *echo.Echo, h *handler.ConcertHandler, d Deps) {
	g := e.Group("/v1/concerts", orPass(d.Cache))
	g.GET("", h.List)
	g.GET("/:id", h.Get)

	e.GET("/v1/share", h.Share)
}

// RegisterRooms registers section and room routes.  Status changes and
// invites need the room's HOST token; leaving needs a token for the room.
func RegisterRooms(e *echo.Echo, h *handler.RoomHandler, d Deps) {
	e.GET("/v1/sections", h.ListSections)
	e.POST("/v1/sections", h.CreateSection)
	e.GET("/v1/sections/:id", h.GetSection)
	e.POST("/v1/sections/:id/rooms", h.CreateRoom)

	rooms := e.Group("/v1/rooms")
	rooms.GET("/pin", h.RandomPin)
	rooms.GET("/summary", h.Summary)
	rooms.POST("/join", h.Join, orPass(d.JoinLimit))
	rooms.GET("/:id", h.GetRoom)

	auth := middleware.RoomAuth(d.JWTSecret)
	host := middleware.RequireRoomRole(utils.RoleHost)
	guest := middleware.RequireRoomRole(utils.RoleGuest)
	rooms.PATCH("/:id/status", h.SetStatus, auth, host)
	rooms.GET("/:id/invite", h.Invite, auth, host)
	rooms.POST("/:id/leave", h.Leave, auth, guest)
}

func orPass(mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	if mw == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return mw
}
