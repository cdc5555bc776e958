// Package handler exposes the HTTP handlers of the room service:
// concert browsing and sharing, section and room management, and the
// PIN gated join.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/catalog"
	"github.com/iliyamo/concert-watch-rooms/internal/invite"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// ConcertHandler serves the read-only concert catalog.
type ConcertHandler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewConcertHandler(cat *catalog.Catalog, log *zap.Logger) *ConcertHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConcertHandler{Catalog: cat, Log: log}
}

// List returns every concert, or only those matching ?q= when given.
func (h *ConcertHandler) List(c echo.Context) error {
	var items []model.ConcertEvent
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		items = h.Catalog.Search(q)
	} else {
		items = h.Catalog.List()
	}
	if items == nil {
		items = []model.ConcertEvent{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Get returns one concert by id.
func (h *ConcertHandler) Get(c echo.Context) error {
	ev, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, ev)
}

type shareResp struct {
	Kind  invite.Kind `json:"kind"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
}

// Share renders a concert announcement or the generic app pitch.
//
//	GET /v1/share?kind=general
//	GET /v1/share?kind=concert&concert_id=3
//
// The app link footer is on unless app_link=false.
func (h *ConcertHandler) Share(c echo.Context) error {
	appLink := appLinkParam(c)
	kind := invite.Kind(strings.ToLower(c.QueryParam("kind")))
	switch kind {
	case "", invite.KindGeneral:
		msg := invite.GeneralMessage(appLink)
		return c.JSON(http.StatusOK, shareResp{Kind: invite.KindGeneral, Title: msg.Title, Body: msg.Body})
	case invite.KindConcert:
		ev, err := h.Catalog.Get(c.QueryParam("concert_id"))
		if err != nil {
			return writeError(c, h.Log, err)
		}
		msg := invite.ConcertMessage(ev, appLink)
		return c.JSON(http.StatusOK, shareResp{Kind: kind, Title: msg.Title, Body: msg.Body})
	default:
		// room invites carry the PIN and are only served to the host
		return badRequest(c, "kind must be general or concert")
	}
}

func appLinkParam(c echo.Context) bool {
	v := c.QueryParam("app_link")
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}
