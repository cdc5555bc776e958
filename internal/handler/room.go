package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/invite"
	"github.com/iliyamo/concert-watch-rooms/internal/middleware"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
	"github.com/iliyamo/concert-watch-rooms/internal/service"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// hostSubject is the token subject of room creators; creation is
// anonymous.
const hostSubject = "host"

// RoomHandler bundles the directory and the room workflows.
type RoomHandler struct {
	Dir      *directory.Directory
	Creator  *service.RoomCreator
	Gate     *service.JoinGate
	Secret   string
	TokenTTL time.Duration
	AppLink  bool
	Log      *zap.Logger
}

func NewRoomHandler(dir *directory.Directory, creator *service.RoomCreator, gate *service.JoinGate, secret string, ttl time.Duration, appLink bool, log *zap.Logger) *RoomHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomHandler{Dir: dir, Creator: creator, Gate: gate, Secret: secret, TokenTTL: ttl, AppLink: appLink, Log: log}
}

// ----- DTOs -----

type createSectionReq struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	ConcertID string `json:"concert_id" validate:"required"`
}

type createRoomReq struct {
	Name        string `json:"name"`
	Pin         string `json:"pin"`
	GeneratePin bool   `json:"generate_pin"`
}

type statusReq struct {
	Active *bool `json:"active" validate:"required"`
}

type joinReq struct {
	RoomName string `json:"room_name"`
	Identity string `json:"identity"`
	Pin      string `json:"pin"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type createRoomResp struct {
	Room      model.Room `json:"room"`
	SectionID string     `json:"section_id"`
	Pin       string     `json:"pin"`
	Host      tokenPart  `json:"host"`
}

type joinResp struct {
	RoomID           string    `json:"room_id"`
	RoomName         string    `json:"room_name"`
	SectionID        string    `json:"section_id"`
	Identity         string    `json:"identity"`
	ParticipantCount int       `json:"participant_count"`
	JoinedAt         time.Time `json:"joined_at"`
	Guest            tokenPart `json:"guest"`
}

// ----- sections -----

// ListSections returns every section with its rooms.  PINs are never
// serialized.
func (h *RoomHandler) ListSections(c echo.Context) error {
	items := h.Dir.ListSections()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

func (h *RoomHandler) GetSection(c echo.Context) error {
	s, err := h.Dir.FindSection(c.Param("id"))
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, s)
}

// CreateSection opens the room grouping for a catalog concert.
func (h *RoomHandler) CreateSection(c echo.Context) error {
	var req createSectionReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "concert_id is required")
	}
	s, err := h.Dir.AddSection(req.ID, req.ConcertID)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// ----- rooms -----

// CreateRoom adds a room to the section in the path and returns the
// room with its PIN and a HOST token for managing it.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json")
	}
	ctx := c.Request().Context()
	sectionID := c.Param("id")

	var (
		room model.Room
		err  error
	)
	if req.GeneratePin {
		room, err = h.Creator.CreateRoomWithRandomPin(ctx, sectionID, req.Name)
	} else {
		room, err = h.Creator.CreateRoom(ctx, sectionID, req.Name, req.Pin)
	}
	if err != nil {
		return writeError(c, h.Log, err)
	}

	tok, err := utils.NewRoomToken(h.Secret, hostSubject, room.ID, utils.RoleHost, h.TokenTTL)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, createRoomResp{
		Room:      room,
		SectionID: sectionID,
		Pin:       room.PIN,
		Host:      tokenPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// RandomPin suggests a PIN for the create form.
func (h *RoomHandler) RandomPin(c echo.Context) error {
	pin, err := utils.GenerateRandomPin()
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"pin": pin})
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	r, err := h.Dir.FindRoom(c.Param("id"))
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// SetStatus opens or closes a room.  Closing drops every participant.
// Requires the room's HOST token.
func (h *RoomHandler) SetStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "active is required")
	}
	r, err := h.Dir.SetRoomActive(c.Param("id"), *req.Active)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	h.Log.Info("room status changed", zap.String("room_id", r.ID), zap.Bool("active", r.IsActive))
	return c.JSON(http.StatusOK, r)
}

// Invite renders the share text for the room, PIN included.  Requires
// the room's HOST token.
func (h *RoomHandler) Invite(c echo.Context) error {
	room, err := h.Dir.FindRoom(c.Param("id"))
	if err != nil {
		return writeError(c, h.Log, err)
	}
	section, err := h.Dir.SectionOf(room.ID)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	msg := invite.RoomMessage(h.Creator.InviteFor(room, section), appLinkParamOr(c, h.AppLink))
	return c.JSON(http.StatusOK, shareResp{Kind: invite.KindRoom, Title: msg.Title, Body: msg.Body})
}

// Join verifies the caller against the room's PIN and returns a GUEST
// token for the room.
func (h *RoomHandler) Join(c echo.Context) error {
	var req joinReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json")
	}
	out, err := h.Gate.Join(c.Request().Context(), req.RoomName, req.Identity, req.Pin)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	tok, err := utils.NewMemberToken(h.Secret, out.MemberID, out.Identity, out.RoomID, h.TokenTTL)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, joinResp{
		RoomID:           out.RoomID,
		RoomName:         out.RoomName,
		SectionID:        out.SectionID,
		Identity:         out.Identity,
		ParticipantCount: out.ParticipantCount,
		JoinedAt:         out.JoinedAt,
		Guest:            tokenPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// Leave gives back the seat held by the GUEST token on the request.
// Each token leaves once.
func (h *RoomHandler) Leave(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing room token", "code": "unauthorized"})
	}
	r, err := h.Gate.Leave(c.Request().Context(), c.Param("id"), claims.ID)
	if err != nil {
		return writeError(c, h.Log, err)
	}
	h.Log.Info("room left", zap.String("room_id", r.ID), zap.String("identity", claims.Subject))
	return c.JSON(http.StatusOK, r)
}

// Summary returns directory-wide counts.
func (h *RoomHandler) Summary(c echo.Context) error {
	s := h.Dir.Summary()
	return c.JSON(http.StatusOK, echo.Map{
		"total_rooms":         s.TotalRooms,
		"active_rooms":        s.ActiveRooms,
		"active_participants": s.ActiveParticipants,
	})
}

func appLinkParamOr(c echo.Context, def bool) bool {
	if c.QueryParam("app_link") == "" {
		return def
	}
	return appLinkParam(c)
}
