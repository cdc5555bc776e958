package utils // package utils provides helpers for sanitizing input and issuing room tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Room token roles.  A HOST token is handed to the creator of a room and
// allows toggling its status; a GUEST token is issued on a successful
// join and allows leaving the room.
const (
	RoleHost  = "HOST"
	RoleGuest = "GUEST"
)

// ErrInvalidRoomToken is returned when a room token cannot be parsed or
// does not carry the expected claims.
var ErrInvalidRoomToken = errors.New("invalid room token")

// RoomToken is a signed JWT scoped to one room, plus its expiry.
type RoomToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// RoomClaims are the claims carried by a room token.  Subject holds the
// identity (email for guests, "host" for creators) and RoomID the room
// the token is valid for.
type RoomClaims struct {
	RoomID string `json:"room"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewRoomToken builds and signs an HS256 JWT for a room member.
func NewRoomToken(secret, subject, roomID, role string, ttl time.Duration) (RoomToken, error) {
	return signRoomToken(secret, "", subject, roomID, role, ttl)
}

// NewMemberToken issues the GUEST token for one admission.  memberID
// becomes the jti claim and identifies the seat the guest may release.
func NewMemberToken(secret, memberID, subject, roomID string, ttl time.Duration) (RoomToken, error) {
	if memberID == "" {
		return RoomToken{}, ErrInvalidRoomToken
	}
	return signRoomToken(secret, memberID, subject, roomID, RoleGuest, ttl)
}

func signRoomToken(secret, id, subject, roomID, role string, ttl time.Duration) (RoomToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := RoomClaims{
		RoomID: roomID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return RoomToken{}, err
	}
	return RoomToken{Token: signed, Exp: exp}, nil
}

// ParseRoomToken verifies the signature and expiry of raw and returns its claims.
func ParseRoomToken(secret, raw string) (*RoomClaims, error) {
	claims := &RoomClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		// reject anything that is not HMAC signed
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRoomToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidRoomToken
	}
	if claims.RoomID == "" || claims.Role == "" {
		return nil, ErrInvalidRoomToken
	}
	// guest tokens are bound to one admission
	if claims.Role == RoleGuest && claims.ID == "" {
		return nil, ErrInvalidRoomToken
	}
	return claims, nil
}
