// Package service holds the room workflows that sit between the HTTP
// handlers and the directory: room creation with invite hand-off and
// the PIN gated join.
package service

import (
	"errors"
	"fmt"

	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

// Creation errors.  They alias the directory sentinels so a caller can
// match either with errors.Is.
var (
	ErrEmptyName       = directory.ErrEmptyName
	ErrPinTooShort     = directory.ErrPinTooShort
	ErrSectionNotFound = directory.ErrSectionNotFound
)

// Join resolution errors.
var (
	ErrRoomNotFound = directory.ErrRoomNotFound
	ErrRoomInactive = directory.ErrRoomInactive
	ErrNotMember    = directory.ErrNotMember
)

// ErrInvalidInput matches every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports which join field failed validation.
type InvalidInputError struct {
	Field  string // room_name, identity or pin
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is match ErrInvalidInput, and a malformed identity
// additionally match verifier.ErrInvalidIdentityFormat.
func (e *InvalidInputError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	return e.Field == FieldIdentity && target == verifier.ErrInvalidIdentityFormat
}

// Join input field names.
const (
	FieldRoomName = "room_name"
	FieldIdentity = "identity"
	FieldPin      = "pin"
)
