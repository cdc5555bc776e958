// Package directory owns every room section and room of the service.
// It is the only mutation surface for room state; callers receive
// copies and change state through the Directory methods.
package directory

import "errors"

var (
	// ErrSectionNotFound is returned when a section id does not resolve.
	ErrSectionNotFound = errors.New("section not found")
	// ErrSectionExists is returned when a section id is already taken.
	ErrSectionExists = errors.New("section already exists")
	// ErrRoomNotFound is returned when a room id or name does not resolve.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomInactive is returned when joining a deactivated room.
	ErrRoomInactive = errors.New("room is not active")
	// ErrNotMember is returned when releasing a seat that was never
	// admitted or was already released.
	ErrNotMember = errors.New("not a participant of this room")
	// ErrEmptyName is returned for blank room names.
	ErrEmptyName = errors.New("room name is empty")
	// ErrNameTooLong is returned for names over the character limit.
	ErrNameTooLong = errors.New("room name is too long")
	// ErrPinTooShort is returned for PINs with fewer than four digits.
	ErrPinTooShort = errors.New("pin is too short")
	// ErrInvalidPin is returned for PINs with non-digits or more than six digits.
	ErrInvalidPin = errors.New("pin must be 4 to 6 digits")
)
