package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

const (
	// MaxRoomNameLen is the maximum number of characters kept in a room name.
	MaxRoomNameLen = 30
	// MinPinLen is the shortest PIN accepted for submission.
	MinPinLen = 4
	// MaxPinLen is the longest PIN kept after sanitizing.
	MaxPinLen = 6
)

// SanitizeRoomName truncates the input to MaxRoomNameLen characters.  No
// characters are filtered; emoji and punctuation are allowed in names.
func SanitizeRoomName(in string) string {
	runes := []rune(in)
	if len(runes) <= MaxRoomNameLen {
		return in
	}
	return string(runes[:MaxRoomNameLen])
}

// SanitizePin strips every non-digit and keeps at most MaxPinLen digits.
// Only ASCII digits survive so the result always matches [0-9]*.
func SanitizePin(in string) string {
	var b strings.Builder
	for _, r := range in {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == MaxPinLen {
			break
		}
	}
	return b.String()
}

// IsSubmittablePin reports whether a sanitized PIN is long enough to submit.
func IsSubmittablePin(pin string) bool {
	return len(pin) >= MinPinLen
}

// IsValidPin reports whether pin matches ^[0-9]{4,6}$.
func IsValidPin(pin string) bool {
	if len(pin) < MinPinLen || len(pin) > MaxPinLen {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// GenerateRandomPin returns a uniformly random PIN in [1000, 9999].  It
// is only used for the auto-generate affordance; manual PINs may be up
// to six digits long.
func GenerateRandomPin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}
