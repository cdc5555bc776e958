package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePin(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"12":           "12",
		"4242":         "4242",
		"12-34":        "1234",
		"abc":          "",
		"1234567890":   "123456",
		" 9 8 7 6 5 ":  "98765",
		"١٢٣٤5678":     "5678",
		"pin:0000,end": "0000",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizePin(in), "input %q", in)
	}
}

func TestSanitizePin_OnlyDigitsAndBounded(t *testing.T) {
	inputs := []string{"a1b2c3d4e5f6g7h8", "🎵12🎵34", strings.Repeat("9x", 40), "\t\n", "0"}
	for _, in := range inputs {
		out := SanitizePin(in)
		assert.LessOrEqual(t, len(out), MaxPinLen)
		for _, r := range out {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in %q", r, out)
		}
	}
}

func TestSanitizeRoomName(t *testing.T) {
	assert.Equal(t, "Lit Friyay Room", SanitizeRoomName("Lit Friyay Room"))

	long := strings.Repeat("abcdefghij", 4)
	got := SanitizeRoomName(long)
	assert.Len(t, got, 30)
	assert.Equal(t, long[:30], got)

	// multi-byte characters count as one character each
	emoji := strings.Repeat("🌊", 35)
	assert.Equal(t, 30, len([]rune(SanitizeRoomName(emoji))))

	// no filtering beyond length
	assert.Equal(t, "Barbz Unite 💕!?", SanitizeRoomName("Barbz Unite 💕!?"))
}

func TestIsValidPin(t *testing.T) {
	assert.True(t, IsValidPin("1234"))
	assert.True(t, IsValidPin("123456"))
	assert.False(t, IsValidPin("123"))
	assert.False(t, IsValidPin("1234567"))
	assert.False(t, IsValidPin("12a4"))
	assert.False(t, IsValidPin(""))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t\n"))
	assert.False(t, IsBlank(" x "))
}

func TestGenerateRandomPin(t *testing.T) {
	for i := 0; i < 500; i++ {
		pin, err := GenerateRandomPin()
		require.NoError(t, err)
		require.Len(t, pin, 4)
		n, err := strconv.Atoi(pin)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
