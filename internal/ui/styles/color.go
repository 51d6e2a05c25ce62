package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// InvalidColorError reports a hex color that could not be parsed. Channel is
// "red", "green" or "blue", or empty when the length is wrong.
type InvalidColorError struct {
	Input   string
	Channel string
}

func (e *InvalidColorError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("invalid color %q: expected 6 hex digits", e.Input)
	}
	return fmt.Sprintf("invalid color %q: bad %s component", e.Input, e.Channel)
}

// ParseHex parses "rrggbb" with an optional leading '#'
func ParseHex(hex string) (colorful.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return colorful.Color{}, &InvalidColorError{Input: hex}
	}

	var rgb [3]uint8
	for i, channel := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return colorful.Color{}, &InvalidColorError{Input: hex, Channel: channel}
		}
		rgb[i] = uint8(v)
	}
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}, nil
}

// HexToColor converts a hex string into a terminal color. An empty string
// means no color and is not an error.
func HexToColor(hex string) (lipgloss.TerminalColor, error) {
	if hex == "" {
		return lipgloss.NoColor{}, nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return lipgloss.Color(c.Hex()), nil
}

// ColorOrDefault is HexToColor with malformed input rendered as no color
func ColorOrDefault(hex string) lipgloss.TerminalColor {
	c, err := HexToColor(hex)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return c
}

// NormalizeHex validates a user supplied color and returns it the way the
// API stores it: six lowercase digits without '#'
func NormalizeHex(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(c.Hex(), "#"), nil
}

// IsLight reports whether dark text reads better than light text on c
func IsLight(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l > 0.6
}
