package sweep

import (
	"fmt"
	"strings"
)

// Color is one of the eight named terminal colors.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Grey
)

var colorNames = [...]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	Grey:    "grey",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Valid reports whether c is one of the named colors.
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

// ParseColor returns the color for a case-insensitive name. "gray" is accepted for grey.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "gray" {
		return Grey, nil
	}
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ColorNames returns all color names in ANSI order.
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}
