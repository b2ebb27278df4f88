package sweep

import "fmt"

// PaletteSize is the fixed number of colors in each palette.
const PaletteSize = 7

// Rotation picks from incoming indexes [rotateMin, rotateMax]; index 0 is the rest color.
const (
	rotateMin = 1
	rotateMax = 3
)

// Palette is an ordered sequence of band colors.
type Palette [PaletteSize]Color

// NewPalette builds a Palette from exactly PaletteSize colors.
func NewPalette(colors []Color) (Palette, error) {
	var p Palette
	if len(colors) != PaletteSize {
		return p, fmt.Errorf("%w: got %d", ErrPaletteSize, len(colors))
	}
	copy(p[:], colors)
	return p, nil
}

// Last returns the final entry.
func (p Palette) Last() Color {
	return p[PaletteSize-1]
}

// Palettes is the mutable color state of the animation.
type Palettes struct {
	// Incoming colors bands while t < 0.
	Incoming Palette
	// Outgoing colors bands while t >= 0.
	Outgoing Palette
	// Background is returned when no band matches and t <= 0.
	Background Color
}

// DefaultPalettes returns the classic grey-led rainbow palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		Incoming:   Palette{Grey, Red, Yellow, Blue, Magenta, Cyan, Green},
		Outgoing:   Palette{Red, Yellow, Blue, Magenta, Cyan, Grey, Black},
		Background: Black,
	}
}

// Rotate moves the incoming entry at a random index in [1,3] to the end,
// shifting the entries after it down by one. It returns the moved index.
func (p *Palettes) Rotate(rng Source) int {
	idx := rng.Intn(rotateMin, rotateMax)
	moved := p.Incoming[idx]
	copy(p.Incoming[idx:], p.Incoming[idx+1:])
	p.Incoming[PaletteSize-1] = moved
	return idx
}

// Contains reports whether c can be produced from these palettes.
func (p *Palettes) Contains(c Color) bool {
	if c == p.Background {
		return true
	}
	for i := 0; i < PaletteSize; i++ {
		if p.Incoming[i] == c || p.Outgoing[i] == c {
			return true
		}
	}
	return false
}
