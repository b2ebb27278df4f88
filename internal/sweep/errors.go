package sweep

import "errors"

var (
	// ErrUnknownColor indicates a color name outside the named terminal colors.
	ErrUnknownColor = errors.New("sweep: unknown color name")

	// ErrPaletteSize indicates a palette that does not hold exactly PaletteSize colors.
	ErrPaletteSize = errors.New("sweep: palette must hold exactly 7 colors")
)
