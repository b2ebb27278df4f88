package sweep

// Band geometry.
const (
	bandSpacing = 3
	jitterMin   = 1
	jitterMax   = 15
)

// Pick returns the color of the cell at (x, y) for sweep time t over an image
// of the given height and width. One jitter value is drawn from rng per call.
func Pick(x, y, t int, p *Palettes, height, width int, rng Source) Color {
	maxDim := max(height, width)
	f := x - maxDim + absInt(t)
	off := rng.Intn(jitterMin, jitterMax)

	// Highest band first: the farthest qualifying band wins.
	for i := PaletteSize - 1; i >= 0; i-- {
		if f > y+bandSpacing*i+off {
			if t >= 0 {
				return p.Outgoing[i]
			}
			return p.Incoming[i]
		}
	}

	if t <= 0 {
		return p.Background
	}
	return p.Incoming.Last()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
