package viz

import (
	"strings"

	"github.com/san-kum/asciisweep/internal/sweep"
)

// offsets centers an image of imgH x imgW in a rows x cols terminal. An axis
// where the terminal is not larger than the image is anchored at 0.
func offsets(rows, cols, imgH, imgW int) (startY, startX int) {
	if rows > imgH {
		startY = (rows - imgH) / 2
	}
	if cols > imgW {
		startX = (cols - imgW) / 2
	}
	return startY, startX
}

// compose paints every character of the image for sweep time t. The color
// function is evaluated exactly once per character; runs of equal color share
// one style sequence.
func (m *Model) compose(t int) string {
	h, w := m.img.Height(), m.img.Width()
	startY, startX := offsets(m.height, m.width, h, w)
	pad := strings.Repeat(" ", startX)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", startY))

	var run strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad)

		run.Reset()
		var runColor sweep.Color
		x := 0
		for _, ch := range m.img.Line(y) {
			c := sweep.Pick(x, y, t, &m.pal, h, w, m.rng)
			if run.Len() > 0 && c != runColor {
				b.WriteString(m.styles.render(runColor, run.String()))
				run.Reset()
			}
			run.WriteRune(ch)
			runColor = c
			x++
		}
		if run.Len() > 0 {
			b.WriteString(m.styles.render(runColor, run.String()))
		}
	}
	return b.String()
}
