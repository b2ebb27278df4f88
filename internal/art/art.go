// Package art loads the static text image that the animation paints.
package art

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultPath is where the art file is read from unless overridden.
const DefaultPath = "/env/dot/bresilla/ascii"

// ErrUnreadable indicates the art file could not be read.
var ErrUnreadable = errors.New("art: could not read ascii art file")

// Image is an immutable block of text lines.
type Image struct {
	lines []string
	width int
}

// Load reads and parses the art file at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w at '%s': %w", ErrUnreadable, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w at '%s': invalid utf-8", ErrUnreadable, path)
	}
	return Parse(string(data)), nil
}

// Parse splits content into lines. A trailing "\r" is dropped from each line
// and a final newline does not start an extra line. Blank lines and trailing
// whitespace are kept.
func Parse(content string) *Image {
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	img := &Image{lines: make([]string, len(lines))}
	for i, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		img.lines[i] = l
		img.width = max(img.width, utf8.RuneCountInString(l))
	}
	return img
}

// Height returns the number of lines.
func (img *Image) Height() int {
	return len(img.lines)
}

// Width returns the longest line length in characters.
func (img *Image) Width() int {
	return img.width
}

// Lines returns a copy of the image lines.
func (img *Image) Lines() []string {
	out := make([]string, len(img.lines))
	copy(out, img.lines)
	return out
}

// Line returns line y.
func (img *Image) Line(y int) string {
	return img.lines[y]
}

// Cells returns the number of characters across all lines.
func (img *Image) Cells() int {
	n := 0
	for _, l := range img.lines {
		n += utf8.RuneCountInString(l)
	}
	return n
}
