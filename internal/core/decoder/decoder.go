// Package decoder splits a scanned three line image into glyph cells and reads
// each cell against the canonical digit table
package decoder

import (
	"strings"

	"bankocr/internal/core/glyph"
	perr "bankocr/internal/platform/errors"
)

const (
	// Lines is the number of text rows in one scanned image
	Lines = glyph.Size

	// Positions is the number of digits in an account number
	Positions = 9

	// Width is the column count of a full account number image
	Width = Positions * glyph.Size
)

// Image is one scanned account number, exactly three rows of equal width
type Image struct {
	lines [Lines]string
}

// NewImage validates the geometry of lines and copies them into an Image
// the width must be a positive multiple of three; Decode additionally requires 27
func NewImage(lines []string) (Image, error) {
	if len(lines) != Lines {
		return Image{}, perr.Formatf("image has %d lines, want %d", len(lines), Lines)
	}
	w := len(lines[0])
	if w == 0 || w%glyph.Size != 0 {
		return Image{}, perr.Formatf("image width %d is not a positive multiple of %d", w, glyph.Size)
	}
	var img Image
	for i, l := range lines {
		if len(l) != w {
			return Image{}, perr.Formatf("image line %d has width %d, line 0 has %d", i, len(l), w)
		}
		img.lines[i] = l
	}
	return img, nil
}

// Lines returns the three rows
func (img Image) Lines() []string { return img.lines[:] }

// Width returns the column count
func (img Image) Width() int { return len(img.lines[0]) }

// String renders the rows newline separated
func (img Image) String() string { return strings.Join(img.lines[:], "\n") }

// Cells partitions the image into consecutive 3x3 glyphs, left to right
func Cells(img Image) ([]glyph.Glyph, error) {
	w := img.Width()
	if w == 0 || w%glyph.Size != 0 {
		return nil, perr.Formatf("image width %d is not a positive multiple of %d", w, glyph.Size)
	}
	out := make([]glyph.Glyph, 0, w/glyph.Size)
	for c := 0; c < w; c += glyph.Size {
		g, err := glyph.New(
			img.lines[0][c:c+glyph.Size],
			img.lines[1][c:c+glyph.Size],
			img.lines[2][c:c+glyph.Size],
		)
		if err != nil {
			return nil, perr.WithOp(err, "decoder.cells")
		}
		out = append(out, g)
	}
	return out, nil
}

// Split partitions the image into exactly nine glyphs
func Split(img Image) ([Positions]glyph.Glyph, error) {
	var out [Positions]glyph.Glyph
	if w := img.Width(); w != Width {
		return out, perr.Formatf("image width %d is not %d: want %d three column cells", w, Width, Positions)
	}
	cells, err := Cells(img)
	if err != nil {
		return out, err
	}
	copy(out[:], cells)
	return out, nil
}

// Decode reads the nine positions of img; a cell with no exact canonical match
// becomes Unknown
func Decode(img Image) (Number, error) {
	var n Number
	cells, err := Split(img)
	if err != nil {
		return n, err
	}
	for i, g := range cells {
		if d, ok := glyph.Lookup(g); ok {
			n[i] = Symbol(d)
		} else {
			n[i] = Unknown
		}
	}
	return n, nil
}

// Compose lays glyphs side by side into an image
func Compose(cells []glyph.Glyph) (Image, error) {
	if len(cells) == 0 {
		return Image{}, perr.Formatf("no cells to compose")
	}
	var rows [Lines]strings.Builder
	for _, g := range cells {
		for r := 0; r < Lines; r++ {
			rows[r].WriteString(g.Row(r))
		}
	}
	return NewImage([]string{rows[0].String(), rows[1].String(), rows[2].String()})
}

// Render draws a digit string with the canonical glyphs
func Render(digits string) (Image, error) {
	cells := make([]glyph.Glyph, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		g, ok := glyph.Canonical(int(digits[i]) - '0')
		if !ok {
			return Image{}, perr.Formatf("cannot render %q at %d", digits[i], i)
		}
		cells = append(cells, g)
	}
	return Compose(cells)
}
