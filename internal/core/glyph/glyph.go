// Package glyph holds the fixed 3x3 seven-segment shapes used on scanned account numbers
// and the one-edit neighborhood index built from them
package glyph

import (
	"strings"

	perr "bankocr/internal/platform/errors"
)

const (
	// Size is the number of rows and columns in one glyph cell
	Size = 3

	// Cells is the number of characters in one glyph
	Cells = Size * Size
)

// The only characters a glyph cell may hold
const (
	Space      byte = ' '
	Underscore byte = '_'
	Pipe       byte = '|'
)

// Glyph is one 3x3 cell of a scanned image, row-major
// it is a comparable value and can be used as a map key
type Glyph [Size][Size]byte

// New builds a Glyph from three rows of exactly three allowed characters
func New(top, mid, bot string) (Glyph, error) {
	var g Glyph
	for r, row := range [Size]string{top, mid, bot} {
		if len(row) != Size {
			return Glyph{}, perr.Formatf("glyph row %d has %d characters, want %d", r, len(row), Size)
		}
		for c := 0; c < Size; c++ {
			ch := row[c]
			if !Allowed(ch) {
				return Glyph{}, perr.Formatf("glyph row %d col %d has invalid character %q", r, c, ch)
			}
			g[r][c] = ch
		}
	}
	return g, nil
}

// Must is New that panics, used for the static tables
func Must(top, mid, bot string) Glyph {
	g, err := New(top, mid, bot)
	if err != nil {
		panic(err)
	}
	return g
}

// Allowed reports whether ch is a legal glyph character
func Allowed(ch byte) bool { return ch == Space || ch == Underscore || ch == Pipe }

// Row returns row r as a string
func (g Glyph) Row(r int) string { return string(g[r][:]) }

// Rows returns the three rows
func (g Glyph) Rows() [Size]string {
	return [Size]string{g.Row(0), g.Row(1), g.Row(2)}
}

// Cell returns the character at flat index i (0..8, row-major)
func (g Glyph) Cell(i int) byte { return g[i/Size][i%Size] }

// WithCell returns a copy of g with flat cell i replaced by ch
func (g Glyph) WithCell(i int, ch byte) Glyph {
	g[i/Size][i%Size] = ch
	return g
}

// String renders the glyph over three newline separated rows
func (g Glyph) String() string {
	r := g.Rows()
	return strings.Join(r[:], "\n")
}
