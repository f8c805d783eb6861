// Package normalize folds scanned rows onto the glyph alphabet of space, underscore and pipe
// Pipeline order
// 1 Sanitize drop controls and invalid UTF-8
// 2 Lookalike fold eg broken bar and box drawing verticals to pipe
// 3 Unicode NFKC normalization, which also turns NBSP into a space
// 4 Remove zero-width and combining marks
// 5 Width fold fullwidth to ASCII
// Row width in cells is not preserved when the input had stripped or combining runes
package normalize

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Map(lookalike),
			norm.NFKC,
			runes.Remove(runes.In(unicode.Mn)), // combining marks
			runes.Remove(runes.In(unicode.Cf)), // ZWSP ZWJ FEFF etc
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Row returns s folded onto the glyph alphabet; runes with no glyph shape are left
// for the decoder to reject
func (n *Normalizer) Row(s string) string {
	if plain(s) {
		return s
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}

// Row folds s with a shared Normalizer
func Row(s string) string { return std.Row(s) }

var std = New()

func plain(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '_', '|':
		default:
			return false
		}
	}
	return true
}

// lookalike maps strokes that scanners and editors commonly substitute
func lookalike(r rune) rune {
	switch r {
	case '¦', // broken bar
		'ǀ', // dental click
		'∣', // divides
		'│', '┃', '║', // box drawing verticals
		'⎸', '⎹':
		return '|'
	case '‗', // double low line
		'ˍ', // modifier low macron
		'▁', // lower one eighth block
		'⎽':
		return '_'
	case '\t':
		return ' '
	}
	return r
}
