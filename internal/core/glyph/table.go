package glyph

import "fmt"

// canonical shapes for digits 0-9, index == digit
var canonical = [10]Glyph{
	Must(" _ ", "| |", "|_|"),
	Must("   ", "  |", "  |"),
	Must(" _ ", " _|", "|_ "),
	Must(" _ ", " _|", " _|"),
	Must("   ", "|_|", "  |"),
	Must(" _ ", "|_ ", " _|"),
	Must(" _ ", "|_ ", "|_|"),
	Must(" _ ", "  |", "  |"),
	Must(" _ ", "|_|", "|_|"),
	Must(" _ ", "|_|", " _|"),
}

// exact is the reverse of canonical
var exact = buildExact()

func buildExact() map[Glyph]int {
	m := make(map[Glyph]int, len(canonical))
	for d, g := range canonical {
		if prev, dup := m[g]; dup {
			panic(fmt.Sprintf("glyph: digits %d and %d share a canonical shape", prev, d))
		}
		m[g] = d
	}
	return m
}

// Digits is the number of canonical glyphs
const Digits = len(canonical)

// Canonical returns the reference shape for digit d (0..9)
func Canonical(d int) (Glyph, bool) {
	if d < 0 || d >= Digits {
		return Glyph{}, false
	}
	return canonical[d], true
}

// Lookup returns the digit whose canonical shape equals g exactly
func Lookup(g Glyph) (int, bool) {
	d, ok := exact[g]
	return d, ok
}
