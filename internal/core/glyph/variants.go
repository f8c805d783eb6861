package glyph

import "slices"

// neighborhood[d] lists every glyph one cell edit away from canonical[d], in generation order
// variants maps such a glyph back to all digits that produced it (ascending, no duplicates)
var (
	neighborhood = buildNeighborhood()
	variants     = buildVariants(neighborhood)
)

// edits returns the replacements a single cell edit may produce for ch
// a blank can gain a stroke, a stroke can only be lost
func edits(ch byte) []byte {
	if ch == Space {
		return []byte{Pipe, Underscore}
	}
	return []byte{Space}
}

func buildNeighborhood() [Digits][]Glyph {
	var out [Digits][]Glyph
	for d, g := range canonical {
		xs := make([]Glyph, 0, 2*Cells)
		for i := 0; i < Cells; i++ {
			for _, ch := range edits(g.Cell(i)) {
				xs = append(xs, g.WithCell(i, ch))
			}
		}
		out[d] = xs
	}
	return out
}

func buildVariants(nb [Digits][]Glyph) map[Glyph][]int {
	m := make(map[Glyph][]int, Digits*2*Cells)
	for d := range nb {
		for _, g := range nb[d] {
			// digits are visited in ascending order so membership is a tail check
			if ds := m[g]; len(ds) > 0 && ds[len(ds)-1] == d {
				continue
			}
			m[g] = append(m[g], d)
		}
	}
	return m
}

// VariantsOf returns every digit whose canonical glyph is exactly one cell edit away from g
// the result is ascending and may hold several digits when single-edit shapes collide
func VariantsOf(g Glyph) []int {
	return slices.Clone(variants[g])
}

// Neighbors returns the one-edit neighborhood of digit d; its size is 9 plus the
// number of blank cells in the canonical shape
func Neighbors(d int) []Glyph {
	if d < 0 || d >= Digits {
		return nil
	}
	return slices.Clone(neighborhood[d])
}
