// Package correct searches for single-symbol repairs of a scanned account number:
// every position may keep its reading or switch to a digit one cell edit away from its
// raw glyph, and only completions differing in exactly one position that pass the
// checksum survive
package correct

import (
	"slices"

	"bankocr/internal/core/checksum"
	"bankocr/internal/core/decoder"
	"bankocr/internal/core/glyph"
)

// Budget is the number of positions a repair may change
const Budget = 1

// Candidate is a fully resolved nine digit repair
type Candidate [decoder.Positions]int

// String renders the candidate as nine digits
func (c Candidate) String() string {
	var b [decoder.Positions]byte
	for i, d := range c {
		b[i] = byte('0' + d)
	}
	return string(b[:])
}

// Compare orders candidates as their digit strings would sort
func Compare(a, b Candidate) int { return slices.Compare(a[:], b[:]) }

// Options lists the digits each position may take: the decoded digit when resolved,
// plus every digit whose canonical glyph is one cell edit from the raw glyph
// an unknown position offers only the edit-distance digits
func Options(cells [decoder.Positions]glyph.Glyph, decoded decoder.Number) [][]decoder.Symbol {
	out := make([][]decoder.Symbol, decoder.Positions)
	for i, g := range cells {
		vs := glyph.VariantsOf(g)
		opts := make([]decoder.Symbol, 0, len(vs)+1)
		if decoded[i].Resolved() {
			opts = append(opts, decoded[i])
		}
		for _, d := range vs {
			if s := decoder.Symbol(d); s != decoded[i] {
				opts = append(opts, s)
			}
		}
		out[i] = opts
	}
	return out
}

// Candidates returns the checksum-valid repairs of decoded, sorted ascending and
// without duplicates; the only error is a malformed image
func Candidates(img decoder.Image, decoded decoder.Number) ([]Candidate, error) {
	cells, err := decoder.Split(img)
	if err != nil {
		return nil, err
	}

	var out []Candidate
	for seq := range Within(Options(cells, decoded), decoded[:], Budget) {
		var c Candidate
		for i, s := range seq {
			c[i] = int(s)
		}
		ok, err := checksum.Valid(c[:])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, Compare)
	return slices.Compact(out), nil
}

// Strings renders candidates in order
func Strings(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
