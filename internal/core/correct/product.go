package correct

import (
	"iter"
	"slices"
)

// Within walks the cartesian product options[0] x ... x options[n-1] and yields every
// sequence whose symbol-wise Hamming distance from ref is exactly budget
// prefixes already past the budget are cut, so the walk stays small when most
// positions offer only their reference value
// yielded slices are fresh copies
func Within[T comparable](options [][]T, ref []T, budget int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(options) != len(ref) || budget < 0 {
			return
		}
		cur := make([]T, len(options))

		var walk func(i, dist int) bool
		walk = func(i, dist int) bool {
			if i == len(options) {
				if dist != budget {
					return true
				}
				return yield(slices.Clone(cur))
			}
			for _, o := range options[i] {
				d := dist
				if o != ref[i] {
					d++
				}
				if d > budget {
					continue
				}
				cur[i] = o
				if !walk(i+1, d) {
					return false
				}
			}
			return true
		}
		walk(0, 0)
	}
}
