package interpolate

// searcher finds the segment of a strictly increasing table which contains
// a point.
type searcher struct {
	xs          []float64
	x0, lim, dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
}

// search returns i such that xs[i] <= x < xs[i+1]. The last point belongs to
// the last segment and points outside of the table map to the nearest end
// segment.
func (s *searcher) search(x float64) int {
	n := len(s.xs)
	if x <= s.x0 {
		return 0
	} else if x >= s.lim {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < n-1 && s.xs[guess] <= x && x < s.xs[guess+1] {
		return guess
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
