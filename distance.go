package meanshift

import "math"

// euclidean computes the Euclidean (L2) distance between two equal-length
// coordinate slices. Callers check lengths.
func euclidean(a, b []float64) float64 {
	return math.Sqrt(sumOfSquares(a, b))
}

// sumOfSquares returns the squared Euclidean distance (skips sqrt).
func sumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// pruneSlack widens the ball tree's triangle-inequality bound by a relative
// margin so rounding can never prune a point the exact test would accept.
const pruneSlack = 1e-9
