package meanshift

import "strconv"

// MergeModes folds converged modes into cluster centers in a single greedy
// pass over modes, in order.
//
// Each mode is compared with the existing centers in creation order. The
// first center closer than mergeRadius absorbs it and moves to the midpoint
// of itself and the mode; otherwise the mode starts a new center. Because the
// newest mode always carries half the weight, the final positions depend on
// the order of modes. A fold can also pull a center to within mergeRadius of
// an earlier one, so centers are not guaranteed to be pairwise mergeRadius
// apart, and merging the centers again is a no-op only when no fold did so.
//
// assignments[k] is the index of the center that modes[k] was folded into.
// Centers are labeled "cluster0", "cluster1", ... in creation order.
// Panics with *ErrDimensionMismatch if the modes differ in dimension.
func MergeModes(modes []Point, mergeRadius float64) (centers []Point, assignments []int) {
	assignments = make([]int, len(modes))
	for k, m := range modes {
		j := firstWithin(centers, m, mergeRadius)
		if j < 0 {
			centers = append(centers, Point{Label: "cluster" + strconv.Itoa(len(centers)), Coords: m.Clone().Coords})
			assignments[k] = len(centers) - 1
			continue
		}
		centers[j] = Midpoint(centers[j], m)
		assignments[k] = j
	}
	return centers, assignments
}

// firstWithin returns the index of the first center strictly closer than
// radius to m, or -1.
func firstWithin(centers []Point, m Point, radius float64) int {
	for j, c := range centers {
		if Distance(m, c) < radius {
			return j
		}
	}
	return -1
}

// clusterSizes counts how many modes were assigned to each of k centers.
func clusterSizes(assignments []int, k int) []int {
	sizes := make([]int, k)
	for _, a := range assignments {
		sizes[a]++
	}
	return sizes
}
