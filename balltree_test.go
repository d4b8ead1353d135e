package meanshift

import (
	"math"
	"testing"
)

// --- Construction tests ---

func TestBallTree_Construction_BasicProperties(t *testing.T) {
	data := []float64{
		0, 0,
		1, 0,
		2, 0,
		0, 3,
		1, 3,
		2, 3,
	}
	n, dims := 6, 2
	tree := NewBallTree(data, n, dims, 2)

	if tree.NumPoints() != n {
		t.Errorf("NumPoints() = %d, want %d", tree.NumPoints(), n)
	}
	if tree.NumFeatures() != dims {
		t.Errorf("NumFeatures() = %d, want %d", tree.NumFeatures(), dims)
	}
	covered := 0
	for _, nd := range tree.nodes {
		if nd.IsLeaf {
			covered += nd.IdxEnd - nd.IdxStart
		}
	}
	if covered != n {
		t.Errorf("leaves cover %d points, want %d", covered, n)
	}

	// idx should be a permutation of 0..n-1.
	idx := tree.idx
	seen := make(map[int]bool)
	for _, v := range idx {
		if v < 0 || v >= n {
			t.Errorf("idx contains out-of-range index %d", v)
		}
		if seen[v] {
			t.Errorf("idx contains duplicate index %d", v)
		}
		seen[v] = true
	}
}

func TestBallTree_Construction_LeafSize1(t *testing.T) {
	data := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	tree := NewBallTree(data, 4, 2, 1)

	for _, nd := range tree.nodes {
		if nd.IsLeaf && (nd.IdxEnd-nd.IdxStart) != 1 {
			t.Errorf("leaf has %d points, want 1", nd.IdxEnd-nd.IdxStart)
		}
	}
}

func TestBallTree_Construction_RadiusCoversPoints(t *testing.T) {
	points := generateUniform(200, 3, 9)
	tree := NewBallTree(flatten(points, 3), len(points), 3, 5)
	idx := tree.idx
	for nodeID, nd := range tree.nodes {
		c := tree.centroids[nodeID*3 : (nodeID+1)*3]
		for i := nd.IdxStart; i < nd.IdxEnd; i++ {
			if d := euclidean(c, points[idx[i]].Coords); d > nd.Radius+1e-12 {
				t.Fatalf("node %d: point %d at %v outside radius %v", nodeID, idx[i], d, nd.Radius)
			}
		}
	}
}

func TestBallTree_Empty(t *testing.T) {
	tree := NewBallTree(nil, 0, 3, 10)
	if got := tree.QueryRadius([]float64{0, 0, 0}, math.Inf(1), nil); len(got) != 0 {
		t.Errorf("empty tree returned %v", got)
	}
}

// --- Radius query tests ---

func TestBallTree_QueryRadius_BoundaryIncluded(t *testing.T) {
	data := []float64{0, 0, 3, 4, 6, 8}
	tree := NewBallTree(data, 3, 2, 1)

	got := tree.QueryRadius([]float64{0, 0}, 5, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 neighbors (distance 0 and exactly 5), got %v", got)
	}
}

func TestBallTree_QueryRadius_MatchesBruteForce(t *testing.T) {
	for _, dims := range []int{1, 3, 80} {
		points := generateUniform(300, dims, int64(dims)+100)
		brute := NewBruteForceIndex(points)
		for _, leafSize := range []int{1, 10} {
			tree := NewBallTree(flatten(points, dims), len(points), dims, leafSize)
			radii := []float64{1, 10, 40}
			if dims == 80 {
				// Uniform points in 80-D are ~365 apart on average.
				radii = []float64{330, 365, 400}
			}
			assertSameNeighborhoods(t, brute, tree, points, radii)
		}
	}
}
