package meanshift

import "math"

// BallTree answers radius queries by pruning nodes whose enclosing ball lies
// outside the query ball. It prunes better than a KD-tree in high dimensions.
type BallTree struct {
	treeLayout
	// centroids[node*dims : (node+1)*dims] is the mean of the node's points;
	// NodeData.Radius is the largest distance from it to one of them.
	centroids []float64
}

// NewBallTree builds a ball tree over a copy of the flat row-major data
// holding n points of dimension dims. Leaves hold at most leafSize points.
func NewBallTree(data []float64, n, dims, leafSize int) *BallTree {
	t := &BallTree{treeLayout: newTreeLayout(data, n, dims, leafSize)}
	t.centroids = make([]float64, len(t.nodes)*dims)
	if n > 0 {
		t.build(0, 0, n)
	}
	return t
}

func (t *BallTree) build(nodeID, start, end int) {
	c := t.centroids[nodeID*t.dims : (nodeID+1)*t.dims]
	for i := start; i < end; i++ {
		for j, v := range t.row(t.idx[i]) {
			c[j] += v
		}
	}
	for j := range c {
		c[j] /= float64(end - start)
	}

	var radius float64
	for i := start; i < end; i++ {
		radius = max(radius, euclidean(c, t.row(t.idx[i])))
	}

	leaf := end-start <= t.leafSize
	t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: leaf, Radius: radius}
	if leaf {
		return
	}

	mid := t.splitAt(start, end, t.widestDim(start, end))
	t.build(2*nodeID+1, start, mid)
	t.build(2*nodeID+2, mid, end)
}

// widestDim returns the feature with the largest range over idx[start:end].
func (t *BallTree) widestDim(start, end int) int {
	widest, spread := 0, -1.0
	for j := 0; j < t.dims; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := start; i < end; i++ {
			v := t.data[t.idx[i]*t.dims+j]
			lo, hi = min(lo, v), max(hi, v)
		}
		if hi-lo > spread {
			widest, spread = j, hi-lo
		}
	}
	return widest
}

// QueryRadius appends every point within radius of query to dst.
func (t *BallTree) QueryRadius(query []float64, radius float64, dst []Neighbor) []Neighbor {
	if t.n == 0 {
		return dst
	}
	return t.search(0, query, radius, dst)
}

func (t *BallTree) search(nodeID int, query []float64, radius float64, dst []Neighbor) []Neighbor {
	if t.unused(nodeID) {
		return dst
	}
	// Every point in the ball is at least |q - c| - r away.
	node := t.nodes[nodeID]
	c := t.centroids[nodeID*t.dims : (nodeID+1)*t.dims]
	if euclidean(query, c) > (node.Radius+radius)*(1+pruneSlack) {
		return dst
	}
	if node.IsLeaf {
		return t.scanLeaf(node, query, radius, dst)
	}
	dst = t.search(2*nodeID+1, query, radius, dst)
	return t.search(2*nodeID+2, query, radius, dst)
}
