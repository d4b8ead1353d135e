package meanshift

import "math"

// KDTree answers radius queries by pruning nodes whose axis-aligned bounding
// box lies entirely outside the query ball. The pruning is exact.
type KDTree struct {
	treeLayout
	// boundsMin[node*dims+j] and boundsMax[node*dims+j] bound feature j.
	boundsMin []float64
	boundsMax []float64
}

// NewKDTree builds a KD-tree over a copy of the flat row-major data holding n
// points of dimension dims. Leaves hold at most leafSize points.
func NewKDTree(data []float64, n, dims, leafSize int) *KDTree {
	t := &KDTree{treeLayout: newTreeLayout(data, n, dims, leafSize)}
	t.boundsMin = make([]float64, len(t.nodes)*dims)
	t.boundsMax = make([]float64, len(t.nodes)*dims)
	if n > 0 {
		t.build(0, 0, n)
	}
	return t
}

func (t *KDTree) build(nodeID, start, end int) {
	lo := t.boundsMin[nodeID*t.dims : (nodeID+1)*t.dims]
	hi := t.boundsMax[nodeID*t.dims : (nodeID+1)*t.dims]
	for j := range lo {
		lo[j], hi[j] = math.Inf(1), math.Inf(-1)
	}
	for i := start; i < end; i++ {
		for j, v := range t.row(t.idx[i]) {
			lo[j] = min(lo[j], v)
			hi[j] = max(hi[j], v)
		}
	}

	leaf := end-start <= t.leafSize
	t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: leaf}
	if leaf {
		return
	}

	widest, spread := 0, -1.0
	for j := range lo {
		if s := hi[j] - lo[j]; s > spread {
			widest, spread = j, s
		}
	}
	mid := t.splitAt(start, end, widest)
	t.build(2*nodeID+1, start, mid)
	t.build(2*nodeID+2, mid, end)
}

// QueryRadius appends every point within radius of query to dst.
func (t *KDTree) QueryRadius(query []float64, radius float64, dst []Neighbor) []Neighbor {
	if t.n == 0 {
		return dst
	}
	return t.search(0, query, radius, dst)
}

func (t *KDTree) search(nodeID int, query []float64, radius float64, dst []Neighbor) []Neighbor {
	if t.unused(nodeID) {
		return dst
	}
	// The box distance never exceeds the distance to any point in the box.
	if math.Sqrt(t.boxDistSq(nodeID, query)) > radius {
		return dst
	}
	node := t.nodes[nodeID]
	if node.IsLeaf {
		return t.scanLeaf(node, query, radius, dst)
	}
	dst = t.search(2*nodeID+1, query, radius, dst)
	return t.search(2*nodeID+2, query, radius, dst)
}

// boxDistSq is the squared distance from point to the node's bounding box,
// 0 inside it.
func (t *KDTree) boxDistSq(nodeID int, point []float64) float64 {
	base := nodeID * t.dims
	var sum float64
	for j, v := range point {
		var d float64
		if lo := t.boundsMin[base+j]; v < lo {
			d = lo - v
		} else if hi := t.boundsMax[base+j]; v > hi {
			d = v - hi
		}
		sum += d * d
	}
	return sum
}
