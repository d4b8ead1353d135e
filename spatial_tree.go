package meanshift

import (
	"math/bits"
	"slices"
	"sort"
)

// Neighbor is one result of a radius query.
type Neighbor struct {
	Index    int     // position of the point in the indexed set
	Distance float64 // Euclidean distance to the query
}

// NeighborIndex answers fixed-radius neighborhood queries over an immutable
// point set. Implementations are safe for concurrent queries.
type NeighborIndex interface {
	// QueryRadius appends to dst every indexed point whose distance to query
	// is <= radius, and returns the extended slice.
	QueryRadius(query []float64, radius float64, dst []Neighbor) []Neighbor

	// NumPoints returns the number of indexed points.
	NumPoints() int

	// NumFeatures returns the dimensionality of each point.
	NumFeatures() int
}

// NodeData describes a single node in a spatial tree.
type NodeData struct {
	IdxStart, IdxEnd int
	IsLeaf           bool
	Radius           float64 // ball tree radius; 0 for KD-tree
}

// BruteForceIndex scans every point on every query, in input order.
type BruteForceIndex struct {
	points []Point
	dims   int
}

// NewBruteForceIndex indexes points without copying them. The caller must not
// modify points while the index is in use.
func NewBruteForceIndex(points []Point) *BruteForceIndex {
	dims := 0
	if len(points) > 0 {
		dims = points[0].Dim()
	}
	return &BruteForceIndex{points: points, dims: dims}
}

// QueryRadius panics with *ErrDimensionMismatch if an indexed point and the
// query differ in length.
func (b *BruteForceIndex) QueryRadius(query []float64, radius float64, dst []Neighbor) []Neighbor {
	for i, p := range b.points {
		if len(p.Coords) != len(query) {
			panic(&ErrDimensionMismatch{Expected: len(query), Actual: len(p.Coords), Label: p.Label})
		}
		if d := euclidean(p.Coords, query); d <= radius {
			dst = append(dst, Neighbor{Index: i, Distance: d})
		}
	}
	return dst
}

func (b *BruteForceIndex) NumPoints() int   { return len(b.points) }
func (b *BruteForceIndex) NumFeatures() int { return b.dims }

// treeLayout is the array-form binary tree shared by KDTree and BallTree.
// Node i has children 2i+1 and 2i+2 and covers rows idx[IdxStart:IdxEnd] of
// the row-major data. Slots never reached by the build stay zero.
type treeLayout struct {
	data     []float64
	n        int
	dims     int
	leafSize int
	idx      []int
	nodes    []NodeData
}

func newTreeLayout(data []float64, n, dims, leafSize int) treeLayout {
	leafSize = max(leafSize, 1)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return treeLayout{
		data:     slices.Clone(data),
		n:        n,
		dims:     dims,
		leafSize: leafSize,
		idx:      idx,
		nodes:    make([]NodeData, nodeCapacity(n, leafSize)),
	}
}

// nodeCapacity is the size of a complete tree deep enough that median splits
// of n rows reach leaves of at most leafSize rows.
func nodeCapacity(n, leafSize int) int {
	leaves := max((n+leafSize-1)/leafSize, 1)
	depth := bits.Len(uint(leaves - 1))
	return 2<<depth - 1
}

func (l *treeLayout) NumPoints() int   { return l.n }
func (l *treeLayout) NumFeatures() int { return l.dims }

func (l *treeLayout) row(i int) []float64 { return l.data[i*l.dims : (i+1)*l.dims] }

// unused reports whether nodeID was never filled in by the build.
func (l *treeLayout) unused(nodeID int) bool {
	return nodeID >= len(l.nodes) || (nodeID != 0 && l.nodes[nodeID].IdxStart == l.nodes[nodeID].IdxEnd)
}

// splitAt orders idx[start:end] by coordinate dim and returns the median
// position. Ties keep their order so the layout depends only on the data.
func (l *treeLayout) splitAt(start, end, dim int) int {
	sort.SliceStable(l.idx[start:end], func(i, j int) bool {
		return l.data[l.idx[start+i]*l.dims+dim] < l.data[l.idx[start+j]*l.dims+dim]
	})
	return start + (end-start)/2
}

// scanLeaf appends the rows of a leaf that lie within radius of query.
func (l *treeLayout) scanLeaf(node NodeData, query []float64, radius float64, dst []Neighbor) []Neighbor {
	for i := node.IdxStart; i < node.IdxEnd; i++ {
		if d := euclidean(l.row(l.idx[i]), query); d <= radius {
			dst = append(dst, Neighbor{Index: l.idx[i], Distance: d})
		}
	}
	return dst
}
