package meanshift

// kdTreeMaxDims is the highest dimensionality for which "auto" picks a
// KD-tree; above it bounding boxes stop pruning and a ball tree does better.
const kdTreeMaxDims = 60

// selectAlgorithm resolves AlgorithmAuto into a concrete neighbor search
// strategy based on input size and dimensionality.
func selectAlgorithm(cfg Config, n, dims int) Algorithm {
	if cfg.Algorithm != AlgorithmAuto {
		return cfg.Algorithm
	}
	if n <= cfg.LeafSize {
		return AlgorithmBrute
	}
	if dims <= kdTreeMaxDims {
		return AlgorithmKDTree
	}
	return AlgorithmBallTree
}

// newNeighborIndex builds the index chosen by selectAlgorithm. points must
// already be validated to share dimensionality dims.
func newNeighborIndex(points []Point, dims int, cfg Config) (NeighborIndex, Algorithm) {
	algo := selectAlgorithm(cfg, len(points), dims)
	switch algo {
	case AlgorithmKDTree:
		return NewKDTree(flatten(points, dims), len(points), dims, cfg.LeafSize), algo
	case AlgorithmBallTree:
		return NewBallTree(flatten(points, dims), len(points), dims, cfg.LeafSize), algo
	default:
		return NewBruteForceIndex(points), AlgorithmBrute
	}
}
