package meanshift

import "testing"

func TestSelectAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		algo Algorithm
		n    int
		dims int
		want Algorithm
	}{
		{"auto tiny input", AlgorithmAuto, 10, 2, AlgorithmBrute},
		{"auto at leaf size", AlgorithmAuto, 40, 2, AlgorithmBrute},
		{"auto low dims", AlgorithmAuto, 1000, 2, AlgorithmKDTree},
		{"auto 60 dims", AlgorithmAuto, 1000, 60, AlgorithmKDTree},
		{"auto high dims", AlgorithmAuto, 1000, 61, AlgorithmBallTree},
		{"forced brute", AlgorithmBrute, 1000, 2, AlgorithmBrute},
		{"forced kdtree", AlgorithmKDTree, 5, 100, AlgorithmKDTree},
		{"forced balltree", AlgorithmBallTree, 5, 2, AlgorithmBallTree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Algorithm: tt.algo, LeafSize: 40}
			if got := selectAlgorithm(cfg, tt.n, tt.dims); got != tt.want {
				t.Errorf("selectAlgorithm = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewNeighborIndex_Types(t *testing.T) {
	points := generateUniform(100, 2, 1)
	cfg := DefaultConfig()
	cfg.LeafSize = 10

	for _, tt := range []struct {
		algo Algorithm
		want string
	}{
		{AlgorithmBrute, "*meanshift.BruteForceIndex"},
		{AlgorithmKDTree, "*meanshift.KDTree"},
		{AlgorithmBallTree, "*meanshift.BallTree"},
	} {
		cfg.Algorithm = tt.algo
		index, algo := newNeighborIndex(points, 2, cfg)
		if algo != tt.algo {
			t.Errorf("%s: resolved to %q", tt.algo, algo)
		}
		switch index.(type) {
		case *BruteForceIndex:
			if tt.algo != AlgorithmBrute {
				t.Errorf("%s: got brute force index", tt.algo)
			}
		case *KDTree:
			if tt.algo != AlgorithmKDTree {
				t.Errorf("%s: got KD-tree", tt.algo)
			}
		case *BallTree:
			if tt.algo != AlgorithmBallTree {
				t.Errorf("%s: got ball tree", tt.algo)
			}
		default:
			t.Errorf("%s: unexpected index %T, want %s", tt.algo, index, tt.want)
		}
		if index.NumPoints() != 100 || index.NumFeatures() != 2 {
			t.Errorf("%s: NumPoints=%d NumFeatures=%d", tt.algo, index.NumPoints(), index.NumFeatures())
		}
	}
}
