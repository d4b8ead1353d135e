package meanshift

import (
	"fmt"
	"math"
	"runtime"
	"time"
)

// Algorithm selects the neighbor search strategy.
type Algorithm string

const (
	AlgorithmAuto     Algorithm = "auto"
	AlgorithmBrute    Algorithm = "brute"
	AlgorithmKDTree   Algorithm = "kdtree"
	AlgorithmBallTree Algorithm = "balltree"
)

// Config controls mean-shift clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Bandwidth is the Gaussian kernel scale. Larger values smooth the
	// density estimate and produce fewer clusters. Must be > 0. Default: 1.0.
	Bandwidth float64 `yaml:"bandwidth"`

	// RadiusCutoff is the maximum distance at which a point contributes to a
	// refinement step at all. Must be > 0. Default: 3.0.
	RadiusCutoff float64 `yaml:"radius_cutoff"`

	// MergeRadius is the distance below which two converged modes are folded
	// into one cluster. 0 means RadiusCutoff/5. Must be >= 0. Default: 0.
	MergeRadius float64 `yaml:"merge_radius"`

	// MaxIterations caps the refinement of a single point. 0 means 300.
	// Must be >= 0. Default: 300.
	MaxIterations int `yaml:"max_iterations"`

	// ConvergenceThreshold stops a refinement once the centroid moves by no
	// more than this distance. Must be >= 0. Default: 1e-6.
	ConvergenceThreshold float64 `yaml:"convergence_threshold"`

	// Algorithm selects the neighbor search strategy. "auto" picks a scan for
	// tiny inputs, a KD-tree up to 60 dimensions and a ball tree above.
	// Default: "auto".
	Algorithm Algorithm `yaml:"algorithm"`

	// LeafSize controls the maximum number of points in a spatial tree leaf
	// node. Default: 40.
	LeafSize int `yaml:"leaf_size"`

	// Workers controls the number of goroutines refining points in parallel.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int `yaml:"workers"`

	// Logger receives progress and timing records. nil means NoopLogger().
	Logger *Logger `yaml:"-"`
}

// Result contains the output of mean-shift clustering.
type Result struct {
	// Centers are the final cluster centers in creation order.
	Centers []Point

	// Labels assigns each input point to a cluster: points[i] belongs to
	// Centers[Labels[i]].
	Labels []int

	// Sizes[j] is the number of input points assigned to Centers[j].
	Sizes []int

	// Modes holds the converged mode of every input point, ordered by Origin.
	Modes []Mode

	// Iterations is the total number of refinement iterations over all points.
	Iterations int

	// Unconverged counts points whose refinement hit MaxIterations.
	Unconverged int
}

const defaultMaxIterations = 300

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Bandwidth:            1.0,
		RadiusCutoff:         3.0,
		MaxIterations:        defaultMaxIterations,
		ConvergenceThreshold: 1e-6,
		Algorithm:            AlgorithmAuto,
		LeafSize:             40,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if !(cfg.Bandwidth > 0) || math.IsInf(cfg.Bandwidth, 1) {
		return fmt.Errorf("meanshift: Bandwidth must be > 0 and finite, got %v", cfg.Bandwidth)
	}
	if !(cfg.RadiusCutoff > 0) {
		return fmt.Errorf("meanshift: RadiusCutoff must be > 0, got %v", cfg.RadiusCutoff)
	}
	if !(cfg.MergeRadius > 0) {
		return fmt.Errorf("meanshift: MergeRadius must be > 0 (0 means RadiusCutoff/5), got %v", cfg.MergeRadius)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("meanshift: MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}
	if !(cfg.ConvergenceThreshold >= 0) {
		return fmt.Errorf("meanshift: ConvergenceThreshold must be >= 0, got %v", cfg.ConvergenceThreshold)
	}
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmBrute, AlgorithmKDTree, AlgorithmBallTree:
		// valid
	default:
		return fmt.Errorf("meanshift: invalid Algorithm %q", cfg.Algorithm)
	}
	if cfg.LeafSize < 1 {
		return fmt.Errorf("meanshift: LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("meanshift: Workers must be >= 0 (0 means NumCPU), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MergeRadius == 0 {
		cfg.MergeRadius = cfg.RadiusCutoff / 5
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = 40
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
}

// Cluster performs mean-shift clustering on points.
// All points must share one dimensionality of at least 1. Returns an error if
// the config is invalid, points is empty, or the dimensions disagree; in that
// case no clustering is attempted.
func Cluster(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	dims, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	index, algo := newNeighborIndex(points, dims, cfg)
	seeker := newModeSeeker(points, index, dims, cfg)

	start := time.Now()
	modes, err := RefineParallel(seeker, points, cfg.Workers)
	if err != nil {
		return nil, err
	}

	res := &Result{Modes: modes, Labels: make([]int, len(points))}
	for _, m := range modes {
		res.Iterations += m.Iterations
		if !m.Converged {
			res.Unconverged++
		}
	}
	cfg.Logger.LogRefine(len(points), dims, cfg.Workers, algo, res.Iterations, res.Unconverged, time.Since(start))

	start = time.Now()
	modePoints := make([]Point, len(modes))
	for k, m := range modes {
		modePoints[k] = m.Point
	}
	centers, assignments := MergeModes(modePoints, cfg.MergeRadius)
	for k, m := range modes {
		res.Labels[m.Origin] = assignments[k]
	}
	res.Centers = centers
	res.Sizes = clusterSizes(assignments, len(centers))
	cfg.Logger.LogMerge(len(modes), len(centers), cfg.MergeRadius, time.Since(start))

	return res, nil
}
