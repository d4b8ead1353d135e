package meanshift

import "gonum.org/v1/gonum/floats"

// Mode is the converged location of one input point.
type Mode struct {
	Point

	// Origin is the index of the starting point in the input set.
	Origin int

	// Iterations is the number of refinement iterations executed.
	Iterations int

	// Converged is true when the last shift was within the convergence
	// threshold, false when the iteration cap was reached first.
	Converged bool
}

// ModeSeeker climbs the Gaussian kernel density estimate of a fixed point set
// from a starting point to a local mode.
//
// A ModeSeeker is immutable after construction and safe for concurrent use;
// every Seek call owns its own centroid.
type ModeSeeker struct {
	points        []Point
	index         NeighborIndex
	dims          int
	kernel        kernel
	radius        float64
	maxIterations int
	threshold     float64
}

// NewModeSeeker validates cfg and points and builds the neighbor index used
// for every refinement step. points must not be modified afterwards.
func NewModeSeeker(points []Point, cfg Config) (*ModeSeeker, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	dims, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	index, _ := newNeighborIndex(points, dims, cfg)
	return newModeSeeker(points, index, dims, cfg), nil
}

func newModeSeeker(points []Point, index NeighborIndex, dims int, cfg Config) *ModeSeeker {
	return &ModeSeeker{
		points:        points,
		index:         index,
		dims:          dims,
		kernel:        newKernel(dims, cfg.Bandwidth),
		radius:        cfg.RadiusCutoff,
		maxIterations: cfg.MaxIterations,
		threshold:     cfg.ConvergenceThreshold,
	}
}

// Seek runs the fixed-point iteration from start. Each iteration moves the
// centroid to the kernel-weighted mean of all points within the radius
// cutoff; iteration stops once a move is no larger than the convergence
// threshold or after the iteration cap. Hitting the cap is not an error: the
// last centroid is returned with Converged set to false.
//
// Seek panics with *ErrDimensionMismatch if start has the wrong dimension.
func (s *ModeSeeker) Seek(start Point) Mode {
	if start.Dim() != s.dims {
		panic(&ErrDimensionMismatch{Expected: s.dims, Actual: start.Dim(), Label: start.Label})
	}

	centroid := start.Clone()
	mode := Mode{}

	shift := make([]float64, s.dims)
	diff := make([]float64, s.dims)
	var neighbors []Neighbor

	for it := 1; it <= s.maxIterations; it++ {
		mode.Iterations = it

		neighbors = s.index.QueryRadius(centroid.Coords, s.radius, neighbors[:0])
		if len(neighbors) == 0 {
			continue
		}

		// Weighted mean expressed as centroid + Σ w(p - c) / Σ w so that a
		// neighborhood centered on the centroid reproduces it exactly.
		for j := range shift {
			shift[j] = 0
		}
		var total float64
		for _, nb := range neighbors {
			w := s.kernel.weight(nb.Distance)
			if w == 0 {
				continue
			}
			floats.SubTo(diff, s.points[nb.Index].Coords, centroid.Coords)
			floats.AddScaled(shift, w, diff)
			total += w
		}
		if total == 0 {
			continue
		}
		for j := range shift {
			shift[j] /= total
		}

		next := Point{Label: start.Label, Coords: floats.AddTo(make([]float64, s.dims), centroid.Coords, shift)}
		moved := Distance(centroid, next)
		centroid = next
		if moved <= s.threshold {
			mode.Converged = true
			break
		}
	}

	mode.Point = centroid
	return mode
}

// validatePoints checks that points is non-empty and that every point shares
// the first point's dimensionality, which must be at least 1.
func validatePoints(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyInput
	}
	dims := points[0].Dim()
	if dims < 1 {
		return 0, ErrInvalidDimension
	}
	for _, p := range points[1:] {
		if p.Dim() != dims {
			return 0, &ErrDimensionMismatch{Expected: dims, Actual: p.Dim(), Label: p.Label}
		}
	}
	return dims, nil
}
