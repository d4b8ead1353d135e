package meanshift

import "gonum.org/v1/gonum/floats"

// Point is a labeled coordinate vector. The label is for diagnostics only and
// takes no part in arithmetic or distance.
//
// Points are treated as values: the functions below always allocate a new
// coordinate slice and never modify their arguments.
type Point struct {
	Label  string
	Coords []float64
}

// NewPoint returns a Point owning a copy of coords.
func NewPoint(label string, coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{Label: label, Coords: c}
}

// Dim returns the dimensionality of p.
func (p Point) Dim() int { return len(p.Coords) }

// Clone returns a deep copy of p.
func (p Point) Clone() Point { return NewPoint(p.Label, p.Coords...) }

// Add returns the elementwise sum of a and b, labeled like a.
// Panics with *ErrDimensionMismatch if the dimensions differ.
func Add(a, b Point) Point {
	mustMatch(a, b)
	return Point{Label: a.Label, Coords: floats.AddTo(make([]float64, a.Dim()), a.Coords, b.Coords)}
}

// Scale returns p with every coordinate multiplied by k.
func Scale(p Point, k float64) Point {
	return Point{Label: p.Label, Coords: floats.ScaleTo(make([]float64, p.Dim()), k, p.Coords)}
}

// Midpoint returns (a + b) / 2, labeled like a.
// Panics with *ErrDimensionMismatch if the dimensions differ.
func Midpoint(a, b Point) Point {
	return Scale(Add(a, b), 0.5)
}

// Distance returns the Euclidean distance between a and b.
// Panics with *ErrDimensionMismatch if the dimensions differ.
func Distance(a, b Point) float64 {
	mustMatch(a, b)
	return euclidean(a.Coords, b.Coords)
}

// mustMatch panics unless a and b have the same dimensionality.
func mustMatch(a, b Point) {
	if len(a.Coords) != len(b.Coords) {
		panic(&ErrDimensionMismatch{Expected: len(a.Coords), Actual: len(b.Coords), Label: b.Label})
	}
}

// flatten copies points into a row-major []float64 of len(points)*dims.
func flatten(points []Point, dims int) []float64 {
	data := make([]float64, len(points)*dims)
	for i, p := range points {
		copy(data[i*dims:], p.Coords)
	}
	return data
}
