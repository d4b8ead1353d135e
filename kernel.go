package meanshift

import "math"

// GaussianKernel returns the Gaussian kernel weight of a neighbor at the
// given distance in a space of dimension dim:
//
//	(2π)^(-dim/2) · bandwidth^(-dim) · exp(-½ (distance/bandwidth)²)
//
// The weight is non-negative and strictly decreasing in distance for
// bandwidth > 0.
func GaussianKernel(distance float64, dim int, bandwidth float64) float64 {
	return gaussianNorm(dim, bandwidth) * gaussianProfile(distance, bandwidth)
}

// gaussianNorm is the distance-independent normalization, computed in log
// space so moderate dimensions do not overflow the intermediate power.
func gaussianNorm(dim int, bandwidth float64) float64 {
	d := float64(dim)
	return math.Exp(-0.5*d*math.Log(2*math.Pi) - d*math.Log(bandwidth))
}

func gaussianProfile(distance, bandwidth float64) float64 {
	u := distance / bandwidth
	return math.Exp(-0.5 * u * u)
}

// kernel is a Gaussian kernel bound to one run's dimension and bandwidth.
type kernel struct {
	norm      float64
	bandwidth float64
}

// newKernel precomputes the normalization. When it underflows to zero or
// overflows (very high dimension), a constant 1 is used instead: every weight
// in one weighted mean shares the constant, so it cancels.
func newKernel(dim int, bandwidth float64) kernel {
	norm := gaussianNorm(dim, bandwidth)
	if norm == 0 || math.IsInf(norm, 0) || math.IsNaN(norm) {
		norm = 1
	}
	return kernel{norm: norm, bandwidth: bandwidth}
}

func (k kernel) weight(distance float64) float64 {
	return k.norm * gaussianProfile(distance, k.bandwidth)
}
