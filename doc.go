// Package meanshift implements mean-shift clustering.
//
// Mean shift finds the modes of a kernel density estimate without being told
// how many clusters to expect. Every input point climbs the density gradient
// by repeatedly moving to the Gaussian-weighted mean of its neighborhood until
// the move is smaller than a convergence threshold or an iteration cap is hit.
// The resulting modes, one per input point, are then folded into a small set
// of cluster centers by a single greedy merge pass.
//
// Basic usage:
//
//	cfg := meanshift.DefaultConfig()
//	cfg.Bandwidth = 1.0
//	cfg.RadiusCutoff = 5.0
//	result, err := meanshift.Cluster(points, cfg)
//	// result.Centers are the cluster centers
//	// result.Labels[i] is the index into Centers for points[i]
//
// # Neighbor search
//
// Each refinement step needs every point within Config.RadiusCutoff of the
// current centroid. By default (Algorithm: "auto"), Cluster picks a KD-tree
// for low-dimensional data, a ball tree for high-dimensional data and a plain
// scan for tiny inputs. All strategies return the same neighborhoods:
//
//	cfg.Algorithm = meanshift.AlgorithmBrute    // scan every point
//	cfg.Algorithm = meanshift.AlgorithmKDTree   // axis-aligned bounding boxes
//	cfg.Algorithm = meanshift.AlgorithmBallTree // bounding balls
//
// # Merge order
//
// The merge pass is greedy: a mode joins the first existing center closer
// than Config.MergeRadius and moves it halfway toward itself. Modes are merged
// in input order, so the output is reproducible for any number of workers,
// but permuting the input can change the final centers.
package meanshift
