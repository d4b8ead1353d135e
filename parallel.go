package meanshift

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// modeCollection is an append-only set of modes shared by refinement workers.
// The lock is held for a single append, never across a refinement.
type modeCollection struct {
	mu    sync.Mutex
	modes []Mode
}

func (c *modeCollection) add(m Mode) {
	c.mu.Lock()
	c.modes = append(c.modes, m)
	c.mu.Unlock()
}

// byOrigin returns the collected modes ordered by input position, which
// removes any dependence on goroutine scheduling.
func (c *modeCollection) byOrigin() []Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := slices.Clone(c.modes)
	slices.SortFunc(out, func(a, b Mode) int { return cmp.Compare(a.Origin, b.Origin) })
	return out
}

// RefineParallel runs seeker.Seek from every point using numWorkers
// goroutines and returns one Mode per point, ordered by Origin.
//
// points is shared read-only by all workers. Each worker handles a contiguous
// range of starting points. If any refinement hits a dimension mismatch, the
// remaining ranges are abandoned and the error is returned with no modes.
// If numWorkers <= 1, refinement runs on the calling goroutine.
func RefineParallel(seeker *ModeSeeker, points []Point, numWorkers int) ([]Mode, error) {
	n := len(points)
	if numWorkers <= 1 || n <= 1 {
		return refineSequential(seeker, points)
	}

	out := &modeCollection{modes: make([]Mode, 0, n)}
	g, ctx := errgroup.WithContext(context.Background())

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		g.Go(func() error {
			for i := startRow; i < endRow; i++ {
				if ctx.Err() != nil {
					return nil
				}
				m, err := seekRecover(seeker, points[i])
				if err != nil {
					return err
				}
				m.Origin = i
				out.add(m)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out.byOrigin(), nil
}

func refineSequential(seeker *ModeSeeker, points []Point) ([]Mode, error) {
	modes := make([]Mode, 0, len(points))
	for i, p := range points {
		m, err := seekRecover(seeker, p)
		if err != nil {
			return nil, err
		}
		m.Origin = i
		modes = append(modes, m)
	}
	return modes, nil
}

// seekRecover turns a dimension-mismatch panic from point arithmetic into an
// error. Any other panic is a bug and is re-raised.
func seekRecover(seeker *ModeSeeker, start Point) (m Mode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				var dm *ErrDimensionMismatch
				if errors.As(e, &dm) {
					err = dm
					return
				}
			}
			panic(r)
		}
	}()
	return seeker.Seek(start), nil
}
