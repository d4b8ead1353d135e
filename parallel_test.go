package meanshift

import (
	"errors"
	"sync"
	"testing"
)

func TestRefineParallel_MatchesSequentialBitwise(t *testing.T) {
	points := generateBlobs(3, 50, 2, 1.0, 42)
	cfg := seekerConfig(1.5, 4, 200, 1e-8)
	s := mustSeeker(t, points, cfg)

	sequential, err := RefineParallel(s, points, 1)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	if len(sequential) != len(points) {
		t.Fatalf("got %d modes, want %d", len(sequential), len(points))
	}

	for _, workers := range []int{2, 3, 4, 8, 64} {
		parallel, err := RefineParallel(s, points, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: length mismatch %d != %d", workers, len(parallel), len(sequential))
		}
		for i := range sequential {
			if parallel[i].Origin != i {
				t.Fatalf("workers=%d: mode %d has Origin %d", workers, i, parallel[i].Origin)
			}
			for j := range sequential[i].Coords {
				if parallel[i].Coords[j] != sequential[i].Coords[j] {
					t.Errorf("workers=%d: mode[%d][%d] = %v, expected %v (bitwise)",
						workers, i, j, parallel[i].Coords[j], sequential[i].Coords[j])
				}
			}
		}
	}
}

func TestRefineParallel_SinglePoint(t *testing.T) {
	points := []Point{NewPoint("only", 5, 5)}
	s := mustSeeker(t, points, seekerConfig(1, 5, 50, 1e-6))

	modes, err := RefineParallel(s, points, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modes) != 1 {
		t.Fatalf("expected 1 mode, got %d", len(modes))
	}
	if modes[0].Coords[0] != 5 || modes[0].Coords[1] != 5 {
		t.Errorf("mode = %v, want [5 5]", modes[0].Coords)
	}
}

func TestRefineParallel_MoreWorkersThanPoints(t *testing.T) {
	points := []Point{NewPoint("a", 0), NewPoint("b", 10), NewPoint("c", 20)}
	s := mustSeeker(t, points, seekerConfig(1, 2, 50, 1e-6))

	modes, err := RefineParallel(s, points, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modes) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(modes))
	}
	for i, m := range modes {
		if m.Coords[0] != points[i].Coords[0] {
			t.Errorf("mode %d = %v, want %v", i, m.Coords, points[i].Coords)
		}
	}
}

func TestRefineParallel_DimensionMismatchAbortsRun(t *testing.T) {
	// Bypass validation to simulate corrupt shared input.
	points := []Point{
		NewPoint("a", 0, 0),
		NewPoint("b", 1, 0),
		NewPoint("bad", 1, 2, 3),
		NewPoint("c", 2, 0),
	}
	cfg := seekerConfig(1, 5, 10, 1e-6)
	s := newModeSeeker(points, NewBruteForceIndex(points), 2, cfg)

	for _, workers := range []int{1, 2, 4} {
		modes, err := RefineParallel(s, points, workers)
		var dm *ErrDimensionMismatch
		if !errors.As(err, &dm) {
			t.Fatalf("workers=%d: expected *ErrDimensionMismatch, got %v", workers, err)
		}
		if modes != nil {
			t.Errorf("workers=%d: expected no modes on abort, got %d", workers, len(modes))
		}
	}
}

func TestModeCollection_ConcurrentAdd(t *testing.T) {
	c := &modeCollection{}
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.add(Mode{Point: NewPoint("p", float64(i)), Origin: 99 - i})
		}(i)
	}
	wg.Wait()

	modes := c.byOrigin()
	if len(modes) != 100 {
		t.Fatalf("expected 100 modes, got %d", len(modes))
	}
	for i, m := range modes {
		if m.Origin != i {
			t.Fatalf("modes not ordered by origin at %d: %d", i, m.Origin)
		}
		if m.Coords[0] != float64(99-i) {
			t.Errorf("mode %d carries wrong point %v", i, m.Coords)
		}
	}
}
