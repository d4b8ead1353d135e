package meanshift

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLogger_LogRefine(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogRefine(100, 2, 4, AlgorithmKDTree, 350, 0, time.Millisecond)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	if rec["msg"] != "refinement completed" {
		t.Errorf("msg = %v", rec["msg"])
	}
	if rec["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", rec["level"])
	}
	if rec["points"] != float64(100) || rec["algorithm"] != "kdtree" {
		t.Errorf("unexpected fields: %v", rec)
	}
}

func TestLogger_LogRefineWarnsOnUnconverged(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.LogRefine(10, 2, 1, AlgorithmBrute, 3000, 3, time.Second)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "unconverged=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestLogger_LogMerge(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.LogMerge(40, 3, 0.5, time.Microsecond)

	out := buf.String()
	for _, want := range []string{"merge completed", "modes=40", "clusters=3", "merge_radius=0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNoopLogger_Discards(t *testing.T) {
	l := NoopLogger()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("NoopLogger should not be enabled at any level")
	}
}

func TestCluster_UsesConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	points, cfg := twoPairs()
	cfg.Logger = NewLogger(slog.NewTextHandler(&buf, nil))

	if _, err := Cluster(points, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "refinement completed") || !strings.Contains(out, "merge completed") {
		t.Errorf("expected refine and merge records, got %q", out)
	}
}
