package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/docdyhr/pigame/internal/model"
)

func record(digits int, elapsed float64, success bool) model.SessionRecord {
	return model.SessionRecord{
		Timestamp:      time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC),
		Mode:           model.ModeStandard,
		Digits:         digits,
		ElapsedSeconds: elapsed,
		Errors:         0,
		Success:        success,
	}
}

func TestSpeed(t *testing.T) {
	if got := Speed(30, 60); got != 30 {
		t.Fatalf("expected 30 digits/min, got %g", got)
	}
	if got := Speed(10, 0); got != 0 {
		t.Fatalf("zero elapsed must give zero speed, got %g", got)
	}
	if got := Speed(10, -1); got != 0 {
		t.Fatalf("negative elapsed must give zero speed, got %g", got)
	}
}

func TestAggregate(t *testing.T) {
	records := []model.SessionRecord{
		record(12, 60, false),
		record(20, 30, true), // 40 digits/min
		record(8, 10, false), // 48 digits/min
	}
	agg := Aggregate(records)
	if agg.SessionCount != 3 {
		t.Fatalf("expected 3 sessions, got %d", agg.SessionCount)
	}
	if agg.BestDigits != 20 {
		t.Fatalf("expected best 20 digits, got %d", agg.BestDigits)
	}
	if agg.BestSpeed != 48 {
		t.Fatalf("expected best speed 48, got %g", agg.BestSpeed)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	if agg.SessionCount != 0 || agg.BestDigits != 0 || agg.BestSpeed != 0 {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
}

func TestAggregateIsStable(t *testing.T) {
	records := []model.SessionRecord{record(12, 60, false)}
	first := Aggregate(records)
	second := Aggregate(records)
	if first != second {
		t.Fatalf("aggregate changed between reads: %+v vs %+v", first, second)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if s := Sparkline(nil); s != "" {
		t.Fatalf("expected empty sparkline, got %q", s)
	}
	s := Sparkline([]float64{1, 1, 1})
	if len(s) != 3 {
		t.Fatalf("expected 3 chars, got %q", s)
	}
	s = Sparkline([]float64{0, 10})
	if len(s) != 2 || s[0] == s[1] {
		t.Fatalf("expected distinct levels, got %q", s)
	}
}

func TestSparkSeriesIsSmoothedAndTrimmed(t *testing.T) {
	records := []model.SessionRecord{
		record(10, 60, false),
		record(20, 60, false),
		record(30, 60, true),
	}
	got := sparkSeries(records, 80)
	want := MovingAverage([]float64{10, 20, 30}, curveWindow)
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %g, want %g (series not smoothed)", i, got[i], want[i])
		}
	}
	// A raw series would start at 10; the rolling mean keeps it but changes
	// the later points.
	if got[1] != 15 || got[2] != 20 {
		t.Fatalf("expected rolling means 15 and 20, got %v", got)
	}

	trimmed := sparkSeries(records, 2)
	if len(trimmed) != 2 {
		t.Fatalf("expected trim to 2 points, got %d", len(trimmed))
	}
	if trimmed[0] != want[1] || trimmed[1] != want[2] {
		t.Fatalf("trim must keep the most recent points: %v", trimmed)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No practice sessions") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	records := []model.SessionRecord{record(12, 60, false), record(20, 30, true)}
	if err := Render(&buf, records, 80); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 2", "Best digits: 20", "Best speed: 40.0 digits/min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}
}
