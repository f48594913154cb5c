package tui

import "testing"

func TestGroupDigits(t *testing.T) {
	if got := groupDigits("141592653589793"); got != "1415926535 89793" {
		t.Fatalf("unexpected grouping: %q", got)
	}
	if got := groupDigits(""); got != "" {
		t.Fatalf("expected empty grouping, got %q", got)
	}
	if got := groupDigits("14159"); got != "14159" {
		t.Fatalf("short input must stay ungrouped: %q", got)
	}
}

func TestWrapLine(t *testing.T) {
	line := "3.1415926535 8979323846 2643383279"
	lines := wrapLine(line, 24)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "3.1415926535 8979323846" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "2643383279" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestWrapLineNoWidth(t *testing.T) {
	line := "3.1415926535 8979323846"
	lines := wrapLine(line, 0)
	if len(lines) != 1 || lines[0] != line {
		t.Fatalf("zero width must not wrap: %v", lines)
	}
}

func TestWrapLineNeverSplitsGroups(t *testing.T) {
	lines := wrapLine("1415926535 8979323846", 5)
	for _, l := range lines {
		if l == "" {
			t.Fatalf("empty wrapped line in %v", lines)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("expected one group per line, got %v", lines)
	}
}
