package digits

import (
	"errors"
	"strings"
	"testing"
)

func TestDigitsKnownPrefix(t *testing.T) {
	got, err := Digits(20)
	if err != nil {
		t.Fatalf("digits: %v", err)
	}
	if got != "14159265358979323846" {
		t.Fatalf("unexpected first 20 decimals: %s", got)
	}
}

func TestDigitsLengthAndPrefixStability(t *testing.T) {
	for _, l := range []int{1, 2, 10, 99, 500, Max - 1} {
		cur, err := Digits(l)
		if err != nil {
			t.Fatalf("digits(%d): %v", l, err)
		}
		if len(cur) != l {
			t.Fatalf("digits(%d) has length %d", l, len(cur))
		}
		next, err := Digits(l + 1)
		if err != nil {
			t.Fatalf("digits(%d): %v", l+1, err)
		}
		if !strings.HasPrefix(next, cur) {
			t.Fatalf("digits(%d) is not a prefix of digits(%d)", l, l+1)
		}
	}
}

func TestDigitsOutOfRange(t *testing.T) {
	for _, l := range []int{0, -1, Max + 1} {
		if _, err := Digits(l); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("digits(%d): expected ErrOutOfRange, got %v", l, err)
		}
	}
}

func TestFormatted(t *testing.T) {
	got, err := Formatted(5)
	if err != nil {
		t.Fatalf("formatted: %v", err)
	}
	if got != "3.14159" {
		t.Fatalf("unexpected formatted value: %s", got)
	}
}

func TestTableSize(t *testing.T) {
	if Max != 1000 {
		t.Fatalf("expected 1000 verified decimals, got %d", Max)
	}
}
