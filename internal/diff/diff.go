// Package diff compares user input against reference digits.
package diff

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidInput reports input that is not a plain decimal number.
var ErrInvalidInput = errors.New("invalid input - NOT a float")

var floatShape = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ValidateInput checks that s has the shape of a decimal number such as "3.14159".
func ValidateInput(s string) error {
	if !floatShape.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return nil
}

// Result is the outcome of a batch comparison.
type Result struct {
	Matches    []bool // one entry per position of the user input
	ErrorCount int
	AllMatch   bool
}

// Compare diffs user against reference position by position. Positions past
// the end of the reference count as mismatches.
func Compare(reference, user string) Result {
	refRunes := []rune(reference)
	userRunes := []rune(user)
	res := Result{Matches: make([]bool, len(userRunes))}
	for i, r := range userRunes {
		if i < len(refRunes) && r == refRunes[i] {
			res.Matches[i] = true
			continue
		}
		res.ErrorCount++
	}
	res.AllMatch = reference == user
	return res
}

// StreamComparer checks characters one at a time against a reference sequence.
type StreamComparer struct {
	reference []rune
	pos       int
	errors    int
}

// NewStreamComparer builds a comparer over the reference sequence.
func NewStreamComparer(reference string) *StreamComparer {
	return &StreamComparer{reference: []rune(reference)}
}

// Next compares r with the next expected character. On a match the comparer
// advances; on a mismatch it stays in place and counts the error.
func (c *StreamComparer) Next(r rune) (ok bool, expected rune) {
	if c.pos >= len(c.reference) {
		c.errors++
		return false, 0
	}
	expected = c.reference[c.pos]
	if r == expected {
		c.pos++
		return true, expected
	}
	c.errors++
	return false, expected
}

// Position returns the number of characters matched so far.
func (c *StreamComparer) Position() int { return c.pos }

// Errors returns the running mismatch count.
func (c *StreamComparer) Errors() int { return c.errors }

// Remaining returns how many reference characters are left.
func (c *StreamComparer) Remaining() int { return len(c.reference) - c.pos }
