// Package render formats comparison results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docdyhr/pigame/internal/diff"
)

var (
	mismatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	underlineStyle = lipgloss.NewStyle().Underline(true)
)

// YourPi renders the user's digits, marking mismatches in red, or with an
// underline when the visual aid for color-blind users is on.
func YourPi(user string, res diff.Result, visualAid bool) string {
	style := mismatchStyle
	if visualAid {
		style = underlineStyle
	}
	var b strings.Builder
	for i, r := range []rune(user) {
		if i < len(res.Matches) && res.Matches[i] {
			b.WriteRune(r)
			continue
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// Results prints the evaluate outcome.
func Results(w io.Writer, reference, user string, decimals int, verbose, visualAid bool) error {
	res := diff.Compare(reference, user)
	if verbose {
		if _, err := fmt.Fprintf(w, "π with %d decimals:\t%s\n", decimals, reference); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Your version of π:\t%s\n", YourPi(user, res, visualAid)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Number of errors: %d\n", res.ErrorCount); err != nil {
			return err
		}
		if res.AllMatch {
			if decimals < 15 {
				_, err := fmt.Fprintln(w, "Well done.")
				return err
			}
			_, err := fmt.Fprintln(w, "Perfect!")
			return err
		}
		_, err := fmt.Fprintln(w, "You can do better!")
		return err
	}

	if _, err := fmt.Fprintln(w, YourPi(user, res, visualAid)); err != nil {
		return err
	}
	if res.AllMatch {
		_, err := fmt.Fprintln(w, "Match")
		return err
	}
	_, err := fmt.Fprintln(w, "No match")
	return err
}
