// Package stats computes history aggregates and renders the stats report.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docdyhr/pigame/internal/model"
)

const sparkChars = " .:-=+*#%@"

// curveWindow smooths the per-session sparkline in the report.
const curveWindow = 5

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Speed returns digits per minute; zero when elapsed time is not positive.
func Speed(digits int, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return float64(digits) / (elapsedSeconds / 60.0)
}

// Aggregate folds the session history into its summary.
func Aggregate(records []model.SessionRecord) model.StatsAggregate {
	agg := model.StatsAggregate{SessionCount: len(records)}
	for _, r := range records {
		if r.Digits > agg.BestDigits {
			agg.BestDigits = r.Digits
		}
		if speed := Speed(r.Digits, r.ElapsedSeconds); speed > agg.BestSpeed {
			agg.BestSpeed = speed
		}
	}
	return agg
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Render writes the history report as plain text sized to width columns.
func Render(w io.Writer, records []model.SessionRecord, width int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No practice sessions recorded yet.")
		return err
	}
	agg := Aggregate(records)
	if _, err := fmt.Fprintln(w, titleStyle.Render("Practice stats")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", agg.SessionCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best digits: %d\n", agg.BestDigits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best speed: %.1f digits/min\n", agg.BestSpeed); err != nil {
		return err
	}
	last := records[len(records)-1]
	outcome := "failed"
	if last.Success {
		outcome = "success"
	}
	if _, err := fmt.Fprintf(w, "Last session: %s · %s · %d digits · %.1fs · %s\n",
		last.Timestamp.Format("2006-01-02 15:04"), last.Mode, last.Digits, last.ElapsedSeconds, outcome); err != nil {
		return err
	}

	values := sparkSeries(records, width)
	if _, err := fmt.Fprintf(w, "Digits per session:\n%s\n", dimStyle.Render(Sparkline(values))); err != nil {
		return err
	}
	return nil
}

// sparkSeries builds the smoothed digits-per-session series for the report,
// trimmed to at most width points.
func sparkSeries(records []model.SessionRecord, width int) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = float64(r.Digits)
	}
	values = MovingAverage(values, curveWindow)
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	return values
}
