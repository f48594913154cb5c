// Package difficulty derives the starting goal for a practice session.
package difficulty

import "github.com/docdyhr/pigame/internal/model"

// StartDigits returns the digit goal for a new session: the historical best,
// floored at MinDigits and capped at MaxDigits. Failed sessions never push
// the goal below the floor; any session that beat the old best raises it.
func StartDigits(agg model.StatsAggregate, cfg model.PracticeConfig) int {
	goal := cfg.MinDigits
	if agg.BestDigits > goal {
		goal = agg.BestDigits
	}
	if goal > cfg.MaxDigits {
		goal = cfg.MaxDigits
	}
	return goal
}
