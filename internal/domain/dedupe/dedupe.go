// Package dedupe collapses play records into one best record per player.
package dedupe

import (
	"github.com/okian/playrank/internal/domain/model"
)

// Tracker keeps the best PlayRecord seen so far for each player.
//
// A record replaces the stored one only when its score is strictly greater,
// so among equal scores the first record observed is kept. Callers must feed
// records in input order for that rule to mean "first in the file".
type Tracker struct {
	best model.BestScores
}

// NewTracker creates an empty tracker with configuration options.
func NewTracker(opts ...Option) *Tracker {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracker{best: make(model.BestScores, cfg.capacityHint)}
}

// Observe records rec and reports whether it became the player's best.
func (t *Tracker) Observe(rec model.PlayRecord) bool {
	existing, ok := t.best[rec.PlayerID]
	if !ok {
		t.best[rec.PlayerID] = rec
		return true
	}
	if existing.Score < rec.Score {
		t.best[rec.PlayerID] = rec
		return true
	}
	return false
}

// Size returns the number of distinct players observed.
func (t *Tracker) Size() int {
	return len(t.best)
}

// Best returns the collected best scores. The tracker must not be used afterwards.
func (t *Tracker) Best() model.BestScores {
	return t.best
}

// Best collapses records, taken in slice order, into one best record per player.
func Best(records []model.PlayRecord) model.BestScores {
	t := NewTracker(WithCapacityHint(len(records)))
	for _, rec := range records {
		t.Observe(rec)
	}
	return t.Best()
}
