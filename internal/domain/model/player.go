// Package model contains domain models passed between pipeline stages.
package model

import "strconv"

// RosterEntry is one registered player.
type RosterEntry struct {
	PlayerID   string
	HandleName string
}

// Roster maps player_id to handle_name.
type Roster map[string]string

// NewRoster builds a Roster from entries in order. A later entry with the
// same PlayerID overwrites an earlier one.
func NewRoster(entries []RosterEntry) Roster {
	r := make(Roster, len(entries))
	for _, e := range entries {
		r[e.PlayerID] = e.HandleName
	}
	return r
}

// Handle returns the handle name for playerID and whether the player is registered.
func (r Roster) Handle(playerID string) (string, bool) {
	h, ok := r[playerID]
	return h, ok
}

// PlayRecord is one play attempt from the play log.
type PlayRecord struct {
	CreatedAt string // opaque, never parsed
	PlayerID  string
	Score     uint64
}

// BestScores maps player_id to the player's best PlayRecord.
type BestScores map[string]PlayRecord

// Records returns the best records in no particular order.
func (b BestScores) Records() []PlayRecord {
	out := make([]PlayRecord, 0, len(b))
	for _, rec := range b {
		out = append(out, rec)
	}
	return out
}

// RankedRow is one line of the leaderboard report.
type RankedRow struct {
	Rank       uint64
	PlayerID   string
	HandleName string
	Score      uint64
}

// String renders the row as rank,player_id,handle_name,score.
func (r RankedRow) String() string {
	return strconv.FormatUint(r.Rank, 10) + "," + r.PlayerID + "," + r.HandleName + "," + strconv.FormatUint(r.Score, 10)
}
