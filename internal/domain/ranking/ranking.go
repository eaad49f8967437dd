// Package ranking orders best scores and assigns leaderboard ranks.
package ranking

import (
	"sort"

	"github.com/okian/playrank/internal/domain/model"
)

// MaxRank is the highest rank that appears on the leaderboard.
const MaxRank uint64 = 10

// Filter keeps the best scores of registered players and attaches their handle
// names. It returns the unranked rows and how many records were dropped.
func Filter(best model.BestScores, roster model.Roster) ([]model.RankedRow, int) {
	rows := make([]model.RankedRow, 0, len(best))
	dropped := 0
	for _, rec := range best {
		handle, ok := roster.Handle(rec.PlayerID)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, model.RankedRow{
			PlayerID:   rec.PlayerID,
			HandleName: handle,
			Score:      rec.Score,
		})
	}
	return rows, dropped
}

// Sort orders rows by score descending, then player id ascending.
func Sort(rows []model.RankedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}

// AssignRanks sets competition ranks on sorted rows and truncates the slice at
// the first row whose rank exceeds maxRank.
//
// A row scoring strictly below its predecessor takes its 1-based position as
// rank; an equal score inherits the predecessor's rank. Scores [100 100 90]
// therefore rank [1 1 3].
func AssignRanks(rows []model.RankedRow, maxRank uint64) []model.RankedRow {
	var rank uint64 = 1
	for i := range rows {
		if i > 0 && rows[i].Score < rows[i-1].Score {
			rank = uint64(i) + 1
		}
		if rank > maxRank {
			return rows[:i]
		}
		rows[i].Rank = rank
	}
	return rows
}

// Rank produces the leaderboard from best scores and the roster: unregistered
// players are dropped, the rest are sorted and ranked, and ranks above MaxRank
// are cut off. It also returns how many unregistered players were dropped.
func Rank(best model.BestScores, roster model.Roster) ([]model.RankedRow, int) {
	rows, dropped := Filter(best, roster)
	Sort(rows)
	return AssignRanks(rows, MaxRank), dropped
}
