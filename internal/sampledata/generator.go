// Package sampledata generates roster and play log files for manual runs and
// end-to-end tests.
package sampledata

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/okian/playrank/internal/domain/model"
	"github.com/okian/playrank/pkg/logger"
)

// TimestampLayout formats create_timestamp values.
const TimestampLayout = "2006/01/02 15:04"

// Score tiers. Each player draws a tier once and every play lands inside it,
// so repeated plays look like one player with some variance.
const (
	tierCount        = 8
	caseAverage      = 0
	caseHigh         = 1
	caseLow          = 2
	caseElite        = 3
	caseVeryLow      = 4
	caseMidHigh      = 5
	caseMidLow       = 6
	caseWideRange    = 7
	maxScore         = 10000
	handleNameFormat = "player_%04d"
)

type tier struct{ min, span uint64 }

var tiers = [tierCount]tier{ //nolint:gochecknoglobals // lookup table
	caseAverage:   {3000, 4000},
	caseHigh:      {7000, 2000},
	caseLow:       {100, 2900},
	caseElite:     {9000, 1000},
	caseVeryLow:   {0, 1000},
	caseMidHigh:   {6000, 2000},
	caseMidLow:    {2000, 2000},
	caseWideRange: {0, maxScore},
}

// Dataset is a generated roster and play log.
type Dataset struct {
	Roster []model.RosterEntry
	Plays  []model.PlayRecord
}

// Generate builds a Dataset from cfg. The output depends only on cfg.
func Generate(ctx context.Context, cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], cfg.Seed)
	src := rand.NewChaCha8(seed)
	rng := rand.New(src)

	extra := int(math.Round(float64(cfg.Players) * cfg.Unregistered))
	total := cfg.Players + extra

	logger.Get().Info(ctx, "generating sample data",
		logger.Int("players", cfg.Players),
		logger.Int("unregistered", extra),
		logger.Int("plays_per_player", cfg.PlaysPerPlayer),
	)

	ids := make([]string, total)
	for i := range ids {
		if cfg.UUIDs {
			id, err := uuid.NewRandomFromReader(src)
			if err != nil {
				return nil, fmt.Errorf("generate player id: %w", err)
			}
			ids[i] = id.String()
			continue
		}
		ids[i] = fmt.Sprintf("player%04d", i+1)
	}

	ds := &Dataset{
		Roster: make([]model.RosterEntry, 0, cfg.Players),
		Plays:  make([]model.PlayRecord, 0, total*cfg.PlaysPerPlayer),
	}
	for i := 0; i < cfg.Players; i++ {
		ds.Roster = append(ds.Roster, model.RosterEntry{PlayerID: ids[i], HandleName: fmt.Sprintf(handleNameFormat, i+1)})
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during generation: %w", err)
		}
		t := tiers[rng.IntN(tierCount)]
		for j := 0; j < cfg.PlaysPerPlayer; j++ {
			ds.Plays = append(ds.Plays, model.PlayRecord{PlayerID: id, Score: t.min + rng.Uint64N(t.span+1)})
		}
	}

	// Interleave players, then stamp in file order so timestamps never go backwards.
	rng.Shuffle(len(ds.Plays), func(i, j int) { ds.Plays[i], ds.Plays[j] = ds.Plays[j], ds.Plays[i] })
	for i := range ds.Plays {
		ds.Plays[i].CreatedAt = cfg.Start.Add(time.Duration(i) * cfg.Interval).Format(TimestampLayout)
	}

	logger.Get().Info(ctx, "generated sample data",
		logger.Int("roster_rows", len(ds.Roster)),
		logger.Int("play_records", len(ds.Plays)),
	)
	return ds, nil
}
