// Package service wires the leaderboard pipeline: read, dedupe, rank, render.
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/playrank/internal/adapters/report"
	"github.com/okian/playrank/internal/adapters/tabular"
	"github.com/okian/playrank/internal/domain/dedupe"
	"github.com/okian/playrank/internal/domain/model"
	"github.com/okian/playrank/internal/domain/ranking"
	"github.com/okian/playrank/pkg/logger"
	"github.com/okian/playrank/pkg/metrics"
)

// Run outcomes recorded in metrics.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Result is the outcome of one pipeline run.
type Result struct {
	RunID           string
	Rows            []model.RankedRow
	RosterPlayers   int
	PlayRecords     int
	DistinctPlayers int
	Unregistered    int
}

// Service runs the leaderboard pipeline.
type Service struct {
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for stage timings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDGenerator overrides how run ids are generated.
func WithRunIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a Service. Without WithLogger the global logger is used,
// so logger.Init must have been called.
func New(opts ...Option) *Service {
	s := &Service{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Run reads the roster and play log, keeps each player's best score and
// ranks registered players. Each input is read and closed before the next
// stage starts. Nothing is rendered; see Render.
func (s *Service) Run(ctx context.Context, rosterPath, playPath string) (*Result, error) {
	res := &Result{RunID: s.newID()}
	log := s.logger.With(logger.String("run_id", res.RunID))
	log.Info(ctx, "starting leaderboard run",
		logger.String("roster", rosterPath),
		logger.String("play_log", playPath),
	)

	err := s.run(ctx, log, res, rosterPath, playPath)
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
		// Reported by the caller.
		log.Debug(ctx, "leaderboard run failed", logger.Error(err))
	}
	metrics.RecordRun(outcome, float64(s.now().Unix()))
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "leaderboard run finished",
		logger.Int("rows", len(res.Rows)),
		logger.Int("distinct_players", res.DistinctPlayers),
		logger.Int("unregistered", res.Unregistered),
	)
	return res, nil
}

func (s *Service) run(ctx context.Context, log logger.Logger, res *Result, rosterPath, playPath string) error {
	var roster model.Roster
	var err error
	s.stage(ctx, log, metrics.StageReadRoster, func() {
		roster, err = tabular.ReadRoster(ctx, rosterPath)
	})
	if err != nil {
		metrics.RecordInputError(metrics.InputRoster)
		return err
	}
	res.RosterPlayers = len(roster)
	metrics.RecordRosterEntries(len(roster))

	var plays []model.PlayRecord
	s.stage(ctx, log, metrics.StageReadPlays, func() {
		plays, err = tabular.ReadPlays(ctx, playPath)
	})
	if err != nil {
		metrics.RecordInputError(metrics.InputPlayLog)
		return err
	}
	res.PlayRecords = len(plays)
	metrics.RecordPlayRecords(len(plays))

	var best model.BestScores
	s.stage(ctx, log, metrics.StageDedupe, func() {
		best = dedupe.Best(plays)
	})
	res.DistinctPlayers = len(best)
	// Every record beyond a player's first is folded into that player's best.
	metrics.RecordSuperseded(len(plays) - len(best))
	metrics.UpdateDistinctPlayers(res.DistinctPlayers)

	s.stage(ctx, log, metrics.StageRank, func() {
		res.Rows, res.Unregistered = ranking.Rank(best, roster)
	})
	metrics.RecordUnregisteredDropped(res.Unregistered)
	if len(res.Rows) > 0 {
		log.Debug(ctx, "leaderboard ranked",
			logger.String("leader", res.Rows[0].PlayerID),
			logger.Uint64("top_score", res.Rows[0].Score),
		)
	}
	return nil
}

// stage runs fn and records its duration.
func (s *Service) stage(ctx context.Context, log logger.Logger, name string, fn func()) {
	start := s.now()
	fn()
	elapsed := s.now().Sub(start)
	metrics.RecordStageDuration(name, float64(elapsed)/float64(time.Millisecond))
	log.Debug(ctx, "stage finished",
		logger.String("stage", name),
		logger.Duration("elapsed", elapsed),
	)
}

// Render writes the report for res to w.
func (s *Service) Render(ctx context.Context, w io.Writer, res *Result) error {
	if res == nil {
		return fmt.Errorf("render: nil result")
	}
	var err error
	s.stage(ctx, s.logger, metrics.StageRender, func() {
		err = report.Write(w, res.Rows)
	})
	if err != nil {
		return err
	}
	metrics.RecordRowsEmitted(len(res.Rows))
	return nil
}
