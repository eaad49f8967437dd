package sampledata

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/playrank/internal/adapters/tabular"
	"github.com/okian/playrank/internal/domain/model"
	"github.com/okian/playrank/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	_ = logger.SetLevelString("error")
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Players = 10
	cfg.PlaysPerPlayer = 3
	cfg.Unregistered = 0.2
	return cfg
}

func TestGenerate(t *testing.T) {
	Convey("Given a small generator config", t, func() {
		ctx := context.Background()
		cfg := smallConfig()

		Convey("When a dataset is generated", func() {
			ds, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the roster should hold only registered players", func() {
				So(ds.Roster, ShouldHaveLength, 10)
				So(ds.Roster[0], ShouldResemble, model.RosterEntry{PlayerID: "player0001", HandleName: "player_0001"})
			})

			Convey("And every player should have the configured number of plays", func() {
				So(ds.Plays, ShouldHaveLength, 12*3)
				counts := map[string]int{}
				for _, p := range ds.Plays {
					counts[p.PlayerID]++
				}
				So(counts, ShouldHaveLength, 12)
				for _, n := range counts {
					So(n, ShouldEqual, 3)
				}
			})

			Convey("And two players should be missing from the roster", func() {
				roster := model.NewRoster(ds.Roster)
				missing := map[string]bool{}
				for _, p := range ds.Plays {
					if _, ok := roster.Handle(p.PlayerID); !ok {
						missing[p.PlayerID] = true
					}
				}
				So(missing, ShouldHaveLength, 2)
			})

			Convey("And scores and timestamps should be well formed", func() {
				for i, p := range ds.Plays {
					So(p.Score, ShouldBeLessThanOrEqualTo, uint64(maxScore))
					if i > 0 {
						So(p.CreatedAt, ShouldBeGreaterThanOrEqualTo, ds.Plays[i-1].CreatedAt)
					}
				}
				So(ds.Plays[0].CreatedAt, ShouldEqual, "2021/01/01 12:00")
			})
		})

		Convey("When the same seed is used twice", func() {
			a, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)
			b, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the datasets should be identical", func() {
				So(a, ShouldResemble, b)
			})
		})

		Convey("When a different seed is used", func() {
			a, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)
			cfg.Seed = 42
			b, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the play logs should differ", func() {
				So(a.Plays, ShouldNotResemble, b.Plays)
			})
		})

		Convey("When uuid player ids are requested", func() {
			cfg.UUIDs = true
			ds, err := Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then every id should be a valid uuid", func() {
				for _, e := range ds.Roster {
					_, err := uuid.Parse(e.PlayerID)
					So(err, ShouldBeNil)
				}
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := Generate(cctx, cfg)

			Convey("Then generation should stop", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	Convey("Given invalid configs", t, func() {
		cases := map[string]func(*Config){
			"negative players":   func(c *Config) { c.Players = -1 },
			"negative plays":     func(c *Config) { c.PlaysPerPlayer = -1 },
			"fraction above one": func(c *Config) { c.Unregistered = 1.5 },
			"negative fraction":  func(c *Config) { c.Unregistered = -0.1 },
			"negative interval":  func(c *Config) { c.Interval = -1 },
		}
		for name, mutate := range cases {
			Convey("When the config has "+name, func() {
				cfg := DefaultConfig()
				mutate(&cfg)

				Convey("Then generation should be rejected", func() {
					_, err := Generate(context.Background(), cfg)
					So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
				})
			})
		}
	})

	Convey("Given the default config", t, func() {
		Convey("Then it should validate", func() {
			So(DefaultConfig().Validate(), ShouldBeNil)
		})
	})
}

func TestWriteRoundTrip(t *testing.T) {
	Convey("Given a generated dataset", t, func() {
		ctx := context.Background()
		ds, err := Generate(ctx, smallConfig())
		So(err, ShouldBeNil)
		dir := t.TempDir()

		for _, ext := range []string{".csv", ".tsv", ".xlsx"} {
			Convey("When it is written as "+ext, func() {
				rosterPath := filepath.Join(dir, "roster"+ext)
				playPath := filepath.Join(dir, "plays"+ext)
				So(ds.Write(rosterPath, playPath), ShouldBeNil)

				Convey("Then the readers should return the same records", func() {
					entries, err := tabular.ReadRosterEntries(ctx, rosterPath)
					So(err, ShouldBeNil)
					So(entries, ShouldResemble, ds.Roster)

					plays, err := tabular.ReadPlays(ctx, playPath)
					So(err, ShouldBeNil)
					So(plays, ShouldResemble, ds.Plays)
				})
			})
		}

		Convey("When the extension is not writable", func() {
			err := WriteRoster(filepath.Join(dir, "roster.xls"), ds.Roster)

			Convey("Then a write error should be returned", func() {
				So(errors.Is(err, ErrWriteFailed), ShouldBeTrue)
				So(errors.Is(err, tabular.ErrUnsupportedFormat), ShouldBeTrue)
			})
		})
	})
}
