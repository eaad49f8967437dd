package model_test

import (
	"sort"
	"testing"

	model "github.com/okian/playrank/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestRoster(t *testing.T) {
	convey.Convey("Given roster entries", t, func() {
		entries := []model.RosterEntry{
			{PlayerID: "p1", HandleName: "Alice"},
			{PlayerID: "p2", HandleName: "Bob"},
		}

		convey.Convey("When building a roster", func() {
			r := model.NewRoster(entries)

			convey.Convey("Then every player should be registered", func() {
				convey.So(len(r), convey.ShouldEqual, 2)
				h, ok := r.Handle("p1")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(h, convey.ShouldEqual, "Alice")
			})

			convey.Convey("Then an unknown player should not be registered", func() {
				_, ok := r.Handle("p9")
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the same player appears twice", func() {
			entries = append(entries, model.RosterEntry{PlayerID: "p1", HandleName: "Alicia"})
			r := model.NewRoster(entries)

			convey.Convey("Then the last occurrence should win", func() {
				convey.So(len(r), convey.ShouldEqual, 2)
				h, _ := r.Handle("p1")
				convey.So(h, convey.ShouldEqual, "Alicia")
			})
		})
	})
}

func TestBestScores(t *testing.T) {
	convey.Convey("Given best scores", t, func() {
		best := model.BestScores{
			"p1": {CreatedAt: "t1", PlayerID: "p1", Score: 50},
			"p2": {CreatedAt: "t2", PlayerID: "p2", Score: 90},
		}

		convey.Convey("When listing records", func() {
			recs := best.Records()
			sort.Slice(recs, func(i, j int) bool { return recs[i].PlayerID < recs[j].PlayerID })

			convey.Convey("Then each player should appear once", func() {
				convey.So(len(recs), convey.ShouldEqual, 2)
				convey.So(recs[0].Score, convey.ShouldEqual, 50)
				convey.So(recs[1].Score, convey.ShouldEqual, 90)
			})
		})
	})
}

func TestRankedRow(t *testing.T) {
	convey.Convey("Given a ranked row", t, func() {
		row := model.RankedRow{Rank: 3, PlayerID: "p1", HandleName: "Alice", Score: 50}

		convey.Convey("Then it should render as a comma-separated line", func() {
			convey.So(row.String(), convey.ShouldEqual, "3,p1,Alice,50")
		})
	})

	convey.Convey("Given a zero row", t, func() {
		row := model.RankedRow{}

		convey.Convey("Then it should render zeros and empty fields", func() {
			convey.So(row.String(), convey.ShouldEqual, "0,,,0")
		})
	})
}
