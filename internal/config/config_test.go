package config_test

import (
	"context"
	"testing"

	"github.com/okian/playrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "playrank")
		})

		convey.Convey("Then the defaults should validate", func() {
			convey.So(cfg.Validate(context.Background()), convey.ShouldBeNil)
		})
	})
}
