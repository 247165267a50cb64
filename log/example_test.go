package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/hwsys/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
	)
	logger.Info("design loaded", slog.Int("instances", 2))

	// Output:
	// level=INFO msg="design loaded" instances=2
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
	)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("override shadows default", slog.String("parameter", "BASE"))

	// Output:
	// level=WARN msg="override shadows default" parameter=BASE
}
