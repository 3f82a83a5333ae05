package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger is the package logger. It stays at Info level until initLogger
// raises it from the settings.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// initLogger sets the log level from the verbosity setting. High verbosity
// enables debug output, low keeps only info and above.
func initLogger(settings *Settings) {
	level := zerolog.InfoLevel
	if settings.Verbosity == VerbosityHigh {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
	zerolog.SetGlobalLevel(level)
}
