package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes zerolog with the specified configuration.
// The CLI passes stderr so stdout stays free for the artifact pipeline.
func InitLogger(level string, format string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	} else {
		// JSON format
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Caller().
			Logger()
	}

	log.Logger = log.With().
		Str("service", "envreplace").
		Logger()
}

// ReplacerLogger creates a logger for a single file rewrite
func ReplacerLogger(file string, env string) zerolog.Logger {
	return log.With().
		Str("file", file).
		Str("env", env).
		Str("component", "replacer").
		Logger()
}

// CLILogger creates a logger for the command-line entry point
func CLILogger() zerolog.Logger {
	return log.With().
		Str("component", "cli").
		Logger()
}
