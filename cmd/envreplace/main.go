package main

import (
	"os"

	"github.com/crossroads/envreplace/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger := logging.CLILogger()
		logger.Error().Err(err).Msg("Replacement failed")
		os.Exit(1)
	}
}
