package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/replaykit/sc2norm/internal/tablecfg"
	"github.com/replaykit/sc2norm/replay"
)

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func loadTables(path string) (*replay.Tables, error) {
	if path == "" {
		return replay.DefaultTables(), nil
	}
	return tablecfg.Load(path)
}
