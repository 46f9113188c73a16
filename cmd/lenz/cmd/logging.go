package cmd

import (
	"log/slog"
	"strings"

	"github.com/corey/lenz/internal/app"
	"github.com/corey/lenz/internal/config"
	"github.com/corey/lenz/internal/logging"
)

// setupLogging enables the file log when --debug is set or the configured
// level is debug; otherwise records are discarded.
func setupLogging(cfg *config.Config, paths *app.Paths, debug bool) (*slog.Logger, func(), error) {
	level := strings.ToLower(cfg.Log.Level)
	if debug {
		level = "debug"
	}
	if level != "debug" {
		return logging.Discard(), func() {}, nil
	}

	file := cfg.Log.File
	if file == "" {
		if err := paths.EnsureDirs(); err != nil {
			return nil, nil, err
		}
		file = paths.LogFile
	}
	return logging.Setup(logging.Config{
		Level:      level,
		FilePath:   file,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
}
