package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// initLogger installs the default slog logger, backed by charmbracelet/log.
// Verbose wins over suppress.
func initLogger(w io.Writer, verbose, suppress bool) *slog.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case suppress:
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "gogify",
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
