package logging

import (
	"io"
	"log/slog"
	"os"
)

//go:generate mockgen -source=stdout_logger.go -destination=../../../gen/mocks/logging/logger.go -package=mocks

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var (
	StdoutLogger  = slog.New(slog.NewTextHandler(os.Stdout, nil))
	DiscardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)
