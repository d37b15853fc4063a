package testutil

import (
	"io"
	"log/slog"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
