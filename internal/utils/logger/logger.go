package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"peopledir/internal/app/server/config"
)

// New builds the process logger: human-readable text at Debug for local
// development, JSON otherwise (Debug for dev, Info for everything else).
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
