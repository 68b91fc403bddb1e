package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/config"
	slogmulti "github.com/samber/slog-multi"
)

// setupLogging installs the default logger: text on stderr at the configured
// level, plus JSON lines in log_file when one is set. Stdout stays reserved for the digest.
func setupLogging(cfg *config.Config, stderr io.Writer) (func(), error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}),
	}

	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = func() { f.Close() }
	}

	logger := slog.New(slogmulti.Fanout(handlers...)).With("app_env", cfg.AppEnv.String())
	slog.SetDefault(logger)
	return closeFn, nil
}
