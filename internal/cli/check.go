package cli

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/di"
	checkerDomain "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/checker/domain"
	checkerService "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/checker/service"
	messageDomain "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/config"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// failure tags an error with the stage that produced it.
type failure struct {
	what string
	err  error
}

func (f *failure) Error() string {
	return f.what + ": " + f.err.Error()
}

func (f *failure) Unwrap() error {
	return f.err
}

func checkAction(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := config.Load(config.Options{File: opts.configFile})
	if err != nil {
		return &failure{what: "config load failed", err: err}
	}

	closeLog, err := setupLogging(cfg, cmd.ErrOrStderr())
	if err != nil {
		return &failure{what: "log file open failed", err: err}
	}
	defer closeLog()

	slog.Debug("Config loaded", "config_file", cfg.ConfigFile, "notifier", cfg.Notifier, "app_env", cfg.AppEnv)

	runner, err := do.Invoke[*checkerService.Runner](di.Setup(cfg, cmd.OutOrStdout()))
	if err != nil {
		return &failure{what: "setup failed", err: err}
	}

	inv := checkerDomain.NewInvocation(args, opts.dryRun)
	if _, err := runner.Run(cmd.Context(), inv); err != nil {
		var refused *messageDomain.DeliveryError
		if stderrors.As(err, &refused) {
			return err
		}
		if stderrors.Is(err, errors.ErrDeliveryFailed) {
			return &failure{what: "delivery failed", err: err}
		}
		if stderrors.Is(err, errors.ErrFeedFetch) || stderrors.Is(err, errors.ErrFeedParse) || stderrors.Is(err, errors.ErrFeedMissingField) {
			return &failure{what: "feed fetch failed", err: err}
		}
		return &failure{what: "check failed", err: err}
	}
	return nil
}

// describe renders err as the single diagnostic line printed on stderr.
func describe(err error) string {
	var missing *config.MissingFieldError
	if stderrors.As(err, &missing) {
		return fmt.Sprintf("Error: %s. Desc: %s", errors.ErrMissingField, strings.Join(missing.Fields, ", "))
	}

	var refused *messageDomain.DeliveryError
	if stderrors.As(err, &refused) {
		return fmt.Sprintf("Error: %s failed. Desc: %s", refused.Method, refused.Description)
	}

	var f *failure
	if stderrors.As(err, &f) {
		return fmt.Sprintf("Error: %s. Desc: %s", f.what, f.err)
	}

	return fmt.Sprintf("Error: %s", err)
}
