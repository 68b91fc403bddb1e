package di

import (
	"io"

	checkerService "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/checker/service"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/export"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/query"
	feedService "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/service"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/digest"
	messageService "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/service"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/config"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/httpclient"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/transport/slack"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container around an already loaded config.
// The run summary is written to out.
func Setup(cfg *config.Config, out io.Writer) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, out)

	// Register HTTP client shared by the feed fetcher and the Slack transport
	do.Provide(injector, func(i do.Injector) (httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.NewRestyClient(cfg.Timeout(), cfg.UserAgent), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(do.MustInvoke[httpclient.Client](i)), nil
	})

	// Register Notifier
	do.Provide(injector, func(i do.Injector) (messageService.Notifier, error) {
		cfg := do.MustInvoke[*config.Config](i)

		switch cfg.Notifier {
		case config.NotifierKindTelegram:
			n, err := telegram.New(cfg.Token, cfg.TelegramAPIURL, cfg.Timeout())
			if err != nil {
				return nil, oops.With("context", "failed to create telegram notifier").Wrap(err)
			}
			return n, nil
		case config.NotifierKindSlack:
			return slack.New(do.MustInvoke[httpclient.Client](i), cfg.SlackAPIURL, cfg.Token), nil
		default:
			return nil, oops.With("notifier", cfg.Notifier).Errorf("unsupported notifier")
		}
	})

	// Register Message Service
	do.Provide(injector, func(i do.Injector) (*messageService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return messageService.New(do.MustInvoke[messageService.Notifier](i), cfg.PostChannelID), nil
	})

	// Register Provenance
	do.Provide(injector, func(i do.Injector) (digest.Provenance, error) {
		return digest.DetectProvenance(""), nil
	})

	// Register Checker
	do.Provide(injector, func(i do.Injector) (*checkerService.Runner, error) {
		cfg := do.MustInvoke[*config.Config](i)

		labels, err := digest.LabelsFor(cfg.WeekdayLabels)
		if err != nil {
			return nil, oops.With("weekday_labels", cfg.WeekdayLabels).Wrap(err)
		}

		settings := checkerService.Settings{
			Word:    cfg.QueryWord,
			Days:    cfg.QueryDays,
			TZHours: cfg.TZHours,
			Labels:  labels,
		}
		qb := query.NewBuilder(cfg.FeedBaseURL, query.Locale{Language: cfg.Language, Country: cfg.Country})

		runner := checkerService.New(
			settings,
			qb,
			do.MustInvoke[*feedService.Service](i),
			do.MustInvoke[*messageService.Service](i),
			do.MustInvoke[digest.Provenance](i),
			do.MustInvoke[io.Writer](i),
		)

		if cfg.FeedOut != "" {
			exporter, err := export.New(cfg.FeedOut, cfg.FeedOutFormat)
			if err != nil {
				return nil, oops.With("feed_out", cfg.FeedOut).Wrap(err)
			}
			runner.SetExporter(exporter)
		}

		return runner, nil
	})

	return injector
}
