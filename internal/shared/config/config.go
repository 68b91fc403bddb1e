package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultProgramName = "slack-news-checker-bot"
	DefaultEnvPrefix   = "NEWS_CHECKER_"
	DefaultDotEnvFile  = ".env"

	DefaultSlackAPIURL    = "https://slack.com/api/chat.postMessage"
	DefaultTelegramAPIURL = "https://api.telegram.org"
	DefaultFeedBaseURL    = "https://news.google.com/rss/search"
	DefaultLanguage       = "ja"
	DefaultCountry        = "JP"
	DefaultWeekdayLabels  = "ja"
	DefaultHTTPTimeout    = 30
	DefaultUserAgent      = DefaultProgramName + "/1.0"
	DefaultLogLevel       = "warn"
	DefaultFeedOutFormat  = "rss"
)

// RequiredKeys are the keys every run needs; absence of any of them is fatal.
var RequiredKeys = []string{"token", "post_channel_id", "q_word", "q_days", "tz_hours"}

var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

type Config struct {
	Token          string       `koanf:"token"`
	PostChannelID  string       `koanf:"post_channel_id"`
	QueryWord      string       `koanf:"q_word"`
	QueryDays      int          `koanf:"q_days"`
	TZHours        float64      `koanf:"tz_hours"`
	Notifier       NotifierKind `koanf:"notifier"`
	SlackAPIURL    string       `koanf:"slack_api_url"`
	TelegramAPIURL string       `koanf:"telegram_api_url"`
	FeedBaseURL    string       `koanf:"feed_base_url"`
	Language       string       `koanf:"locale_language"`
	Country        string       `koanf:"locale_country"`
	WeekdayLabels  string       `koanf:"weekday_labels"`
	HTTPTimeout    int          `koanf:"http_timeout"`
	UserAgent      string       `koanf:"user_agent"`
	LogLevel       string       `koanf:"log_level"`
	LogFile        string       `koanf:"log_file"`
	FeedOut        string       `koanf:"feed_out"`
	FeedOutFormat  string       `koanf:"feed_out_format"`
	AppEnv         AppEnv       `koanf:"app_env"`

	// ConfigFile is the file the values were read from, empty when only the environment was used.
	ConfigFile string `koanf:"-"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// File is an explicit config file. When empty, Dir is searched for
	// "<Program>-config.<ext>" and then "config.<ext>".
	File      string
	Dir       string
	Program   string
	DotEnv    string
	EnvPrefix string
}

// MissingFieldError lists required keys that no source provided.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", errors.ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldError) Unwrap() error {
	return errors.ErrMissingField
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Program == "" {
		o.Program = DefaultProgramName
	}
	if o.EnvPrefix == "" {
		o.EnvPrefix = DefaultEnvPrefix
	}
	if o.DotEnv == "" {
		o.DotEnv = filepath.Join(o.Dir, DefaultDotEnvFile)
	}
	return o
}

func Load(opts Options) (*Config, error) {
	opts = opts.withDefaults()
	k := koanf.New(".")

	configFile, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.In("config").With("config_file", configFile).Wrap(err)
		}
	}

	// .env values sit between the config file and the real environment
	if err := loadDotEnv(k, opts.DotEnv, opts.EnvPrefix); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(opts.EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, opts.EnvPrefix))
	}), nil); err != nil {
		return nil, oops.In("config").With("context", "loading environment variables").Wrap(err)
	}

	if missing := missingKeys(k); len(missing) > 0 {
		return nil, oops.In("config").
			Code("config_missing_field").
			With("fields", missing, "config_file", configFile).
			Wrap(&MissingFieldError{Fields: missing})
	}

	if !isWholeNumber(k.Get("q_days")) {
		return nil, oops.In("config").
			Code("config_invalid").
			With("config_file", configFile).
			Wrap(fmt.Errorf("%w: q_days must be a whole number of days, got %v", errors.ErrInvalidConfig, k.Get("q_days")))
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.In("config").With("context", "unmarshaling config").Wrap(err)
	}
	cfg.ConfigFile = configFile

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if err := cfg.normalize(); err != nil {
		return nil, oops.In("config").
			Code("config_invalid").
			With("config_file", configFile).
			Wrap(err)
	}

	return &cfg, nil
}

// Timeout returns the HTTP timeout used for both the feed and the messaging API.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// SlogLevel maps log_level onto slog; normalize already rejected unknown names.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func (c *Config) normalize() error {
	c.Token = strings.TrimSpace(c.Token)
	c.PostChannelID = strings.TrimSpace(c.PostChannelID)

	if c.QueryDays < 0 {
		return fmt.Errorf("%w: q_days must not be negative, got %d", errors.ErrInvalidConfig, c.QueryDays)
	}
	if c.QueryDays == 0 {
		c.QueryDays = 1
	}
	if c.TZHours <= -24 || c.TZHours >= 24 {
		return fmt.Errorf("%w: tz_hours out of range: %v", errors.ErrInvalidConfig, c.TZHours)
	}

	kind, err := ParseNotifierKind(string(c.Notifier))
	if err != nil {
		return fmt.Errorf("%w: notifier: %w", errors.ErrInvalidConfig, err)
	}
	c.Notifier = kind

	c.WeekdayLabels = strings.ToLower(strings.TrimSpace(c.WeekdayLabels))
	if !lo.Contains([]string{"ja", "en"}, c.WeekdayLabels) {
		return fmt.Errorf("%w: weekday_labels must be ja or en, got %q", errors.ErrInvalidConfig, c.WeekdayLabels)
	}

	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level: %w", errors.ErrInvalidConfig, err)
	}

	c.FeedOutFormat = strings.ToLower(strings.TrimSpace(c.FeedOutFormat))
	if !lo.Contains([]string{"rss", "atom", "json"}, c.FeedOutFormat) {
		return fmt.Errorf("%w: feed_out_format must be rss, atom or json, got %q", errors.ErrInvalidConfig, c.FeedOutFormat)
	}

	return nil
}

func resolveConfigFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", oops.In("config").
				Code("config_not_found").
				With("config_file", opts.File).
				Wrap(fmt.Errorf("%w: %s", errors.ErrConfigNotFound, opts.File))
		}
		return opts.File, nil
	}

	candidates := lo.FlatMap([]string{opts.Program + "-config", "config"}, func(base string, _ int) []string {
		return lo.Map(configExtensions, func(ext string, _ int) string {
			return filepath.Join(opts.Dir, base+ext)
		})
	})

	configFile, _ := lo.Find(candidates, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	})
	return configFile, nil
}

func parserFor(configFile string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.In("config").With("config_file", configFile).Errorf("unsupported config file extension: %s", ext)
	}
}

func loadDotEnv(k *koanf.Koanf, path, prefix string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return oops.In("config").With("dotenv", path).Wrap(err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return oops.In("config").With("dotenv", path, "context", "parsing .env file").Wrap(err)
	}

	for key, val := range values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := k.Set(strings.ToLower(strings.TrimPrefix(key, prefix)), val); err != nil {
			return oops.In("config").With("dotenv", path, "key", key).Wrap(err)
		}
	}
	return nil
}

// isWholeNumber rejects values the weakly typed decoder would truncate, such as 1.5.
func isWholeNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == math.Trunc(n)
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case string:
		_, err := strconv.Atoi(n)
		return err == nil
	}
	return false
}

func missingKeys(k *koanf.Koanf) []string {
	return lo.Filter(RequiredKeys, func(key string, _ int) bool {
		v := k.Get(key)
		if v == nil {
			return true
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s) == ""
		}
		return false
	})
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"notifier":         string(NotifierKindSlack),
		"slack_api_url":    DefaultSlackAPIURL,
		"telegram_api_url": DefaultTelegramAPIURL,
		"feed_base_url":    DefaultFeedBaseURL,
		"locale_language":  DefaultLanguage,
		"locale_country":   DefaultCountry,
		"weekday_labels":   DefaultWeekdayLabels,
		"http_timeout":     DefaultHTTPTimeout,
		"user_agent":       DefaultUserAgent,
		"log_level":        DefaultLogLevel,
		"feed_out_format":  DefaultFeedOutFormat,
		"app_env":          string(AppEnvProduction),
	}
	for key, val := range defaults {
		if !k.Exists(key) {
			k.Set(key, val)
		}
	}
}
