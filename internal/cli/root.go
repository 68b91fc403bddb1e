// Package cli provides the command-line interface for slack-news-checker-bot.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

type rootOptions struct {
	configFile string
	dryRun     bool
	// rawArgs is the untouched argv; everything but this command's own flags is echoed.
	rawArgs []string
}

func newRootCmd(rawArgs []string) *cobra.Command {
	opts := &rootOptions{rawArgs: rawArgs}

	cmd := &cobra.Command{
		Use:   "slack-news-checker-bot [args...]",
		Short: "Post a Google News digest to a chat channel",
		Long: "slack-news-checker-bot searches Google News for the configured query, " +
			"formats the matching articles as a digest and posts it to a Slack or Telegram channel. " +
			"Pass dry-run (or --dry-run) to print the digest without posting it. " +
			"Any other argument is ignored and echoed in the summary.",
		Version:            fmt.Sprintf("%s (%s)", Version, Commit),
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return checkAction(cmd, passthroughArgs(opts.rawArgs), opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: ./slack-news-checker-bot-config.yaml or ./config.yaml)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the digest without posting it")

	return cmd
}

// passthroughArgs drops --config/-c (with its value) and --dry-run from argv.
// Unknown flags stay, since pflag would otherwise swallow the word after them.
func passthroughArgs(raw []string) []string {
	args := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		a := raw[i]
		switch {
		case a == "--":
			return append(args, raw[i:]...)
		case a == "--config" || a == "-c":
			i++
		case strings.HasPrefix(a, "--config=") || (strings.HasPrefix(a, "-c") && !strings.HasPrefix(a, "--")):
		case a == "--dry-run" || strings.HasPrefix(a, "--dry-run="):
		default:
			args = append(args, a)
		}
	}
	return args
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(args)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	return 0
}
