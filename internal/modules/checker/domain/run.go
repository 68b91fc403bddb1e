package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Invocation is what the operator asked for on the command line
type Invocation struct {
	Args []string
	Mode Mode
}

// NewInvocation derives the mode from args. forceDryRun comes from the --dry-run flag.
func NewInvocation(args []string, forceDryRun bool) Invocation {
	mode := ModeFromArgs(args)
	if forceDryRun {
		mode = ModeDryRun
	}
	return Invocation{Args: args, Mode: mode}
}

// FormatArgs renders args the way the summary prints them: ['a', 'b'].
func FormatArgs(args []string) string {
	quoted := lo.Map(args, func(arg string, _ int) string {
		return "'" + strings.ReplaceAll(arg, "'", `\'`) + "'"
	})
	return fmt.Sprintf("[%s]", strings.Join(quoted, ", "))
}

// Report describes a finished run
type Report struct {
	Invocation Invocation
	URL        string
	Clause     string
	Entries    int
	Digest     string
	Delivered  bool
}
