//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Mode decides whether a run posts the digest or only prints it
// ENUM(normal,dry-run)
type Mode string

// ModeFromArgs returns ModeDryRun when any argument is "dry-run", ignoring case.
// Every other argument is ignored.
func ModeFromArgs(args []string) Mode {
	if lo.ContainsBy(args, func(arg string) bool {
		return strings.EqualFold(arg, string(ModeDryRun))
	}) {
		return ModeDryRun
	}
	return ModeNormal
}
