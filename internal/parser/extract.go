// Package parser mines unstructured help text for command-line flags.
//
// Help-text formats are not standardized across tools, so this is a
// best-effort line scanner rather than a grammar. The rules below encode
// tuning decisions that are load-bearing: change them and `git --help`,
// coreutils output and man pages start parsing differently.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/studiowebux/flagpick/internal/types"
)

// ErrNoFlagsFound is returned when text was obtained but nothing in it
// looked like an option listing. Distinct from acquisition failure: we got
// something back, it just wasn't flags.
var ErrNoFlagsFound = errors.New("help text contains no recognizable flags")

// minDescriptionLen rejects descriptions shorter than this as noise
const minDescriptionLen = 2

// flagLinePattern matches one option line: leading whitespace, then either a
// short token optionally followed by a long token, or a bare long token,
// then the rest of the line as description.
var flagLinePattern = regexp.MustCompile(
	`(?m)^\s+(?:(?P<short>-[a-zA-Z0-9?])(?:,?\s+(?P<long>--[a-zA-Z0-9\-_]+))?|(?P<long_only>--[a-zA-Z0-9\-_]+))\s+(?P<desc>.+)$`)

var (
	shortIdx    = flagLinePattern.SubexpIndex("short")
	longIdx     = flagLinePattern.SubexpIndex("long")
	longOnlyIdx = flagLinePattern.SubexpIndex("long_only")
	descIdx     = flagLinePattern.SubexpIndex("desc")
)

// Extract scans raw help text and returns the flags it describes, in source
// order. Each accepted line yields exactly one flag; a flag repeated across
// sections (a "Common options" block and a command-specific one, say) is
// kept once per line, not deduplicated.
func Extract(raw string) ([]types.Flag, error) {
	var flags []types.Flag

	for _, match := range flagLinePattern.FindAllStringSubmatch(raw, -1) {
		short := match[shortIdx]
		long := match[longIdx]
		if long == "" {
			long = match[longOnlyIdx]
		}
		desc := strings.TrimSpace(match[descIdx])

		if short == "" && long == "" {
			continue
		}
		if short != "" && !strings.HasPrefix(short, "-") {
			continue
		}
		if long != "" && !strings.HasPrefix(long, "--") {
			continue
		}
		if len(desc) < minDescriptionLen {
			continue
		}

		flags = append(flags, types.Flag{
			Short:       short,
			Long:        long,
			Description: desc,
		})
	}

	if len(flags) == 0 {
		return nil, ErrNoFlagsFound
	}

	return flags, nil
}
