package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderCode is substituted for a missing parent code when composing
// a display ID, so the user sees where the real code belongs.
const PlaceholderCode = "XXXX"

// Suffix widths for the zero-padded sequential segment of display IDs.
const (
	ProjectSuffixWidth  = 3
	DocumentSuffixWidth = 2
)

// NextID is an advisory display-ID suggestion: the derived suffix and the
// full composed ID it yields.
type NextID struct {
	Suffix    string
	DisplayID string
}

// trailingNumber matches the decimal run after the final '-' separator.
var trailingNumber = regexp.MustCompile(`-(\d+)$`)

// NextSuffix derives the next sequential suffix from the display IDs of the
// existing siblings under one parent. It extracts the trailing digits after
// the final '-' of each ID, takes the maximum, and returns max+1 zero-padded
// to width. Malformed or missing IDs contribute no candidate; with no valid
// candidates the result is 1. Values that outgrow the width render longer
// than the nominal width rather than failing.
//
// The derivation reads a client-local snapshot, not a server-enforced
// sequence: two callers deriving for the same parent before either write
// lands can compute the same suffix. The unique constraint on display IDs
// rejects the loser; see the conflict mapping in the postgres adapter.
func NextSuffix(existing []string, width int) string {
	max := 0
	for _, id := range existing {
		m := trailingNumber.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%0*d", width, max+1)
}

// ComposeDisplayID joins a parent code, optional intermediate segments, and
// a suffix with '-' separators. A nil parent code becomes PlaceholderCode.
// An empty suffix still emits the trailing separator ("1000-"), signalling
// to the caller that the numeric segment is awaiting user input.
func ComposeDisplayID(parentCode *string, suffix string, extra ...string) string {
	code := PlaceholderCode
	if parentCode != nil && *parentCode != "" {
		code = *parentCode
	}

	segments := make([]string, 0, len(extra)+2)
	segments = append(segments, code)
	segments = append(segments, extra...)
	segments = append(segments, suffix)
	return strings.Join(segments, "-")
}
