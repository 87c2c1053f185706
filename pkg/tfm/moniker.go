// Package tfm picks the library folder of a NuGet package that best fits a
// requested target framework moniker (TFM).
//
// Folder names inside a package's lib directory are TFMs such as net45,
// net462 or netstandard2.0. BestMatch walks an ordered cascade of
// strategies, from an exact name match down to a three-letter prefix
// guess, and stops at the first strategy that finds anything. Within a
// strategy the candidate with the highest version string wins.
package tfm

import (
	"regexp"
	"strings"
)

var monikerPattern = regexp.MustCompile(`^([a-zA-Z]*)([0-9.]*)`)

// Moniker is a parsed target framework moniker
type Moniker struct {
	// Raw is the moniker as requested, trimmed
	Raw string
	// Base is the leading alphabetic part, e.g. "net" or "netstandard"
	Base string
	// Version is the digits and dots right after Base, possibly empty
	Version string
}

// Parse splits a moniker into its alphabetic base and version fragment.
// It reports false when there is no alphabetic base to match against.
func Parse(requested string) (Moniker, bool) {
	raw := strings.TrimSpace(requested)
	m := monikerPattern.FindStringSubmatch(raw)
	if m == nil || m[1] == "" {
		return Moniker{Raw: raw}, false
	}
	return Moniker{Raw: raw, Base: m[1], Version: m[2]}, true
}

// IsNetStandard reports whether the base is netstandard
func (m Moniker) IsNetStandard() bool {
	return strings.EqualFold(m.Base, netStandardBase)
}

func (m Moniker) String() string {
	return m.Raw
}
