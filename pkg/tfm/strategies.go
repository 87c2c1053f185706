package tfm

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	netStandardBase = "netstandard"

	// versionFragment is the digits-and-dots tail of a framework folder name
	versionFragment = `([0-9.]*)`

	// requiredVersionFragment is versionFragment with at least one character
	requiredVersionFragment = `([0-9.]+)`

	// noVersion stands in for a candidate without a version fragment
	noVersion = "0"
)

// Candidate is a folder accepted by a strategy together with the version
// fragment extracted from its name
type Candidate struct {
	Path    string
	Version string
}

// Strategy is one level of the matching cascade. Find is pure: it only
// looks at the base names of the supplied paths.
type Strategy struct {
	Name string
	Find func(m Moniker, folders []string) []Candidate
}

// Cascade returns the strategies in the order BestMatch tries them
func Cascade() []Strategy {
	return []Strategy{
		{Name: "exact", Find: exactMatch},
		{Name: "lenient", Find: lenientMatch},
		{Name: "netstandard", Find: netStandardMatch},
		{Name: "base", Find: baseMatch},
		{Name: "substring", Find: substringMatch},
		{Name: "prefix", Find: prefixMatch},
	}
}

// exactMatch accepts the first folder named exactly like the moniker
func exactMatch(m Moniker, folders []string) []Candidate {
	for _, folder := range folders {
		if strings.EqualFold(folderName(folder), m.Raw) {
			return []Candidate{{Path: folder, Version: m.Version}}
		}
	}
	return nil
}

// lenientMatch accepts net451 and net452 for net45
func lenientMatch(m Moniker, folders []string) []Candidate {
	re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(m.Raw) + versionFragment + `$`)
	return collect(re, folders)
}

// netStandardMatch lets a netcoreapp or net5+ request consume a
// netstandard build
func netStandardMatch(m Moniker, folders []string) []Candidate {
	if m.IsNetStandard() {
		return nil
	}
	re := regexp.MustCompile(`(?i)^` + netStandardBase + versionFragment + `$`)
	return collect(re, folders)
}

// baseMatch keeps the alphabetic base and tolerates extra letters, so net
// also accepts netcore45 style names
func baseMatch(m Moniker, folders []string) []Candidate {
	re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(m.Base) + `[a-z]*` + versionFragment + `$`)
	return collect(re, folders)
}

// substringMatch finds the base followed by a version anywhere in the name,
// e.g. portable-net45+win8 for net
func substringMatch(m Moniker, folders []string) []Candidate {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(m.Base) + requiredVersionFragment)
	return collect(re, folders)
}

// prefixMatch is the last resort: the first three letters of the base
// followed by a version anywhere in the name
func prefixMatch(m Moniker, folders []string) []Candidate {
	if len(m.Base) < 3 {
		return nil
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(m.Base[:3]) + requiredVersionFragment)
	return collect(re, folders)
}

// collect runs re against every folder name; the last capture group is the
// version fragment
func collect(re *regexp.Regexp, folders []string) []Candidate {
	var found []Candidate
	for _, folder := range folders {
		sub := re.FindStringSubmatch(folderName(folder))
		if sub == nil {
			continue
		}
		version := sub[len(sub)-1]
		if version == "" {
			version = noVersion
		}
		found = append(found, Candidate{Path: folder, Version: version})
	}
	return found
}

func folderName(path string) string {
	return filepath.Base(strings.TrimRight(path, `/\`))
}
