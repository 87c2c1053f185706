// Package matchers turns wildcard file patterns into compiled matchers.
//
// A wildcard becomes a fully anchored regular expression: '*' matches any
// run of characters, '?' matches exactly one, everything else is literal.
// Patterns are compiled once per package and reused for every file name.
package matchers

import (
	"regexp"
	"strings"
)

// WildcardToRegex converts a wildcard pattern into an anchored regular expression
func WildcardToRegex(pattern string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\?`, ".")
	escaped = strings.ReplaceAll(escaped, `\*`, ".*")
	return regexp.Compile("^" + escaped + "$")
}

// ExclusionSet is an immutable list of compiled exclusion patterns.
// A nil *ExclusionSet matches nothing.
type ExclusionSet struct {
	patterns []string
	compiled []*regexp.Regexp
}

// NewExclusionSet compiles every non-blank wildcard in patterns
func NewExclusionSet(patterns []string) (*ExclusionSet, error) {
	set := &ExclusionSet{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := WildcardToRegex(p)
		if err != nil {
			return nil, err
		}
		set.patterns = append(set.patterns, p)
		set.compiled = append(set.compiled, re)
	}
	return set, nil
}

// Matches reports whether fileName matches any pattern in the set
func (s *ExclusionSet) Matches(fileName string) bool {
	if s == nil {
		return false
	}
	for _, re := range s.compiled {
		if re.MatchString(fileName) {
			return true
		}
	}
	return false
}

// Filter returns the names that match no pattern, keeping their order
func (s *ExclusionSet) Filter(fileNames []string) []string {
	if s.Len() == 0 {
		return fileNames
	}
	kept := make([]string, 0, len(fileNames))
	for _, name := range fileNames {
		if !s.Matches(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

// Len returns the number of compiled patterns
func (s *ExclusionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.compiled)
}

// Patterns returns the source wildcards
func (s *ExclusionSet) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}
