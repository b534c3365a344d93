package splitter

import (
	"fmt"
	"regexp"
)

// NameMatcher extracts a declaration name from a line using an ordered set
// of patterns. It is immutable after construction.
type NameMatcher struct {
	patterns []*regexp.Regexp
}

// NewNameMatcher compiles each pattern anchored at line start and requiring
// an opening brace at line end. Every pattern must have a capturing group;
// group 1 is the declaration name.
func NewNameMatcher(patterns []string) (*NameMatcher, error) {
	m := &NameMatcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for i, p := range patterns {
		re, err := regexp.Compile(`^(?:` + p + `).*\{$`)
		if err != nil {
			return nil, fmt.Errorf("pattern %d %q: %w", i+1, p, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("pattern %d %q: no capturing group for the declaration name", i+1, p)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// MustNameMatcher is like NewNameMatcher but panics on error.
func MustNameMatcher(patterns ...string) *NameMatcher {
	m, err := NewNameMatcher(patterns)
	if err != nil {
		panic(err)
	}
	return m
}

// Match returns the name captured by the first matching pattern.
func (m *NameMatcher) Match(line string) (string, bool) {
	for _, re := range m.patterns {
		sub := re.FindStringSubmatch(line)
		if sub == nil {
			continue
		}
		if sub[1] == "" {
			return "", false
		}
		return sub[1], true
	}
	return "", false
}
