package docs

import (
	"fmt"
	"strings"
)

// Topic is one documentation article shown by 'codesplit docs'.
type Topic struct {
	Name    string
	Title   string
	Summary string
	Content string
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get finds a topic by name, ignoring case. A unique prefix also selects a
// topic, so 'codesplit docs pack' shows packages.
func Get(name string) (Topic, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return Topic{}, fmt.Errorf("empty topic name, one of: %s", names())
	}
	var matches []Topic
	for _, t := range topics {
		if t.Name == want {
			return t, nil
		}
		if strings.HasPrefix(t.Name, want) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Topic{}, fmt.Errorf("unknown topic %q, one of: %s", name, names())
	}
	ambiguous := make([]string, len(matches))
	for i, t := range matches {
		ambiguous[i] = t.Name
	}
	return Topic{}, fmt.Errorf("topic %q is ambiguous: %s", name, strings.Join(ambiguous, ", "))
}

func names() string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Name
	}
	return strings.Join(out, ", ")
}
