package docs

import (
	"strings"
	"testing"
)

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("All() returned no topics")
	}
	if topics[0].Name != "quickstart" {
		t.Errorf("first topic = %q, want %q", topics[0].Name, "quickstart")
	}
}

func TestAll_NoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Name == "" {
			t.Error("topic has empty Name")
		}
		if topic.Title == "" {
			t.Errorf("topic %q has empty Title", topic.Name)
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Name)
		}
		if topic.Content == "" {
			t.Errorf("topic %q has empty Content", topic.Name)
		}
	}
}

func TestGet_Found(t *testing.T) {
	topic, err := Get("quickstart")
	if err != nil {
		t.Fatalf("Get(quickstart) error: %v", err)
	}
	if topic.Name != "quickstart" {
		t.Errorf("Name = %q, want %q", topic.Name, "quickstart")
	}
}

func TestGet_CaseAndPrefix(t *testing.T) {
	for _, name := range []string{"PACKAGES", "pack", " Manifest "} {
		topic, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		if !strings.HasPrefix(topic.Name, strings.ToLower(strings.TrimSpace(name))) {
			t.Errorf("Get(%q) = %q", name, topic.Name)
		}
	}
}

func TestGet_NotFoundListsTopics(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Fatal("Get(nonexistent) should return error")
	}
	if !strings.Contains(err.Error(), "quickstart") || !strings.Contains(err.Error(), "manifest") {
		t.Errorf("error should list topic names: %v", err)
	}
}

func TestGet_AmbiguousPrefix(t *testing.T) {
	prev := topics
	topics = []Topic{{Name: "split"}, {Name: "splitting"}, {Name: "status"}}
	t.Cleanup(func() { topics = prev })

	if got, err := Get("split"); err != nil || got.Name != "split" {
		t.Fatalf("exact name should win: %q, %v", got.Name, err)
	}
	_, err := Get("s")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("got %v", err)
	}
}
