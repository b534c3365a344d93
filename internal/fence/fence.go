// Package fence pulls source code out of markdown code fences in LLM
// responses.
package fence

import (
	"regexp"
	"strings"
)

// Block is one fenced code block.
type Block struct {
	Lang    string // info string word, e.g. "java"; empty when absent
	Content string // content between the fences
}

var fenceOpenRe = regexp.MustCompile("^```([\\w+#.-]*)")

// Parse extracts fenced code blocks from text in order of appearance. It
// recognizes opening fences like:
//
//	```java
//	```
//	```java title="Foo.java"
//
// A non-empty block left open at the end of text is kept.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block
	var current *Block
	var body []string

	for _, line := range lines {
		if current != nil {
			// Inside a block, look for the closing fence
			if strings.TrimSpace(line) == "```" {
				current.Content = strings.Join(body, "\n")
				blocks = append(blocks, *current)
				current = nil
				body = nil
				continue
			}
			body = append(body, line)
			continue
		}

		m := fenceOpenRe.FindStringSubmatch(strings.TrimSpace(line))
		if m != nil {
			current = &Block{Lang: m[1]}
			body = nil
		}
	}

	if current != nil && len(body) > 0 {
		current.Content = strings.Join(body, "\n")
		blocks = append(blocks, *current)
	}
	return blocks
}

// Code returns the contents of every fenced block joined by newlines, or
// text itself when it has no fences. When langs is non-empty only blocks
// with one of those languages (or no language) are kept.
func Code(text string, langs ...string) string {
	blocks := Parse(text)
	if len(blocks) == 0 {
		return text
	}
	var b strings.Builder
	for _, blk := range blocks {
		if !wanted(blk.Lang, langs) {
			continue
		}
		b.WriteString(blk.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

func wanted(lang string, langs []string) bool {
	if len(langs) == 0 || lang == "" {
		return true
	}
	for _, l := range langs {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}
