// Package lines splits and joins newline-delimited text.
package lines

import "strings"

// Split breaks text on "\n". Trailing empty pieces are dropped, so text
// ending in a newline does not produce a phantom last line.
func Split(text string) []string {
	parts := strings.Split(text, "\n")
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

// Join terminates every line with "\n".
func Join(ls []string) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
