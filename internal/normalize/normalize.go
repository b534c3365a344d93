// Package normalize makes every public top-level declaration in a block of
// generated source sit under a package statement with a given name.
package normalize

import (
	"strings"

	"github.com/jorge-barreto/codesplit/internal/lines"
)

const (
	publicPrefix  = "public "
	packagePrefix = "package "
	closingPrefix = "}"
)

// Statement returns the package statement line for pkg.
func Statement(pkg string) string {
	return packagePrefix + pkg + ";"
}

// Normalize rewrites package lines that govern a public declaration to pkg,
// and inserts a package statement at the start of every unit that has a
// public declaration but no package line. Every line of the result ends in
// a newline.
func Normalize(text, pkg string) string {
	src := lines.Split(text)
	plan := scan(src, Statement(pkg))
	return lines.Join(plan.apply(src, Statement(pkg)))
}

// edits is the outcome of the backward scan: line indices to rewrite and
// indices before which a package statement is inserted.
type edits struct {
	rewrite map[int]bool
	insert  map[int]bool
}

func scan(src []string, stmt string) edits {
	e := edits{rewrite: make(map[int]bool), insert: make(map[int]bool)}
	for i, line := range src {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), publicPrefix) {
			continue
		}
		if at, ok := governingPackage(src, i); ok {
			if src[at] != stmt {
				e.rewrite[at] = true
			}
			continue
		}
		e.insert[unitStart(src, i)] = true
	}
	return e
}

// governingPackage walks back from decl to the previous unit boundary and
// reports the package line found on the way, if any.
func governingPackage(src []string, decl int) (int, bool) {
	for j := decl - 1; j >= 0 && !strings.HasPrefix(src[j], closingPrefix); j-- {
		if strings.HasPrefix(src[j], packagePrefix) {
			return j, true
		}
	}
	return 0, false
}

// unitStart is the index right after the closing brace preceding decl, or 0.
func unitStart(src []string, decl int) int {
	for j := decl - 1; j >= 0; j-- {
		if strings.HasPrefix(src[j], closingPrefix) {
			return j + 1
		}
	}
	return 0
}

func (e edits) apply(src []string, stmt string) []string {
	out := make([]string, 0, len(src)+2*len(e.insert))
	for i, line := range src {
		if e.insert[i] {
			out = append(out, "", stmt)
		}
		if e.rewrite[i] {
			line = stmt
		}
		out = append(out, line)
	}
	return out
}
