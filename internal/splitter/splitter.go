// Package splitter partitions a block of concatenated compilation units into
// one file per unit, laid out in directories that mirror the package name.
package splitter

import (
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/codesplit/internal/lines"
)

// DefaultExtension is appended to the declaration name to form a file name.
const DefaultExtension = ".java"

// FileSystem creates directories and writes whole files.
type FileSystem interface {
	MkdirAll(dir string) error
	WriteLines(path string, lines []string) error
}

// Console receives one line per written file and one per failed write.
type Console interface {
	Writing(fileName, dir string)
	WriteFailed(path string, err error)
}

// HeaderFunc returns the provenance block stamped at the top of each unit.
type HeaderFunc func(label string) string

// Unit is one compilation unit destined for one output file.
type Unit struct {
	Package  string // slash-separated, e.g. "com/example"
	FileName string // e.g. "Foo.java"
	Lines    []string
}

// Written describes a file produced by a split.
type Written struct {
	Path  string
	Lines int
}

// Failed describes a unit that could not be written.
type Failed struct {
	Path string
	Err  error
}

// Result is the outcome of a split. Root echoes the output root.
type Result struct {
	Root    string
	Written []Written
	Failed  []Failed
}

// Splitter turns source text into files. Names is required; FS and Console
// must be set before calling Split. An empty Extension means
// DefaultExtension and a nil Header stamps nothing.
type Splitter struct {
	Names     *NameMatcher
	Extension string
	Header    HeaderFunc
	FS        FileSystem
	Console   Console
}

// Split partitions text into units and writes each one under root. Write
// failures are reported to the console and recorded in the result; they do
// not stop the remaining units.
func (s *Splitter) Split(label, text, root string) *Result {
	res := &Result{Root: root}
	for _, u := range s.Units(text) {
		s.finalize(u, root, label, res)
	}
	return res
}

// Units runs the boundary state machine over text and returns every unit
// that has both a package and a declaration name, in input order.
func (s *Splitter) Units(text string) []Unit {
	ext := s.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	m := &machine{names: s.Names, ext: ext}
	for _, line := range lines.Split(text) {
		m.step(line)
	}
	m.flush()
	return m.units
}

// finalize prepends the header and hands the unit to the file system.
func (s *Splitter) finalize(u Unit, root, label string, res *Result) {
	dir := filepath.Join(root, filepath.FromSlash(u.Package))
	body := u.Lines
	if s.Header != nil {
		body = append([]string{strings.TrimSuffix(s.Header(label), "\n")}, body...)
	}
	path := filepath.Join(dir, u.FileName)

	s.Console.Writing(u.FileName, dir)
	if err := s.FS.MkdirAll(dir); err != nil {
		s.Console.WriteFailed(path, err)
		res.Failed = append(res.Failed, Failed{Path: path, Err: err})
		return
	}
	if err := s.FS.WriteLines(path, body); err != nil {
		s.Console.WriteFailed(path, err)
		res.Failed = append(res.Failed, Failed{Path: path, Err: err})
		return
	}
	res.Written = append(res.Written, Written{Path: path, Lines: len(body)})
}
