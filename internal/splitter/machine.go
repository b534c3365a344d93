package splitter

import "strings"

const (
	packagePrefix = "package "
	closingPrefix = "}"
)

// State is the position of the splitter relative to the current unit.
type State int

const (
	// Idle: outside any unit region; ordinary lines are dropped.
	Idle State = iota
	// AwaitingName: a package line opened a region; lines are buffered
	// until a declaration name appears.
	AwaitingName
	// Buffering: the unit has a name; lines are buffered.
	Buffering
	// Sealed: the named unit's closing brace was seen; lines are dropped
	// until the next package line.
	Sealed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingName:
		return "awaiting-name"
	case Buffering:
		return "buffering"
	case Sealed:
		return "sealed"
	}
	return "unknown"
}

// LineKind classifies a line for the state machine.
type LineKind int

const (
	Other LineKind = iota
	PackageLine
	ClosingBrace
	NameDeclaration
)

// machine holds the state of one Units call.
type machine struct {
	names *NameMatcher
	ext   string

	state    State
	pkg      string
	hasPkg   bool
	fileName string
	buf      []string
	units    []Unit
}

// classify reports the kind of line. Names are only looked up while the
// current unit has none, and the found name is returned alongside.
func (m *machine) classify(line string) (LineKind, string) {
	switch {
	case strings.HasPrefix(line, packagePrefix):
		return PackageLine, ""
	case strings.HasPrefix(line, closingPrefix):
		return ClosingBrace, ""
	}
	if m.fileName == "" && m.names != nil {
		if name, ok := m.names.Match(line); ok {
			return NameDeclaration, name
		}
	}
	return Other, ""
}

func (m *machine) step(line string) {
	kind, name := m.classify(line)
	switch kind {
	case PackageLine:
		m.flush()
		m.pkg = PackagePath(line)
		m.hasPkg = true
		m.state = AwaitingName
		if m.fileName != "" {
			m.state = Buffering
		}
		m.buf = append(m.buf, line)
	case ClosingBrace:
		m.buf = append(m.buf, line)
		switch m.state {
		case AwaitingName:
			m.state = Idle
		case Buffering:
			m.state = Sealed
		}
	case NameDeclaration:
		m.fileName = name + m.ext
		m.state = Buffering
		m.buf = append(m.buf, line)
	default:
		if m.state == AwaitingName || m.state == Buffering {
			m.buf = append(m.buf, line)
		}
	}
}

// flush emits the pending unit if it has both a package and a name, and
// only then clears the buffer and name. An incomplete unit carries over
// into the next package region.
func (m *machine) flush() {
	if !m.hasPkg || m.fileName == "" {
		return
	}
	m.units = append(m.units, Unit{Package: m.pkg, FileName: m.fileName, Lines: m.buf})
	m.buf = nil
	m.fileName = ""
}

// PackagePath converts a package line to a slash-separated path:
// "package com.example;" becomes "com/example".
func PackagePath(line string) string {
	v := strings.TrimSpace(strings.TrimPrefix(line, packagePrefix))
	v = strings.TrimSpace(strings.TrimSuffix(v, ";"))
	return strings.ReplaceAll(v, ".", "/")
}
