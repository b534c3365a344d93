// Package manifest records what a split run wrote, so it can be inspected
// later with the status command.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jorge-barreto/codesplit/internal/fsys"
	"github.com/jorge-barreto/codesplit/internal/splitter"
)

// FileName is stored at the top of the output root.
const FileName = ".codesplit-manifest.json"

const (
	StatusCompleted = "completed"
	StatusPartial   = "partial"
	StatusEmpty     = "empty"
)

// ErrNoManifest is returned by Load when the output root has no manifest.
var ErrNoManifest = errors.New("no manifest found")

type Entry struct {
	Input string `json:"input"`
	Path  string `json:"path"` // relative to the output root
	Lines int    `json:"lines"`
}

type Failure struct {
	Input string `json:"input"`
	Path  string `json:"path"`
	Error string `json:"error"`
}

type Manifest struct {
	RunID    string    `json:"run_id"`
	Package  string    `json:"package,omitempty"`
	Inputs   []string  `json:"inputs"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end,omitempty"`
	Duration string    `json:"duration,omitempty"`
	Status   string    `json:"status"`
	Written  []Entry   `json:"written"`
	Failed   []Failure `json:"failed,omitempty"`
}

// New starts a manifest for a run.
func New(runID, pkg string) *Manifest {
	return &Manifest{RunID: runID, Package: pkg, Start: time.Now()}
}

func manifestPath(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the manifest from the output root.
func Load(root string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoManifest, root)
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Record adds the outcome of splitting one input.
func (m *Manifest) Record(input string, res *splitter.Result) {
	m.Inputs = append(m.Inputs, input)
	for _, w := range res.Written {
		m.Written = append(m.Written, Entry{Input: input, Path: relTo(res.Root, w.Path), Lines: w.Lines})
	}
	for _, f := range res.Failed {
		m.Failed = append(m.Failed, Failure{Input: input, Path: relTo(res.Root, f.Path), Error: f.Err.Error()})
	}
}

// Finish stamps the end time and derives the status.
func (m *Manifest) Finish() {
	m.End = time.Now()
	m.Duration = formatDuration(m.End.Sub(m.Start))
	switch {
	case len(m.Failed) > 0:
		m.Status = StatusPartial
	case len(m.Written) == 0:
		m.Status = StatusEmpty
	default:
		m.Status = StatusCompleted
	}
}

// Save writes the manifest into the output root, creating it if needed.
func (m *Manifest) Save(root string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := (fsys.Disk{}).MkdirAll(root); err != nil {
		return err
	}
	return fsys.WriteFileAtomic(manifestPath(root), data, 0644)
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	ms := d.Milliseconds() % 1000
	return fmt.Sprintf("%dm %02d.%03ds", m, s, ms)
}
