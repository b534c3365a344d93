package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/jorge-barreto/codesplit/internal/config"
	"github.com/jorge-barreto/codesplit/internal/fence"
	"github.com/jorge-barreto/codesplit/internal/fsys"
	"github.com/jorge-barreto/codesplit/internal/header"
	"github.com/jorge-barreto/codesplit/internal/manifest"
	"github.com/jorge-barreto/codesplit/internal/normalize"
	"github.com/jorge-barreto/codesplit/internal/splitter"
	"github.com/jorge-barreto/codesplit/internal/ux"
)

// Options are per-run settings that override the config.
type Options struct {
	Output        string
	Package       string
	ExtractFences bool
	// FenceLanguages limits extraction to fences tagged with one of these
	// languages. Untagged fences are always kept.
	FenceLanguages []string
}

// Runner drives a split run over a list of inputs.
type Runner struct {
	Splitter *splitter.Splitter
	Console  *ux.Console
	Options  Options
	RunID    string
}

// New wires a Runner from cfg, writing to disk through console.
func New(cfg *config.Config, opts Options, console *ux.Console) (*Runner, error) {
	names, err := cfg.Matcher()
	if err != nil {
		return nil, err
	}
	gen, err := header.New(cfg.Header)
	if err != nil {
		return nil, fmt.Errorf("config: header: %w", err)
	}
	if opts.Output == "" {
		opts.Output = cfg.Output
	}
	if opts.Package == "" {
		opts.Package = cfg.Package
	}
	if len(opts.FenceLanguages) == 0 {
		opts.FenceLanguages = cfg.FenceLanguages
	}
	return &Runner{
		Splitter: &splitter.Splitter{
			Names:     names,
			Extension: cfg.Extension,
			Header:    gen.Generate,
			FS:        fsys.Disk{},
			Console:   console,
		},
		Console: console,
		Options: opts,
		RunID:   gen.RunID,
	}, nil
}

// Prepare applies fence extraction and package normalization to text.
func (r *Runner) Prepare(text string) string {
	if r.Options.ExtractFences {
		text = fence.Code(text, r.Options.FenceLanguages...)
	}
	if r.Options.Package != "" {
		text = normalize.Normalize(text, r.Options.Package)
	}
	return text
}

// Run splits every input in order and saves the manifest. Write failures
// are recorded but do not stop the run. Cancelling ctx stops before the
// next input; the manifest still records what was written.
func (r *Runner) Run(ctx context.Context, inputs []Input) (*manifest.Manifest, error) {
	m := manifest.New(r.RunID, r.Options.Package)
	root := r.Options.Output

	var runErr error
	for i, in := range inputs {
		if ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}
		r.Console.InputHeader(i, len(inputs), in.Label)
		if r.Options.Package != "" {
			r.Console.Normalized(r.Options.Package)
		}
		res := r.Splitter.Split(in.Label, r.Prepare(in.Text), root)
		if len(res.Written)+len(res.Failed) == 0 {
			r.Console.NothingFound(in.Label)
		}
		m.Record(in.Label, res)
	}

	m.Finish()
	if len(m.Written)+len(m.Failed) > 0 {
		if err := m.Save(root); err != nil {
			r.Console.Warn("failed to save manifest: %v", err)
		}
	}
	r.Console.Summary(len(m.Written), len(m.Failed), root)
	return m, runErr
}

// PartialError reports that a run finished with some files unwritten.
type PartialError struct {
	Failed []manifest.Failure
}

func (e *PartialError) Error() string {
	paths := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		paths[i] = f.Path
	}
	return fmt.Sprintf("%d file(s) could not be written: %s", len(e.Failed), strings.Join(paths, ", "))
}
