package ux

import (
	"fmt"
	"path/filepath"

	"github.com/jorge-barreto/codesplit/internal/manifest"
)

// RenderStatus prints the manifest of the last split into root.
func (c *Console) RenderStatus(m *manifest.Manifest, root string) {
	// Header
	fmt.Fprintf(c.Out, "%s  %s\n", bold.Sprint("Run:"), m.RunID)
	fmt.Fprintf(c.Out, "%s %s\n", bold.Sprint("Output:"), root)
	if m.Package != "" {
		fmt.Fprintf(c.Out, "%s %s\n", bold.Sprint("Package:"), m.Package)
	}
	status := m.Status
	switch m.Status {
	case manifest.StatusCompleted:
		status = green.Sprint(m.Status)
	case manifest.StatusPartial:
		status = red.Sprint(m.Status)
	case manifest.StatusEmpty:
		status = yellow.Sprint(m.Status)
	}
	fmt.Fprintf(c.Out, "%s  %s  %s\n", bold.Sprint("State:"), status, dim.Sprintf("(%s, %s)", m.Start.Format("2006-01-02 15:04:05"), m.Duration))

	// Inputs
	fmt.Fprintf(c.Out, "\n%s\n", bold.Sprint("Inputs:"))
	for i, in := range m.Inputs {
		fmt.Fprintf(c.Out, "  %s  %s\n", dim.Sprint(i+1), in)
	}

	// Written files
	fmt.Fprintf(c.Out, "\n%s\n", bold.Sprint("Written:"))
	if len(m.Written) == 0 {
		fmt.Fprintf(c.Out, "  %s\n", dim.Sprint("(none)"))
	}
	for _, w := range m.Written {
		fmt.Fprintf(c.Out, "  %-48s %s\n", filepath.FromSlash(w.Path), dim.Sprintf("%d lines", w.Lines))
	}

	// Failures
	if len(m.Failed) > 0 {
		fmt.Fprintf(c.Out, "\n%s\n", bold.Sprint("Failed:"))
		for _, f := range m.Failed {
			fmt.Fprintf(c.Out, "  %s %s\n", red.Sprintf("✗ %s", filepath.FromSlash(f.Path)), dim.Sprint(f.Error))
		}
	}
	fmt.Fprintln(c.Out)
}
