// Package header renders the provenance block stamped into every emitted unit.
package header

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"
)

// DefaultTemplate is used when the config does not set a header.
const DefaultTemplate = `/*
 * Generated by codesplit from {{.Source}}
 * Run {{.RunID}} on {{.Date}}
 */`

// Data is what a header template can reference.
type Data struct {
	Source string
	RunID  string
	Date   string
}

// Generator renders one header per unit. All units in a run share the same
// RunID and timestamp.
type Generator struct {
	tmpl  *template.Template
	RunID string
	Now   time.Time
}

// New parses text and checks it renders against sample data.
func New(text string) (*Generator, error) {
	if err := Check(text); err != nil {
		return nil, err
	}
	return &Generator{
		tmpl:  template.Must(template.New("header").Parse(text)),
		RunID: uuid.NewString(),
		Now:   time.Now(),
	}, nil
}

// Check reports whether text is a header template that parses and renders.
func Check(text string) error {
	t, err := template.New("header").Parse(text)
	if err != nil {
		return fmt.Errorf("parsing header template: %w", err)
	}
	if err := t.Execute(&bytes.Buffer{}, Data{Source: "x", RunID: "x", Date: "x"}); err != nil {
		return fmt.Errorf("rendering header template: %w", err)
	}
	return nil
}

// Generate renders the header for a unit read from label.
func (g *Generator) Generate(label string) string {
	var buf bytes.Buffer
	d := Data{Source: label, RunID: g.RunID, Date: g.Now.Format(time.RFC3339)}
	if err := g.tmpl.Execute(&buf, d); err != nil {
		return "// " + label
	}
	return buf.String()
}
