package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Console prints progress to Out and failures to Err. It implements
// splitter.Console.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// NewConsole writes to the process stdout and stderr.
func NewConsole() *Console {
	return &Console{Out: color.Output, Err: color.Error}
}

// Writing prints one progress line per emitted file.
func (c *Console) Writing(fileName, dir string) {
	fmt.Fprintf(c.Out, "%s  Writing %s to %s\n", dim.Sprintf("[%s]", timestamp()), cyan.Sprint(fileName), dir)
}

// WriteFailed prints one error line per file that could not be written.
func (c *Console) WriteFailed(path string, err error) {
	fmt.Fprintf(c.Err, "%s  %s %s: %v\n", dim.Sprintf("[%s]", timestamp()), red.Sprint("✗ Error while writing to file"), path, err)
}

// InputHeader announces an input before it is split.
func (c *Console) InputHeader(index, total int, label string) {
	fmt.Fprintf(c.Out, "\n%s  %s\n", dim.Sprintf("[%s]", timestamp()), bold.Sprintf("Input %d/%d: %s", index+1, total, label))
}

// Normalized reports that package statements were normalized to pkg.
func (c *Console) Normalized(pkg string) {
	fmt.Fprintf(c.Out, "%s  Package statements set to %s\n", dim.Sprintf("[%s]", timestamp()), cyan.Sprint(pkg))
}

// NothingFound reports an input that produced no units.
func (c *Console) NothingFound(label string) {
	fmt.Fprintf(c.Out, "%s  %s\n", dim.Sprintf("[%s]", timestamp()), yellow.Sprintf("– No compilation units found in %s", label))
}

// Warn prints a non-fatal warning.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.Err, "%s %s\n", yellow.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// Error prints a fatal error.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.Err, "%s %v\n", red.Sprint("error:"), err)
}

// Summary prints the final tally for a split run.
func (c *Console) Summary(written, failed int, root string) {
	if failed > 0 {
		fmt.Fprintf(c.Out, "\n%s\n\n", red.Sprintf("══ %d files written to %s, %d failed ══", written, root, failed))
		return
	}
	fmt.Fprintf(c.Out, "\n%s\n\n", green.Sprintf("══ %d files written to %s ══", written, root))
}
