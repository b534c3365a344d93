package runner

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// StdinArg names standard input on the command line.
const StdinArg = "-"

// Input is one block of source text and the label it is reported under.
type Input struct {
	Label string
	Text  string
}

// LoadInputs resolves each argument to one or more inputs. Arguments are
// file paths, doublestar globs ("responses/**/*.txt") or StdinArg. An
// argument that matches nothing is an error. A file matched by several
// arguments is read once.
func LoadInputs(args []string, stdin io.Reader) ([]Input, error) {
	var inputs []Input
	seen := make(map[string]bool)
	for _, arg := range args {
		if arg == StdinArg {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			inputs = append(inputs, Input{Label: "stdin", Text: string(data)})
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", arg, err)
		}
		sort.Strings(matches)
		found := 0
		for _, path := range matches {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				continue
			}
			found++
			if seen[path] {
				continue
			}
			seen[path] = true
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			inputs = append(inputs, Input{Label: path, Text: string(data)})
		}
		if found == 0 {
			return nil, fmt.Errorf("no input file matches %q", arg)
		}
	}
	return inputs, nil
}
