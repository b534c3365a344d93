package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/jorge-barreto/codesplit/internal/config"
)

var configTemplate = `# codesplit configuration. Run 'codesplit docs config' for details.

# Ordered regular expressions tried against each line. A pattern is anchored
# at line start, the line must end with '{', and group 1 is the file name.
file-name-patterns:
  - 'public\s+(?:(?:abstract|final|sealed|non-sealed|strictfp)\s+)*class\s+(\w+)'
  - 'public\s+(?:(?:abstract|sealed|non-sealed|strictfp)\s+)*interface\s+(\w+)'
  - 'public\s+enum\s+(\w+)'
  - 'public\s+record\s+(\w+)'
  - 'public\s+@interface\s+(\w+)'

extension: .java

# Package statement forced onto every public declaration (optional).
# package: com.example

output: parsed

# Keep only the contents of markdown code fences from the input.
extract-fences: true
# Only keep fences tagged with one of these languages. Untagged fences are
# always kept.
fence-languages: [java]

header: |
  /*
   * Generated by codesplit from {{.Source}}
   * Run {{.RunID}} on {{.Date}}
   */
`

// Init writes an example config file into targetDir.
func Init(targetDir string) error {
	path := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	bold := color.New(color.Bold, color.FgGreen)
	cyan := color.New(color.FgCyan)
	fmt.Printf("\n%s\n\n", bold.Sprintf("✓ Created %s", config.FileName))
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s to match your declarations\n", cyan.Sprint(config.FileName))
	fmt.Printf("    2. Run %s\n", cyan.Sprint("codesplit split response.txt"))
	fmt.Printf("    3. Run %s to review what was written\n\n", cyan.Sprint("codesplit status"))

	return nil
}
