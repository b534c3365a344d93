// Package fsys writes split units to disk.
package fsys

import (
	"fmt"
	"os"

	"github.com/jorge-barreto/codesplit/internal/lines"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Disk writes to the local file system. Each file is replaced atomically.
type Disk struct{}

// MkdirAll creates dir and any missing parents.
func (Disk) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteLines replaces path with lines, each terminated by a newline.
func (Disk) WriteLines(path string, ls []string) error {
	if err := WriteFileAtomic(path, []byte(lines.Join(ls)), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
