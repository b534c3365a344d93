package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/codesplit/internal/splitter"
)

// FileName is the config file looked up from the working directory upward.
const FileName = ".codesplit.yaml"

// DefaultOutput is the output root used when neither config nor flags set one.
const DefaultOutput = "parsed"

type Config struct {
	FileNamePatterns []string `yaml:"file-name-patterns"`
	Extension        string   `yaml:"extension"`
	Package          string   `yaml:"package"`
	Output           string   `yaml:"output"`
	ExtractFences    bool     `yaml:"extract-fences"`
	FenceLanguages   []string `yaml:"fence-languages"`
	Header           string   `yaml:"header"`
}

// DefaultPatterns match top-level Java type declarations. Group 1 is the
// type name.
func DefaultPatterns() []string {
	return []string{
		`public\s+(?:(?:abstract|final|sealed|non-sealed|strictfp)\s+)*class\s+(\w+)`,
		`public\s+(?:(?:abstract|sealed|non-sealed|strictfp)\s+)*interface\s+(\w+)`,
		`public\s+enum\s+(\w+)`,
		`public\s+record\s+(\w+)`,
		`public\s+@interface\s+(\w+)`,
		`(?:(?:abstract|final|sealed|non-sealed)\s+)*class\s+(\w+)`,
		`(?:(?:abstract|sealed|non-sealed)\s+)*interface\s+(\w+)`,
		`enum\s+(\w+)`,
		`record\s+(\w+)`,
	}
}

// Default returns a validated config with built-in values.
func Default() *Config {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find walks up from dir looking for FileName. It returns "" when no config
// file exists between dir and the file system root.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads path when set, otherwise the nearest config above dir, and
// falls back to Default.
func Resolve(path, dir string) (*Config, error) {
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}
	return Load(path)
}

// Matcher compiles the declaration-name patterns.
func (c *Config) Matcher() (*splitter.NameMatcher, error) {
	m, err := splitter.NewNameMatcher(c.FileNamePatterns)
	if err != nil {
		return nil, fmt.Errorf("config: file-name-patterns: %w", err)
	}
	return m, nil
}
