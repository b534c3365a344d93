package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jorge-barreto/codesplit/internal/header"
	"github.com/jorge-barreto/codesplit/internal/splitter"
)

var packageNameRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(?:\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if len(cfg.FileNamePatterns) == 0 {
		cfg.FileNamePatterns = DefaultPatterns()
	}
	for i, p := range cfg.FileNamePatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config: file-name-patterns: entry %d is empty", i+1)
		}
	}
	if _, err := cfg.Matcher(); err != nil {
		return err
	}

	if cfg.Extension == "" {
		cfg.Extension = splitter.DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") || strings.ContainsAny(cfg.Extension, `/\`) {
		return fmt.Errorf("config: extension %q must start with '.' and contain no path separators", cfg.Extension)
	}

	if cfg.Package != "" {
		if err := ValidatePackage(cfg.Package); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	for i, l := range cfg.FenceLanguages {
		if strings.TrimSpace(l) == "" || strings.ContainsAny(l, " \t`") {
			return fmt.Errorf("config: fence-languages: entry %d (%q) is not a fence language", i+1, l)
		}
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if cfg.Header == "" {
		cfg.Header = header.DefaultTemplate
	}
	if err := header.Check(cfg.Header); err != nil {
		return fmt.Errorf("config: header: %w", err)
	}
	return nil
}

// ValidatePackage checks that name is a dotted identifier such as com.example.
func ValidatePackage(name string) error {
	if !packageNameRe.MatchString(name) {
		return fmt.Errorf("package %q is not a dotted identifier (e.g. com.example)", name)
	}
	return nil
}
