// Package textfile rewrites text files in place by pattern.
package textfile

import (
	"fmt"
	"regexp"

	"github.com/spf13/afero"
)

// Rule is a single global substitution
type Rule struct {
	Pattern *regexp.Regexp

	// Replacement is inserted verbatim; "$1" style references are not expanded
	Replacement string
}

// Result describes what a substitution did to a file
type Result struct {
	File    string
	Matches int
	Changed bool
}

// Load reads the whole file
func Load(fs afero.Fs, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, nil
}

// Apply runs rule over content and reports the number of matches
func Apply(content []byte, rule Rule) ([]byte, int) {
	matches := len(rule.Pattern.FindAllIndex(content, -1))
	if matches == 0 {
		return content, 0
	}
	return rule.Pattern.ReplaceAllLiteral(content, []byte(rule.Replacement)), matches
}

// ReplaceInFile applies rule to every match in the file at path and writes the
// result back when the content changed. With dryRun the file is never written.
func ReplaceInFile(fs afero.Fs, path string, rule Rule, dryRun bool) (Result, error) {
	result := Result{File: path}
	if rule.Pattern == nil {
		return result, fmt.Errorf("no pattern given for %s", path)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return result, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	content, err := Load(fs, path)
	if err != nil {
		return result, err
	}

	updated, matches := Apply(content, rule)
	result.Matches = matches
	result.Changed = string(updated) != string(content)

	if !result.Changed || dryRun {
		return result, nil
	}

	if err := afero.WriteFile(fs, path, updated, info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return result, nil
}
