// Package replacer rewrites environment markers in a build artifact.
package replacer

import (
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/crossroads/envreplace/config"
	"github.com/crossroads/envreplace/textfile"
)

// Defaults applied when an option is left blank
const (
	DefaultFile        = "./dist/index.html"
	DefaultEnv         = "int"
	DefaultLibraryHost = "components"
	DefaultBaseDomain  = "crossroads.net"
)

var attributePattern = regexp.MustCompile(`env="\w*"`)

// Operation names a rewrite performed by the Replacer
type Operation string

const (
	OperationAttribute        Operation = "attribute"
	OperationLibraryReference Operation = "library_reference"
)

// Options configures a Replacer. Empty Find and Replace mean the built-in
// pattern and replacement are used.
type Options struct {
	File        string
	Env         string
	Find        string
	Replace     string
	LibraryHost string
	BaseDomain  string
	DryRun      bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		File:        DefaultFile,
		Env:         DefaultEnv,
		LibraryHost: DefaultLibraryHost,
		BaseDomain:  DefaultBaseDomain,
	}
}

// OptionsFromConfig maps loaded configuration onto Options
func OptionsFromConfig(cfg config.ReplacerConfig) Options {
	return Options{
		File:        cfg.File,
		Env:         cfg.Env,
		Find:        cfg.Find,
		Replace:     cfg.Replace,
		LibraryHost: cfg.LibraryHost,
		BaseDomain:  cfg.BaseDomain,
		DryRun:      cfg.DryRun,
	}
}

// Result reports the outcome of one operation
type Result struct {
	Operation Operation
	File      string

	// Skipped is set when the environment is integration or unrecognized
	Skipped bool
	Matches int
	Changed bool
}

// Replaced reports whether the operation ran and found at least one match
func (r Result) Replaced() bool {
	return !r.Skipped && r.Matches > 0
}

// Replacer rewrites environment markers in a single build artifact
type Replacer struct {
	opts   Options
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a Replacer. Blank File, LibraryHost and BaseDomain fall back to
// their defaults; Env is kept as given, so a blank Env skips every operation.
func New(opts Options, fs afero.Fs, logger zerolog.Logger) *Replacer {
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.LibraryHost == "" {
		opts.LibraryHost = DefaultLibraryHost
	}
	if opts.BaseDomain == "" {
		opts.BaseDomain = DefaultBaseDomain
	}
	return &Replacer{
		opts:   opts,
		fs:     fs,
		logger: logger,
	}
}

// Options returns the resolved configuration
func (r *Replacer) Options() Options {
	return r.opts
}

// IsEnv reports whether the configured environment belongs to category
func (r *Replacer) IsEnv(category config.Category) bool {
	return category.Has(r.opts.Env)
}

// IsProd reports whether the configured environment is production
func (r *Replacer) IsProd() bool {
	return r.IsEnv(config.CategoryProduction)
}

// IsInt reports whether the configured environment is integration
func (r *Replacer) IsInt() bool {
	return r.IsEnv(config.CategoryIntegration)
}

// ShouldSkip reports whether the file must be left alone: integration builds
// and names that match no category are never rewritten.
func (r *Replacer) ShouldSkip() bool {
	category, ok := config.Classify(r.opts.Env)
	return !ok || category == config.CategoryIntegration
}

// ReplaceAttribute sets every env="..." attribute in the file to the configured environment
func (r *Replacer) ReplaceAttribute() (Result, error) {
	if r.ShouldSkip() {
		return r.skipped(OperationAttribute), nil
	}

	rule := textfile.Rule{
		Pattern:     attributePattern,
		Replacement: fmt.Sprintf(`env="%s"`, r.opts.Env),
	}
	return r.replace(OperationAttribute, rule)
}

// ReplaceLibraryReference points the components library hostname at the
// configured environment. Custom Find and Replace options override the
// built-in pattern and replacement independently.
func (r *Replacer) ReplaceLibraryReference() (Result, error) {
	if r.ShouldSkip() {
		return r.skipped(OperationLibraryReference), nil
	}

	pattern, err := r.libraryPattern()
	if err != nil {
		return Result{Operation: OperationLibraryReference, File: r.opts.File}, err
	}

	rule := textfile.Rule{
		Pattern:     pattern,
		Replacement: r.libraryReplacement(),
	}
	return r.replace(OperationLibraryReference, rule)
}

// Run applies both operations in order and stops at the first error
func (r *Replacer) Run() ([]Result, error) {
	results := make([]Result, 0, 2)

	result, err := r.ReplaceAttribute()
	if err != nil {
		return results, fmt.Errorf("failed to replace environment attributes: %w", err)
	}
	results = append(results, result)

	result, err = r.ReplaceLibraryReference()
	if err != nil {
		return results, fmt.Errorf("failed to replace library reference: %w", err)
	}
	results = append(results, result)

	return results, nil
}

func (r *Replacer) libraryPattern() (*regexp.Regexp, error) {
	if r.opts.Find != "" {
		pattern, err := regexp.Compile(r.opts.Find)
		if err != nil {
			return nil, fmt.Errorf("invalid find pattern %q: %w", r.opts.Find, err)
		}
		return pattern, nil
	}
	return regexp.MustCompile(
		regexp.QuoteMeta(r.opts.LibraryHost) + `(?:-\w+)?\.` + regexp.QuoteMeta(r.opts.BaseDomain),
	), nil
}

func (r *Replacer) libraryReplacement() string {
	if r.opts.Replace != "" {
		return r.opts.Replace
	}
	if r.IsProd() {
		return fmt.Sprintf("%s.%s", r.opts.LibraryHost, r.opts.BaseDomain)
	}
	return fmt.Sprintf("%s-%s.%s", r.opts.LibraryHost, r.opts.Env, r.opts.BaseDomain)
}

func (r *Replacer) skipped(op Operation) Result {
	r.logger.Debug().
		Str("operation", string(op)).
		Msg("Skipping replacement for environment")
	return Result{Operation: op, File: r.opts.File, Skipped: true}
}

// replace runs rule against the file. Callers apply the skip gate first.
func (r *Replacer) replace(op Operation, rule textfile.Rule) (Result, error) {
	res, err := textfile.ReplaceInFile(r.fs, r.opts.File, rule, r.opts.DryRun)
	result := Result{
		Operation: op,
		File:      r.opts.File,
		Matches:   res.Matches,
		Changed:   res.Changed,
	}
	if err != nil {
		return result, err
	}

	r.logger.Info().
		Str("operation", string(op)).
		Str("pattern", rule.Pattern.String()).
		Str("replacement", rule.Replacement).
		Int("matches", res.Matches).
		Bool("changed", res.Changed).
		Bool("dry_run", r.opts.DryRun).
		Msg("Replacement applied")

	return result, nil
}
