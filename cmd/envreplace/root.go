package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crossroads/envreplace/config"
	"github.com/crossroads/envreplace/logging"
	"github.com/crossroads/envreplace/replacer"
)

// flagValues mirrors the command-line surface. Only flags the user actually
// set override the environment configuration.
type flagValues struct {
	file        string
	env         string
	find        string
	replace     string
	libraryHost string
	baseDomain  string
	dryRun      bool
	logLevel    string
	logFormat   string
}

func newRootCommand() *cobra.Command {
	return newRootCommandWithFs(afero.NewOsFs())
}

func newRootCommandWithFs(fs afero.Fs) *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:           "envreplace",
		Short:         "Rewrite environment markers in a build artifact",
		Example:       "envreplace -f ./dist/index.html -e demo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), flags, cfg); err != nil {
				return err
			}

			logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFormat, cmd.ErrOrStderr())
			return run(fs, cfg)
		},
	}

	defaults := replacer.DefaultOptions()
	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", defaults.File, "Path to file")
	f.StringVarP(&flags.env, "env", "e", defaults.Env, "Name of environment")
	f.StringVar(&flags.find, "find", "", "Value to replace in the library reference (regular expression; escape dots for a literal hostname)")
	f.StringVar(&flags.replace, "replace", "", "Replacement value for the library reference")
	f.StringVar(&flags.libraryHost, "library-host", defaults.LibraryHost, "Host name of the components library")
	f.StringVar(&flags.baseDomain, "base-domain", defaults.BaseDomain, "Base domain of the components library")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Report matches without writing the file")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level")
	f.StringVar(&flags.logFormat, "log-format", "console", "Log format (console or json)")

	return cmd
}

func applyFlags(set *pflag.FlagSet, flags flagValues, cfg *config.Config) error {
	overrides := []struct {
		name  string
		apply func()
	}{
		{"file", func() { cfg.Replacer.File = flags.file }},
		{"env", func() { cfg.Replacer.Env = flags.env }},
		{"find", func() { cfg.Replacer.Find = flags.find }},
		{"replace", func() { cfg.Replacer.Replace = flags.replace }},
		{"library-host", func() { cfg.Replacer.LibraryHost = flags.libraryHost }},
		{"base-domain", func() { cfg.Replacer.BaseDomain = flags.baseDomain }},
		{"dry-run", func() { cfg.Replacer.DryRun = flags.dryRun }},
		{"log-level", func() { cfg.App.LogLevel = flags.logLevel }},
		{"log-format", func() { cfg.App.LogFormat = flags.logFormat }},
	}
	for _, o := range overrides {
		if set.Changed(o.name) {
			o.apply()
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func run(fs afero.Fs, cfg *config.Config) error {
	logger := logging.ReplacerLogger(cfg.Replacer.File, cfg.Replacer.Env)

	r := replacer.New(replacer.OptionsFromConfig(cfg.Replacer), fs, logger)
	if r.ShouldSkip() {
		logger.Info().
			Bool("recognized", config.IsValidEnvironment(cfg.Replacer.Env)).
			Strs("accepted", config.ValidEnvironments()).
			Msg("Environment is integration or unrecognized, leaving file untouched")
	}

	results, err := r.Run()
	if err != nil {
		return err
	}

	for _, result := range results {
		logger.Debug().
			Str("operation", string(result.Operation)).
			Bool("skipped", result.Skipped).
			Bool("replaced", result.Replaced()).
			Int("matches", result.Matches).
			Msg("Operation finished")
	}
	return nil
}
