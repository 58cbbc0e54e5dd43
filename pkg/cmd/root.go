package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/config"
	"github.com/siyuan-infoblox/svelte-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/svelte-imports-group/pkg/version"
)

const (
	UseDescription   = "sig [flags] [PATH]"
	ShortDescription = "Svelte imports grouper - A tool to group imports and order component preambles"
	LongDescription  = `sig is a command-line tool that canonicalizes the top of JavaScript,
TypeScript and Svelte source files.

For plain script files it groups and sorts the leading import block:
1. Type imports: scoped packages, builtin modules, third-party, relative
2. Value imports: scoped packages, Svelte runtime, builtin modules,
   third-party, relative

For Svelte components it additionally orders the whole script preamble into
buckets: imports, props, state, derived state, reactive statements,
constants, functions, events, stores, lifecycle hooks. Reactive statements
and lifecycle hooks keep their original relative order.

The transformation is idempotent and content-preserving: statements are only
reordered, never edited, and files already in canonical order are left
untouched.

PATH can be a single file or a directory (processed recursively). With
--changed, the files currently modified or untracked according to git are
processed instead.`
)

var (
	inPlace     bool
	changedOnly bool
	workers     int
	verbose     bool
	showVersion bool
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&inPlace, "in-place", false, "Modify files in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&changedOnly, "changed", false, "Process the files currently modified or untracked according to git")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Max concurrent file workers (default: number of CPUs)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// version and changed modes need no path argument
	if showVersion || changedOnly {
		return cobra.MaximumNArgs(0)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(version.Get())
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, _ := os.UserHomeDir()
	cfg, err := config.Load(wd, home)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	g := formatter.New(formatter.FormatterConfig{
		InPlace:               inPlace,
		Workers:               cfg.Workers,
		SkipGlobs:             cfg.SkipGlobs,
		ExtraBuiltinModules:   cfg.ExtraBuiltinModules,
		ExtraFrameworkModules: cfg.ExtraFrameworkModules,
		Logger:                logger,
	})

	ctx := cmd.Context()
	if changedOnly {
		return g.ProcessChanged(ctx, wd)
	}
	return g.ProcessPath(ctx, args[0])
}

func Execute(buildVersion string) error {
	if buildVersion != "" && buildVersion != "(devel)" && version.Version == "dev" {
		version.Version = buildVersion
	}
	return rootCmd.Execute()
}
