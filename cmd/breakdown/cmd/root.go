// Package cmd provides the CLI commands for breakdown.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/breakdown/internal/command"
	"github.com/wexinc/breakdown/internal/config"
	"github.com/wexinc/breakdown/internal/input"
	"github.com/wexinc/breakdown/internal/logging"
	"github.com/wexinc/breakdown/internal/orchestrator"
	"github.com/wexinc/breakdown/internal/version"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Flag values bound in init().
var (
	flagFrom         string
	flagDestination  string
	flagInput        string
	flagAdaptation   string
	flagConfig       string
	flagWorkingDir   string
	flagVerbose      bool
	flagInputTimeout time.Duration
)

// customVars holds the --uv-* variables extracted before cobra parsing.
var customVars = map[string]string{}

// rootCmd represents the base command: breakdown <directive> <layer>.
var rootCmd = &cobra.Command{
	Use:   "breakdown <directive> <layer>",
	Short: "Convert Markdown development artifacts into AI prompts",
	Long: `Breakdown converts Markdown development artifacts (project, issue, and
task descriptions) into AI prompts. Given a directive and a target layer
it resolves the matching prompt template, builds the variable map from
your input, and writes the filled prompt to stdout.

Input comes from --from <file>, from piped stdin, or both. Custom
template variables are passed as repeatable --uv-<name>=<value> flags.

Examples:
  breakdown to task --from ./issue.md
  cat notes.md | breakdown summary project
  breakdown to issue -f plan.md -a strict --uv-author=alice`,
	Args:          cobra.ExactArgs(2),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFrom, "from", "f", "", "Input file path")
	rootCmd.Flags().StringVarP(&flagDestination, "destination", "o", "", "Output file path or directory")
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Explicit source layer (project, issue, task, or an alias)")
	rootCmd.Flags().StringVarP(&flagAdaptation, "adaptation", "a", "", "Prompt variant suffix")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config set prefix ({prefix}-app.yml)")
	rootCmd.PersistentFlags().StringVarP(&flagWorkingDir, "working-dir", "w", "", "Workspace root (default: .agent/breakdown)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.Flags().DurationVar(&flagInputTimeout, "input-timeout", input.DefaultTimeout, "Timeout for reading piped stdin")
}

// runRoot executes the generate pipeline for <directive> <layer>.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer logging.CloseGlobal()

	stdinText, err := input.ReadStdin(cmd.Context(), flagInputTimeout)
	if err != nil {
		return err
	}

	twoParam, err := command.New(args[0], args[1], command.OptionsBag{
		FromFile:        flagFrom,
		DestinationFile: flagDestination,
		InputLayerAlias: flagInput,
		Adaptation:      flagAdaptation,
		CustomVariables: customVars,
	})
	if err != nil {
		return err
	}

	o := orchestrator.New(cfg, orchestrator.WithLogger(logger))
	res, err := o.Run(cmd.Context(), *twoParam, stdinText)
	if err != nil {
		return err
	}

	if err := version.TouchLastRun(cfg.WorkingDir); err != nil {
		logger.Warn("failed to update version stamp", "error", err)
	}

	// Generated text only; diagnostics never mix into stdout.
	fmt.Fprint(cmd.OutOrStdout(), res.Content)
	return nil
}

// loadConfig loads the workspace config, honoring --working-dir and --config.
func loadConfig() (*config.Config, error) {
	workingDir := flagWorkingDir
	if workingDir == "" {
		workingDir = config.DefaultWorkingDir
	}
	if flagConfig != "" {
		return config.LoadWithPrefix(workingDir, flagConfig)
	}
	return config.Load(workingDir)
}

// initLogging sets up the global file logger from config, raising the level
// to debug when --verbose is set.
func initLogging(cfg *config.Config) (*logging.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if flagVerbose {
		level = logging.LevelDebug
	}

	logger, err := logging.New(&logging.Config{
		Level:       level,
		LogDir:      cfg.Logging.Dir,
		MaxLogFiles: cfg.Logging.MaxFiles,
		MaxLogAge:   cfg.Logging.MaxAge,
		Console:     flagVerbose,
	})
	if err != nil {
		return nil, err
	}
	logging.SetGlobal(logger)
	return logger, nil
}

// Execute parses argv and runs the selected command. --uv-* flags are
// extracted before cobra sees the arguments, since their names are dynamic.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("breakdown {{.Version}}\n")

	remaining, custom, err := command.ExtractCustomArgs(os.Args[1:])
	if err != nil {
		renderError(os.Stderr, err)
		os.Exit(1)
	}
	customVars = custom
	rootCmd.SetArgs(remaining)

	if err := rootCmd.Execute(); err != nil {
		renderError(os.Stderr, err)
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// SetCustomVars overrides the extracted --uv-* variables. Used by tests.
func SetCustomVars(vars map[string]string) {
	if vars == nil {
		vars = map[string]string{}
	}
	customVars = vars
}
