package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/RonaldDijks/chime/foundation/chime"
	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
	"github.com/RonaldDijks/chime/pkg/core/config"
	"github.com/RonaldDijks/chime/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	// Set by loadConfig before any subcommand runs
	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chime",
	Short: "chime - a small expression language",
	Long: `chime evaluates statements over floats and booleans.

  let x = 2 + 3 * 4     declare a variable
  x = x / 2             assign to an existing variable
  true || false && x    evaluate an expression

Without a subcommand chime starts the line REPL on stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runREPL,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit status.
// Errors without a code are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return 2
	}
	return mdwErr.Code().ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CHIME_CONFIG, ./chime.toml, ./configs/chime.toml, ~/.config/chime/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}

	logger = logging.Install(logging.LoggerConfig{
		Name:   "chime",
		Level:  level,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":    cfg.Path,
		"command": cmd.Name(),
	})
	return nil
}

// newEngine creates an engine seeded with the configured bindings
func newEngine(log *mdwlog.Logger) (*chime.Engine, error) {
	bindings, err := cfg.EvaluatorBindings()
	if err != nil {
		return nil, err
	}

	return chime.New(chime.Options{
		Logger:         log,
		MaxInputLength: cfg.REPL.MaxInputLength,
		Bindings:       bindings,
	})
}
