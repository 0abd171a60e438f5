package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
	"github.com/RonaldDijks/chime/internal/repl"
)

var (
	replShowAST bool
	replScope   string
	replPrompt  string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive line REPL",
	Long: `Reads one statement per line from stdin and prints its value.

Commands:
  :ast      toggle the syntax tree dump
  :scope    list the current bindings
  :reset    discard all bindings
  :help     show help
  :quit     leave (end of input works as well)

Examples:
  chime repl
  chime repl --scope line --ast
  chime repl --prompt "chime> "`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replShowAST, "ast", false, "print the syntax tree before each result")
	replCmd.Flags().StringVar(&replScope, "scope", "", "scope mode: session or line (default from config)")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "", "input prompt (default from config)")
}

// newSession builds a REPL session from config and the repl flags. Flags
// that were not given fall back to the configuration.
func newSession(cmd *cobra.Command, log *mdwlog.Logger) (*repl.Session, error) {
	engine, err := newEngine(log)
	if err != nil {
		return nil, err
	}

	scope := cfg.REPL.Scope
	if flagChanged(cmd, "scope") {
		scope = replScope
	}
	mode, err := repl.ParseScopeMode(scope)
	if err != nil {
		return nil, err
	}

	prompt := cfg.REPL.Prompt
	if flagChanged(cmd, "prompt") {
		prompt = replPrompt
	}

	showAST := cfg.REPL.ShowAST
	if flagChanged(cmd, "ast") {
		showAST = replShowAST
	}

	return repl.NewSession(engine, repl.Options{
		Prompt:    prompt,
		ShowAST:   showAST,
		ScopeMode: mode,
		Logger:    log,
	}), nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func runREPL(cmd *cobra.Command, args []string) error {
	session, err := newSession(cmd, logger)
	if err != nil {
		return err
	}
	return session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
