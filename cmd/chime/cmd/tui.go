package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
	"github.com/RonaldDijks/chime/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive TUI",
	Long: `Starts the terminal user interface. Statements and commands behave as
in the line REPL; the repl flags apply here as well.

Navigation:
  Enter       evaluate the input line
  PgUp/PgDn   scroll the transcript
  Ctrl+L      clear the transcript
  Ctrl+C/Esc  quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&replShowAST, "ast", false, "print the syntax tree before each result")
	tuiCmd.Flags().StringVar(&replScope, "scope", "", "scope mode: session or line (default from config)")
	tuiCmd.Flags().StringVar(&replPrompt, "prompt", "", "input prompt (default from config)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Log lines on stderr would tear the alternate screen
	log := mdwlog.Discard()
	if verbose {
		log = logger
	}

	session, err := newSession(cmd, log)
	if err != nil {
		return err
	}
	return tui.Run(session)
}
