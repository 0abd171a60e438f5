package cmd

import (
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RonaldDijks/chime/foundation/chime/evaluator"
)

var (
	evalFormat  string
	evalShowAST bool
)

// evalResult is the structured form of one evaluated statement. Value is
// empty for unit and for non-finite floats, which JSON cannot represent;
// Text always carries the rendering.
type evalResult struct {
	Input string      `json:"input" yaml:"input"`
	Type  string      `json:"type" yaml:"type"`
	Value interface{} `json:"value" yaml:"value"`
	Text  string      `json:"text" yaml:"text"`
	AST   string      `json:"ast,omitempty" yaml:"ast,omitempty"`
}

var evalCmd = &cobra.Command{
	Use:   "eval <statement...>",
	Short: "Evaluate one statement and print its value",
	Long: `Evaluates the arguments, joined by spaces, as a single statement in a
fresh scope and prints the result.

Examples:
  chime eval "2 + 3 * 4"
  chime eval --format json "true || false && true"
  chime eval --ast "(2 + 3) * a"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", formatText, "output format: text, json or yaml")
	evalCmd.Flags().BoolVar(&evalShowAST, "ast", false, "include the syntax tree")
}

func runEval(cmd *cobra.Command, args []string) error {
	format, err := validateFormat(evalFormat)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	result, err := engine.Execute(input)
	if err != nil {
		return err
	}

	out := evalResult{
		Input: input,
		Type:  string(result.Value.Type()),
		Value: structuredValue(result.Value),
		Text:  result.Value.Text(),
	}

	text := result.Value.String()
	if evalShowAST {
		out.AST = result.Tree()
		text = out.AST + text
	}

	return writeOutput(cmd.OutOrStdout(), format, out, text)
}

func structuredValue(v evaluator.Value) interface{} {
	raw := evaluator.Interface(v)
	if f, ok := raw.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return nil
	}
	return raw
}
