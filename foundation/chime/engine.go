// File: engine.go
// Title: Chime Engine
// Description: Ties lexer, parser and evaluator together behind one entry
//              point. An Engine owns a single evaluator, so bindings made
//              by one Execute call are visible to the next.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial parse and evaluate pipeline
// - 2026-10-09 v0.2.0: Persistent evaluator, structured errors
// - 2026-10-14 v0.3.0: Input length limit, seed bindings, Reset

package chime

import (
	"time"

	"github.com/RonaldDijks/chime/foundation/chime/ast"
	"github.com/RonaldDijks/chime/foundation/chime/evaluator"
	"github.com/RonaldDijks/chime/foundation/chime/parser"
	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
	mdwstringx "github.com/RonaldDijks/chime/foundation/utils/stringx"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// logInputLength bounds the input echoed into log entries
const logInputLength = 80

// Engine parses and evaluates chime statements
type Engine struct {
	evaluator *evaluator.Evaluator
	logger    *mdwlog.Logger
	options   Options
}

// Options configures an Engine
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int                        // In runes; 0 means DefaultMaxInputLength
	Bindings       map[string]evaluator.Value // Seeded after the predefined a = 10
}

// Result is the outcome of one successful Execute call
type Result struct {
	Input    string
	Unit     *ast.CompilationUnit
	Value    evaluator.Value
	Duration time.Duration
}

// Tree renders the parsed statement as an indented tree
func (r *Result) Tree() string {
	return ast.TreeString(r.Unit)
}

// New creates an engine with a freshly seeded scope
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.Newf("max input length must not be negative, got %d", opts.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("chime.New")
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "engine")

	engine := &Engine{
		evaluator: evaluator.New(
			evaluator.WithLogger(opts.Logger),
			evaluator.WithBindings(opts.Bindings),
		),
		logger:  logger,
		options: opts,
	}

	logger.Debug("Engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"bindings":       len(opts.Bindings),
	})

	return engine, nil
}

// Parse validates and parses input without evaluating it
func (e *Engine) Parse(input string) (*ast.CompilationUnit, error) {
	if mdwstringx.IsBlank(input) {
		return nil, mdwerror.New("input cannot be blank").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("chime.Parse")
	}

	if n := mdwstringx.RuneLength(input); n > e.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds %d characters", e.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLong).
			WithOperation("chime.Parse").
			WithDetail("length", n)
	}

	unit, err := parser.Parse(input)
	if err != nil {
		return nil, mdwerror.Wrap(err, "syntax error").
			WithCode(mdwerror.CodeSyntax).
			WithOperation("chime.Parse").
			WithDetail("input", mdwstringx.Truncate(input, logInputLength, "..."))
	}
	return unit, nil
}

// Execute parses and evaluates one statement
func (e *Engine) Execute(input string) (*Result, error) {
	start := time.Now()

	unit, err := e.Parse(input)
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}

	value, err := e.evaluator.Evaluate(unit)
	if err != nil {
		wrapped := mdwerror.Wrap(err, "evaluation error").
			WithCode(mdwerror.CodeEvaluation).
			WithOperation("chime.Execute").
			WithDetail("input", mdwstringx.Truncate(input, logInputLength, "..."))
		e.logger.LogError(wrapped)
		return nil, wrapped
	}

	result := &Result{
		Input:    input,
		Unit:     unit,
		Value:    value,
		Duration: time.Since(start),
	}

	e.logger.Debug("Statement executed", mdwlog.Fields{
		"input":    mdwstringx.Truncate(input, logInputLength, "..."),
		"value":    value.String(),
		"duration": result.Duration,
	})

	return result, nil
}

// Bindings returns a sorted snapshot of the current scope
func (e *Engine) Bindings() []evaluator.Binding {
	return e.evaluator.Bindings()
}

// Reset discards all bindings made since creation
func (e *Engine) Reset() {
	e.evaluator.Reset()
	e.logger.Debug("Scope reset")
}

// MaxInputLength returns the effective input limit in runes
func (e *Engine) MaxInputLength() int {
	return e.options.MaxInputLength
}
