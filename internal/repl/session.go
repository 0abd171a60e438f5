// Package repl implements the interactive line-oriented chime session
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/RonaldDijks/chime/foundation/chime"
	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
)

// ScopeMode controls how long variable bindings live
type ScopeMode string

const (
	// ScopeSession keeps one scope for the whole session
	ScopeSession ScopeMode = "session"
	// ScopeLine starts every input line with a fresh scope
	ScopeLine ScopeMode = "line"
)

// ParseScopeMode converts a configuration or flag value to a ScopeMode.
// An empty string selects ScopeSession.
func ParseScopeMode(s string) (ScopeMode, error) {
	switch ScopeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeSession:
		return ScopeSession, nil
	case ScopeLine:
		return ScopeLine, nil
	default:
		return ScopeSession, mdwerror.Newf("unknown scope mode %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("repl.ParseScopeMode").
			WithDetail("allowed", "session, line")
	}
}

// DefaultPrompt is written before every input line
const DefaultPrompt = "> "

// maxLineBytes bounds a single scanned line. Lines within it but above the
// engine limit are rejected by the engine with INPUT_TOO_LONG.
const maxLineBytes = 1 << 20

const helpText = `Enter a statement to evaluate it, for example:
  let x = 2 + 3 * 4
  x = x / 2
  true || false && true

Commands:
  :ast      toggle the syntax tree dump
  :scope    list the current bindings
  :reset    discard all bindings except the predefined ones
  :help     show this help
  :quit, :q leave the session`

// Options configures a Session
type Options struct {
	Prompt    string
	ShowAST   bool
	ScopeMode ScopeMode
	Logger    *mdwlog.Logger
}

// Session is an interactive line-oriented front end for an engine
type Session struct {
	engine  *chime.Engine
	options Options
	showAST bool
	id      string
	logger  *mdwlog.Logger
	lines   int
}

// NewSession creates a session around engine
func NewSession(engine *chime.Engine, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.ScopeMode == "" {
		opts.ScopeMode = ScopeSession
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	id := uuid.New().String()
	return &Session{
		engine:  engine,
		options: opts,
		showAST: opts.ShowAST,
		id:      id,
		logger: opts.Logger.WithFields(mdwlog.Fields{
			"component": "repl",
			"session":   id,
		}),
	}
}

// ID returns the session identifier used in log entries
func (s *Session) ID() string {
	return s.id
}

// ShowAST reports whether the syntax tree dump is enabled
func (s *Session) ShowAST() bool {
	return s.showAST
}

// ScopeMode returns the effective scope mode
func (s *Session) ScopeMode() ScopeMode {
	return s.options.ScopeMode
}

// Prompt returns the input prompt
func (s *Session) Prompt() string {
	return s.options.Prompt
}

// Lines returns the number of statements executed so far
func (s *Session) Lines() int {
	return s.lines
}

// HandleLine processes one input line and returns the text to show.
// quit is set when the line asked to end the session.
func (s *Session) HandleLine(line string) (output string, quit bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return "", false
	}

	if strings.HasPrefix(input, ":") {
		return s.handleCommand(input)
	}

	if s.options.ScopeMode == ScopeLine {
		s.engine.Reset()
	}

	s.lines++
	result, err := s.engine.Execute(input)
	if err != nil {
		return "error: " + err.Error(), false
	}

	if s.showAST {
		return result.Tree() + result.Value.String(), false
	}
	return result.Value.String(), false
}

func (s *Session) handleCommand(input string) (string, bool) {
	switch strings.ToLower(input) {
	case ":quit", ":q":
		s.logger.Debug("Session ended by command", mdwlog.Fields{"lines": s.lines})
		return "", true

	case ":ast":
		s.showAST = !s.showAST
		if s.showAST {
			return "syntax tree dump on", false
		}
		return "syntax tree dump off", false

	case ":scope":
		var b strings.Builder
		for i, binding := range s.engine.Bindings() {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s = %s", binding.Name, binding.Value)
		}
		return b.String(), false

	case ":reset":
		s.engine.Reset()
		return "scope reset", false

	case ":help":
		return helpText, false

	default:
		return fmt.Sprintf("error: unknown command %s (try :help)", input), false
	}
}

// Run reads lines from in until EOF, :quit or cancellation of ctx.
// The prompt and all output go to out. EOF ends the session without error.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Debug("Session started", mdwlog.Fields{
		"scope":   string(s.options.ScopeMode),
		"showAST": s.showAST,
	})

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(out, s.options.Prompt); err != nil {
			return mdwerror.Wrap(err, "failed to write prompt").
				WithCode(mdwerror.CodeInternal).
				WithOperation("repl.Run")
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return mdwerror.Wrap(err, "failed to read input").
					WithCode(mdwerror.CodeInternal).
					WithOperation("repl.Run")
			}
			fmt.Fprintln(out)
			s.logger.Debug("Session ended at end of input", mdwlog.Fields{"lines": s.lines})
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		output, quit := s.HandleLine(scanner.Text())
		if output != "" {
			if _, err := fmt.Fprintln(out, output); err != nil {
				return mdwerror.Wrap(err, "failed to write output").
					WithCode(mdwerror.CodeInternal).
					WithOperation("repl.Run")
			}
		}
		if quit {
			return nil
		}
	}
}
