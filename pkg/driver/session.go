package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tevino/abool/v2"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/interpreter"
	"snol/interpreter-go/pkg/parser"
)

const farewell = "\nInterpreter is now terminated..."

// SessionOptions wires a session to its collaborators.
type SessionOptions struct {
	Config *Config
	// Source feeds both commands and BEG input.
	Source interpreter.LineSource
	// Output receives the banner, PRINT output and traces.
	Output io.Writer
	// Reporter receives diagnostics and runtime errors. Defaults to an
	// uncolored reporter on Output.
	Reporter *Reporter
}

// Session runs the read-evaluate loop over one line source with one
// environment.
type Session struct {
	cfg      *Config
	source   interpreter.LineSource
	out      io.Writer
	reporter *Reporter
	interp   *interpreter.Interpreter
	stopped  *abool.AtomicBool
}

func NewSession(opts SessionOptions) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NewReporter(out, ColorNever, 0)
	}
	reporter.ShowLocations(cfg.TraceTokens)
	return &Session{
		cfg:      cfg,
		source:   opts.Source,
		out:      out,
		reporter: reporter,
		interp: interpreter.New(interpreter.Options{
			Input:       opts.Source,
			Output:      out,
			InputPrompt: cfg.InputPrompt,
			Suggestions: cfg.SuggestionLimit(),
		}),
		stopped: abool.New(),
	}
}

// Interpreter exposes the evaluator, mainly so callers can inspect the
// environment.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Stop ends Run before its next read. Safe to call from any goroutine and
// more than once.
func (s *Session) Stop() {
	s.stopped.Set()
}

// Stopped reports whether Stop has been called.
func (s *Session) Stopped() bool {
	return s.stopped.IsSet()
}

// Run prints the banner and processes commands until the exit command, end
// of input, Stop or ctx cancellation. Stop and ctx are checked before every
// read, so a read already waiting for input completes first. Diagnostics and
// runtime errors are reported and never end the session; only a failing line
// source does.
func (s *Session) Run(ctx context.Context) error {
	if s.source == nil {
		return errors.New("driver: session has no line source")
	}
	if !s.cfg.Quiet && s.cfg.Banner != "" {
		fmt.Fprintln(s.out, s.cfg.Banner)
	}
	for {
		if s.Stopped() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.source.ReadLine(s.cfg.Prompt)
		switch {
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("read command: %w", err)
		}
		if strings.TrimSpace(line) == s.cfg.ExitCommand {
			if !s.cfg.Quiet {
				fmt.Fprintln(s.out, farewell)
			}
			return nil
		}
		_ = s.ExecuteLine(line)
	}
}

// ExecuteLine scans, parses and evaluates one command line, reporting any
// failure. Diagnostics suppress evaluation of the whole line.
func (s *Session) ExecuteLine(line string) error {
	tokens, lexDiags := parser.Scan(line)
	if s.cfg.TraceTokens {
		for _, tok := range tokens {
			fmt.Fprintln(s.out, tok.String())
		}
	}
	stmts, parseDiags := parser.Parse(tokens)

	diags := make(parser.Diagnostics, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)
	if diags.HadError() {
		s.reporter.Diagnostics(diags)
		return diags
	}

	if s.cfg.DumpAST && len(stmts) > 0 {
		dump, err := ast.DumpYAML(stmts)
		if err != nil {
			s.reporter.Error(fmt.Errorf("dump syntax tree: %w", err))
		} else {
			fmt.Fprint(s.out, dump)
		}
	}

	if err := s.interp.Interpret(stmts); err != nil {
		s.reporter.Error(err)
		return err
	}
	return nil
}
