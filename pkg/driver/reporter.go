package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"snol/interpreter-go/pkg/interpreter"
	"snol/interpreter-go/pkg/parser"
)

const outputPrefix = "SNOL> "

// Reporter writes diagnostics and runtime errors to the error sink.
type Reporter struct {
	w         io.Writer
	err       *color.Color
	hint      *color.Color
	locations bool
}

// NewReporter builds a reporter for w. Color is decided once, from mode and,
// in auto mode, whether fd refers to a terminal.
func NewReporter(w io.Writer, mode ColorMode, fd uintptr) *Reporter {
	r := &Reporter{
		w:    w,
		err:  color.New(color.FgRed),
		hint: color.New(color.FgYellow),
	}
	if ColorEnabled(mode, fd) {
		r.err.EnableColor()
		r.hint.EnableColor()
	} else {
		r.err.DisableColor()
		r.hint.DisableColor()
	}
	return r
}

// ColorEnabled resolves a color mode against the file descriptor it will be
// written to.
func ColorEnabled(mode ColorMode, fd uintptr) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// ShowLocations appends the column of the offending lexeme to diagnostics.
func (r *Reporter) ShowLocations(on bool) {
	r.locations = on
}

// Diagnostics reports every scan or parse diagnostic of a line.
func (r *Reporter) Diagnostics(diags parser.Diagnostics) {
	for _, d := range diags {
		msg := outputPrefix + d.Error()
		if r.locations {
			msg += " (" + d.Where() + ")"
		}
		r.err.Fprintln(r.w, msg)
	}
}

// Error reports a failure raised while evaluating a line. Runtime errors
// carry their own wording; anything else is shown as-is.
func (r *Reporter) Error(err error) {
	var rerr *interpreter.RuntimeError
	if !errors.As(err, &rerr) {
		r.err.Fprintln(r.w, fmt.Sprintf("%s%v", outputPrefix, err))
		return
	}
	r.err.Fprintln(r.w, outputPrefix+rerr.Message)
	if hint := rerr.Suggestion(); hint != "" {
		r.hint.Fprintln(r.w, outputPrefix+hint)
	}
}
