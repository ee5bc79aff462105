package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edwingeng/deque"
	"github.com/peterh/liner"

	"snol/interpreter-go/pkg/interpreter"
)

// ErrInterrupted is returned by a line source when the user aborts the
// current line (Ctrl-C at a terminal prompt).
var ErrInterrupted = errors.New("driver: line interrupted")

var (
	_ interpreter.LineSource = (*TerminalSource)(nil)
	_ interpreter.LineSource = (*ScriptSource)(nil)
	_ interpreter.LineSource = (*ReaderSource)(nil)
)

// TerminalSource reads from an interactive terminal with line editing and
// history.
type TerminalSource struct {
	state       *liner.State
	out         io.Writer
	historyPath string
}

// NewTerminalSource takes over the terminal. historyPath may be empty to
// disable history; a missing history file is not an error. Close must be
// called to restore the terminal.
func NewTerminalSource(out io.Writer, historyPath string) *TerminalSource {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	src := &TerminalSource{state: state, out: out, historyPath: historyPath}
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return src
}

// ReadLine prompts for one line. liner only renders single-line prompts, so
// anything up to the last newline of prompt is written to out first.
func (s *TerminalSource) ReadLine(prompt string) (string, error) {
	if idx := strings.LastIndex(prompt, "\n"); idx >= 0 {
		fmt.Fprint(s.out, prompt[:idx+1])
		prompt = prompt[idx+1:]
	}
	line, err := s.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		s.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (s *TerminalSource) Close() error {
	var saveErr error
	if s.historyPath != "" {
		if f, err := os.Create(s.historyPath); err == nil {
			if _, err := s.state.WriteHistory(f); err != nil {
				saveErr = fmt.Errorf("write history %s: %w", s.historyPath, err)
			}
			_ = f.Close()
		} else {
			saveErr = fmt.Errorf("create history %s: %w", s.historyPath, err)
		}
	}
	if err := s.state.Close(); err != nil {
		return err
	}
	return saveErr
}

// ScriptSource replays queued lines, echoing each after its prompt so the
// transcript reads like an interactive session.
type ScriptSource struct {
	pending deque.Deque
	out     io.Writer
}

func NewScriptSource(out io.Writer, lines ...string) *ScriptSource {
	if out == nil {
		out = io.Discard
	}
	src := &ScriptSource{pending: deque.NewDeque(), out: out}
	src.Add(lines...)
	return src
}

// Add queues lines behind any already pending.
func (s *ScriptSource) Add(lines ...string) {
	for _, line := range lines {
		s.pending.PushBack(line)
	}
}

// AddReader queues every line of r.
func (s *ScriptSource) AddReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.Add(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return scanner.Err()
}

// AddFile queues every line of the file at path.
func (s *ScriptSource) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()
	if err := s.AddReader(f); err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}
	return nil
}

// Len reports the number of lines not yet read.
func (s *ScriptSource) Len() int {
	return s.pending.Len()
}

func (s *ScriptSource) ReadLine(prompt string) (string, error) {
	if s.pending.Empty() {
		return "", io.EOF
	}
	line := s.pending.PopFront().(string)
	fmt.Fprintf(s.out, "%s%s\n", prompt, line)
	return line, nil
}

// ReaderSource reads lines from a non-interactive stream such as piped stdin.
type ReaderSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReaderSource(r io.Reader, out io.Writer) *ReaderSource {
	if out == nil {
		out = io.Discard
	}
	return &ReaderSource{scanner: bufio.NewScanner(r), out: out}
}

func (s *ReaderSource) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}
