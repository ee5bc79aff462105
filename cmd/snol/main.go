package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"snol/interpreter-go/pkg/driver"
	"snol/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "snol 0.1.0-dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

type cliOptions struct {
	configPath  string
	commands    []string
	scripts     []string
	traceTokens bool
	dumpAST     bool
	quiet       bool
	noColor     bool
	help        bool
	version     bool
}

// parseArgs reads flags from argv; argv[0] is the program name.
func parseArgs(argv []string) (*cliOptions, error) {
	opts, optind, err := getopt.Getopts(argv, "c:e:tanqhV")
	if err != nil {
		return nil, err
	}
	cli := &cliOptions{}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			cli.configPath = opt.Value
		case 'e':
			cli.commands = append(cli.commands, opt.Value)
		case 't':
			cli.traceTokens = true
		case 'a':
			cli.dumpAST = true
		case 'n':
			cli.noColor = true
		case 'q':
			cli.quiet = true
		case 'h':
			cli.help = true
		case 'V':
			cli.version = true
		}
	}
	cli.scripts = append(cli.scripts, argv[optind:]...)
	return cli, nil
}

func run(argv []string, stdin *os.File, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "snol: ", 0)

	cli, err := parseArgs(argv)
	if err != nil {
		logger.Println(err)
		printUsage(stderr)
		return exitUsage
	}
	if cli.help {
		printUsage(stdout)
		return exitOK
	}
	if cli.version {
		fmt.Fprintln(stdout, cliToolVersion)
		return exitOK
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Printf("resolve working directory: %v", err)
		return exitFailure
	}
	cfg, err := driver.FindConfig(cli.configPath, wd)
	if err != nil {
		logger.Println(err)
		return exitFailure
	}
	applyFlags(cfg, cli)

	source, closeSource, err := openSource(cfg, cli, stdin, stdout)
	if err != nil {
		logger.Println(err)
		return exitFailure
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Println(err)
		}
	}()

	sess := driver.NewSession(driver.SessionOptions{
		Config:   cfg,
		Source:   source,
		Output:   stdout,
		Reporter: newReporter(stderr, cfg.Color),
	})

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(sigc)
		close(sigc)
	}()
	go watchSignals(sigc, sess)

	if err := sess.Run(context.Background()); err != nil {
		logger.Println(err)
		return exitFailure
	}
	return exitOK
}

// watchSignals stops the session after its current line on the first signal.
// A read blocked on the terminal cannot be abandoned safely, so a second
// signal exits at once.
func watchSignals(sigc <-chan os.Signal, sess *driver.Session) {
	if _, ok := <-sigc; !ok {
		return
	}
	sess.Stop()
	if _, ok := <-sigc; ok {
		os.Exit(exitInterrupted)
	}
}

func applyFlags(cfg *driver.Config, cli *cliOptions) {
	if cli.traceTokens {
		cfg.TraceTokens = true
	}
	if cli.dumpAST {
		cfg.DumpAST = true
	}
	if cli.quiet {
		cfg.Quiet = true
	}
	if cli.noColor {
		cfg.Color = driver.ColorNever
	}
}

// openSource picks the line source: queued -e commands and scripts, an
// interactive terminal, or plain stdin.
func openSource(cfg *driver.Config, cli *cliOptions, stdin *os.File, stdout io.Writer) (interpreter.LineSource, func() error, error) {
	noop := func() error { return nil }
	if len(cli.commands) > 0 || len(cli.scripts) > 0 {
		src := driver.NewScriptSource(stdout, cli.commands...)
		for _, path := range cli.scripts {
			if err := src.AddFile(path); err != nil {
				return nil, nil, err
			}
		}
		return src, noop, nil
	}
	if stdin == nil {
		return driver.NewScriptSource(stdout), noop, nil
	}
	if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
		history, err := driver.ExpandHome(cfg.HistoryFile)
		if err != nil {
			return nil, nil, err
		}
		src := driver.NewTerminalSource(stdout, history)
		return src, src.Close, nil
	}
	return driver.NewReaderSource(stdin, stdout), noop, nil
}

// newReporter colors errors only when writing to a file descriptor that
// auto mode can inspect.
func newReporter(w io.Writer, mode driver.ColorMode) *driver.Reporter {
	if f, ok := w.(*os.File); ok {
		return driver.NewReporter(w, mode, f.Fd())
	}
	if mode == driver.ColorAuto {
		mode = driver.ColorNever
	}
	return driver.NewReporter(w, mode, 0)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: snol [-c config] [-e command]... [-t] [-a] [-q] [-n] [-h] [-V] [script ...]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "options:")
	fmt.Fprintln(w, "  -c FILE     read settings from FILE (default $SNOL_CONFIG or ./snol.yml)")
	fmt.Fprintln(w, "  -e COMMAND  run COMMAND; may be repeated, runs before scripts")
	fmt.Fprintln(w, "  -t          print the tokens of every line")
	fmt.Fprintln(w, "  -a          print the syntax tree of every line as YAML")
	fmt.Fprintln(w, "  -q          suppress the banner and farewell")
	fmt.Fprintln(w, "  -n          disable colored error output")
	fmt.Fprintln(w, "  -h          show this help")
	fmt.Fprintln(w, "  -V          print version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Without commands or scripts, snol reads from the terminal or stdin.")
	fmt.Fprintln(w, "Enter EXIT! to leave an interactive session.")
}
