package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is looked up in the working directory when neither -c
	// nor $SNOL_CONFIG names a file.
	ConfigFileName = "snol.yml"
	// ConfigEnvVar overrides the config file location.
	ConfigEnvVar = "SNOL_CONFIG"

	DefaultPrompt      = "\nCommand: "
	DefaultInputPrompt = "Input: "
	DefaultExitCommand = "EXIT!"
	DefaultBanner      = "The SNOL environment is now active, you may proceed with\ngiving your commands."
	DefaultHistoryFile = "~/.snol_history"

	// DefaultSuggestionLimit caps undefined-variable hints when suggestions
	// are enabled.
	DefaultSuggestionLimit = 3
)

// ColorMode selects when error output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds session settings after defaults have been applied.
type Config struct {
	// Path is the file the config was read from; empty for defaults.
	Path        string
	Prompt      string
	InputPrompt string
	ExitCommand string
	Banner      string
	Quiet       bool
	Color       ColorMode
	HistoryFile string
	Suggestions bool
	TraceTokens bool
	DumpAST     bool
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt:      DefaultPrompt,
		InputPrompt: DefaultInputPrompt,
		ExitCommand: DefaultExitCommand,
		Banner:      DefaultBanner,
		Color:       ColorAuto,
		HistoryFile: DefaultHistoryFile,
		Suggestions: true,
	}
}

// configFile mirrors the YAML layout. Pointers distinguish an absent key from
// an explicit zero value.
type configFile struct {
	Prompt      *string `yaml:"prompt"`
	InputPrompt *string `yaml:"input_prompt"`
	ExitCommand *string `yaml:"exit_command"`
	Banner      *string `yaml:"banner"`
	Quiet       *bool   `yaml:"quiet"`
	Color       *string `yaml:"color"`
	HistoryFile *string `yaml:"history_file"`
	Suggestions *bool   `yaml:"suggestions"`
	TraceTokens *bool   `yaml:"trace_tokens"`
	DumpAST     *bool   `yaml:"dump_ast"`
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	if cf.InputPrompt != nil {
		cfg.InputPrompt = *cf.InputPrompt
	}
	if cf.ExitCommand != nil {
		cfg.ExitCommand = *cf.ExitCommand
	}
	if cf.Banner != nil {
		cfg.Banner = *cf.Banner
	}
	if cf.Quiet != nil {
		cfg.Quiet = *cf.Quiet
	}
	if cf.Color != nil {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(*cf.Color)))
	}
	if cf.HistoryFile != nil {
		cfg.HistoryFile = strings.TrimSpace(*cf.HistoryFile)
	}
	if cf.Suggestions != nil {
		cfg.Suggestions = *cf.Suggestions
	}
	if cf.TraceTokens != nil {
		cfg.TraceTokens = *cf.TraceTokens
	}
	if cf.DumpAST != nil {
		cfg.DumpAST = *cf.DumpAST
	}
	return cfg
}

// LoadConfig parses a YAML config file, returning validated settings.
// Unknown keys are rejected. An empty file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs ValidationError
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if strings.TrimSpace(c.ExitCommand) == "" {
		errs.Issues = append(errs.Issues, "exit_command must not be empty")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", string(c.Color)))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// ResolveConfigPath picks the config file to load: explicit wins, then
// $SNOL_CONFIG, then snol.yml in dir. It returns "" when none applies.
func ResolveConfigPath(explicit, dir string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	if env := strings.TrimSpace(os.Getenv(ConfigEnvVar)); env != "" {
		return env, nil
	}
	candidate := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(candidate)
	switch {
	case err == nil && !info.IsDir():
		return candidate, nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: stat %s: %w", candidate, err)
	}
}

// FindConfig resolves and loads the config for dir, falling back to
// DefaultConfig when no file is found.
func FindConfig(explicit, dir string) (*Config, error) {
	path, err := ResolveConfigPath(explicit, dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// SuggestionLimit converts the suggestions switch into a hint count.
func (c *Config) SuggestionLimit() int {
	if !c.Suggestions {
		return 0
	}
	return DefaultSuggestionLimit
}
