package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
prompt: "snol> "
exit_command: QUIT
banner: ""
color: NEVER
suggestions: false
trace_tokens: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Prompt != "snol> " || cfg.ExitCommand != "QUIT" {
		t.Fatalf("unexpected prompt/exit %q %q", cfg.Prompt, cfg.ExitCommand)
	}
	if cfg.Banner != "" {
		t.Fatalf("explicit empty banner should disable it, got %q", cfg.Banner)
	}
	if cfg.Color != ColorNever {
		t.Fatalf("expected color never, got %q", cfg.Color)
	}
	if cfg.SuggestionLimit() != 0 || !cfg.TraceTokens {
		t.Fatalf("unexpected switches %+v", cfg)
	}
	if cfg.InputPrompt != DefaultInputPrompt || cfg.HistoryFile != DefaultHistoryFile {
		t.Fatalf("unset keys should keep defaults, got %+v", cfg)
	}
	if cfg.Path != path {
		t.Fatalf("expected path %q, got %q", path, cfg.Path)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Prompt != DefaultPrompt || cfg.Banner != DefaultBanner || !cfg.Suggestions {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "promt: x\n")
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "promt") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "prompt: \"\"\nexit_command: \"  \"\ncolor: rainbow\n")
	_, err := LoadConfig(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %v", verr.Issues)
	}
	if !strings.HasPrefix(verr.Error(), "config validation failed:") {
		t.Fatalf("unexpected message %q", verr.Error())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestResolveConfigPathOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigEnvVar, "")

	got, err := ResolveConfigPath("", dir)
	if err != nil || got != "" {
		t.Fatalf("expected no config, got %q (%v)", got, err)
	}

	local := writeConfig(t, dir, "quiet: true\n")
	if got, _ := ResolveConfigPath("", dir); got != local {
		t.Fatalf("expected %q, got %q", local, got)
	}

	t.Setenv(ConfigEnvVar, "/from/env.yml")
	if got, _ := ResolveConfigPath("", dir); got != "/from/env.yml" {
		t.Fatalf("env should win over local file, got %q", got)
	}
	if got, _ := ResolveConfigPath("explicit.yml", dir); got != "explicit.yml" {
		t.Fatalf("explicit path should win, got %q", got)
	}
}

func TestFindConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	cfg, err := FindConfig("", t.TempDir())
	if err != nil {
		t.Fatalf("FindConfig returned error: %v", err)
	}
	if cfg.Path != "" || cfg.ExitCommand != DefaultExitCommand {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ExpandHome("~/.snol_history")
	if err != nil {
		t.Fatalf("ExpandHome returned error: %v", err)
	}
	if want := filepath.Join(home, ".snol_history"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
