package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches the test's working directory to dir and restores the
// original on cleanup, so Load's cwd-relative lookup can be exercised
// against a throwaway testdata directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })
}

func assertZeroConfig(t *testing.T, cfg Config) {
	t.Helper()
	if len(cfg.IncludePaths) != 0 || cfg.Prompt != "" || cfg.HistoryFile != "" {
		t.Fatalf("expected zero Config, got %+v", cfg)
	}
}

func TestLoad_NoConfigReturnsZeroValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvOverride, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertZeroConfig(t, cfg)
}

func TestLoad_ReadsFileInCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(EnvOverride, "")

	yaml := "include_paths:\n  - vendor/lambda\nprompt: \"lci> \"\nhistory_file: hist.db\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.IncludePaths) != 1 || cfg.IncludePaths[0] != "vendor/lambda" {
		t.Errorf("include_paths = %#v", cfg.IncludePaths)
	}
	if cfg.Prompt != "lci> " {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
	if cfg.HistoryFile != "hist.db" {
		t.Errorf("history_file = %q", cfg.HistoryFile)
	}
}

func TestLoad_FallsBackToEnvOverrideWhenNoCwdFile(t *testing.T) {
	chdir(t, t.TempDir())

	envDir := t.TempDir()
	envPath := filepath.Join(envDir, "elsewhere.yaml")
	if err := os.WriteFile(envPath, []byte("prompt: \"env> \"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	t.Setenv(EnvOverride, envPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "env> " {
		t.Errorf("prompt = %q, want env>", cfg.Prompt)
	}
}

func TestLoad_CwdFileTakesPriorityOverEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("prompt: \"cwd> \"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	envDir := t.TempDir()
	envPath := filepath.Join(envDir, "elsewhere.yaml")
	if err := os.WriteFile(envPath, []byte("prompt: \"env> \"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	t.Setenv(EnvOverride, envPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "cwd> " {
		t.Errorf("prompt = %q, want cwd> (cwd file should win)", cfg.Prompt)
	}
}

func TestLoad_MalformedCwdFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(EnvOverride, "")

	malformed := "prompt: [this is not a scalar\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(malformed), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for malformed config, got nil")
	}
}

func TestLoad_MissingEnvOverrideFileIsNotFatal(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvOverride, filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertZeroConfig(t, cfg)
}
