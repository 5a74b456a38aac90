package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ExplicitDir(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected Dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.LogPath() != filepath.Join(dir, "todo.log") {
		t.Errorf("unexpected log path %q", cfg.LogPath())
	}
}

func TestNew_LogLevelFromEnv(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "info")
	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
}

func TestNew_LogLevelDefault(t *testing.T) {
	os.Unsetenv("TODO_LOG_LEVEL")
	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.LogLevel)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", "todo") {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestDataPath_Fixed(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	if cfg.DataPath() != "tasks.txt" {
		t.Errorf("expected tasks.txt, got %q", cfg.DataPath())
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "todo")
	cfg := &Config{Dir: dir}
	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNew_EnvFile(t *testing.T) {
	unsetEnv(t, "TODO_LOG_LEVEL")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte("TODO_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug from .env, got %q", cfg.LogLevel)
	}
}

func TestNew_EnvironmentOverridesEnvFile(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "error")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte("TODO_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected environment to win, got %q", cfg.LogLevel)
	}
}

func TestNew_UnreadableEnvFile(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read.
	if err := os.Mkdir(filepath.Join(dir, EnvFile), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := New(dir); err == nil {
		t.Error("expected error for unreadable .env")
	}
}
