// Package config handles the XDG configuration directory and fixed file paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DataFile is the task list file, relative to the working directory.
	DataFile = "tasks.txt"

	// LogFile is the debug log filename inside the config directory.
	LogFile = "todo.log"

	// EnvFile holds optional settings inside the config directory.
	EnvFile = ".env"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// LogLevel is the minimum level logged when Debug is off.
	LogLevel string `env:"TODO_LOG_LEVEL" default:"warn"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings come from the environment, then from <dir>/.env for variables the
// environment leaves unset.
func New(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	envPath := filepath.Join(configDir, EnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envPath, err)
	}

	cfg := Config{Dir: configDir}
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DataPath returns the task list path. It is not configurable.
func (c *Config) DataPath() string {
	return DataFile
}

// LogPath returns the path of the debug log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
