package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/willibrandon/botlog"
)

// CreateLoggerFromFile creates a console logger from a config file and the
// environment.
func CreateLoggerFromFile(filename string) (*botlog.Logger, error) {
	cfg, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return Build(cfg)
}

// CreateLoggerFromEnvironment creates a console logger from botlog.<ext> and
// botlog.<environment>.<ext> in dir, either of which may be missing. The
// environment file overrides the base file; variables override both.
func CreateLoggerFromEnvironment(dir, environment string) (*botlog.Logger, error) {
	v := NewViper()
	v.AddConfigPath(dir)

	v.SetConfigName("botlog")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to load base configuration: %w", err)
	}

	if environment != "" {
		v.SetConfigName("botlog." + environment)
		if err := v.MergeInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to load environment configuration: %w", err)
		}
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// DefaultConfigPath returns $HOME/.config/botlog/config.yaml, or "" when it
// does not exist.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "botlog", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
