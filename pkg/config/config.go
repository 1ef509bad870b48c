// Package config loads pathmaster settings from layered sources:
// embedded defaults, then the user's config file, then PATHMASTER_*
// environment variables, each layer overriding the previous one.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/pathenv"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// BackupSettings controls where PATH snapshots go and how many the
// history command shows.
type BackupSettings struct {
	Dir          string `koanf:"dir" toml:"dir"`
	HistoryLimit int    `koanf:"history_limit" toml:"history_limit"`
}

// ShellSettings overrides shell-related defaults.
type ShellSettings struct {
	// ConfigFile overrides the detected startup file location.
	ConfigFile string `koanf:"config_file" toml:"config_file"`
}

// Settings is the resolved pathmaster configuration.
type Settings struct {
	Backup BackupSettings `koanf:"backup" toml:"backup"`
	Shell  ShellSettings  `koanf:"shell" toml:"shell"`
}

// ConfigFilePath returns the user config file location,
// $XDG_CONFIG_HOME/pathmaster/config.toml.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, "pathmaster", "config.toml")
}

// DefaultBackupDir returns the backup directory used when the config
// leaves it empty: $XDG_DATA_HOME/pathmaster/backups.
func DefaultBackupDir() string {
	return filepath.Join(xdg.DataHome, "pathmaster", "backups")
}

// DefaultTOML returns the embedded default configuration, suitable for
// seeding a user config file.
func DefaultTOML() []byte {
	return defaultConfig
}

// Load resolves settings from defaults, the user config file (if any),
// and PATHMASTER_* environment variables.
func Load() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "loading default config")
	}

	configFile := ConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading %s", configFile)
		}
	}

	// PATHMASTER_BACKUP_DIR -> backup.dir; the first underscore after
	// the prefix separates section from key.
	if err := k.Load(env.Provider("PATHMASTER_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PATHMASTER_"))
		parts := strings.SplitN(s, "_", 2)
		if len(parts) == 2 {
			return parts[0] + "." + parts[1]
		}
		return s
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "decoding config")
	}

	if settings.Backup.Dir == "" {
		settings.Backup.Dir = DefaultBackupDir()
	} else {
		settings.Backup.Dir = pathenv.Expand(settings.Backup.Dir)
	}
	if settings.Shell.ConfigFile != "" {
		settings.Shell.ConfigFile = pathenv.Expand(settings.Shell.ConfigFile)
	}

	return &settings, nil
}
