// Package config loads the plax user configuration.
//
// The file is TOML by default:
//
//	save_dir = 'D:\Saves\Circuit'
//	wire_color = "red"
//	lock_style = "auto"
//	backup_days = 14
//
// Files ending in .yaml or .yml are read as YAML with the same keys.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/sav"
)

const appName = "plax"

// Config holds user preferences. Empty fields fall back to defaults.
type Config struct {
	// SaveDir replaces the game's save directory.
	SaveDir string `toml:"save_dir" yaml:"save_dir"`

	// WireColor is the colour of wires created without --color.
	WireColor string `toml:"wire_color" yaml:"wire_color"`

	// LockStyle forces a lock convention (auto, property or flag).
	LockStyle string `toml:"lock_style" yaml:"lock_style"`

	// BackupDir is where snapshots of overwritten saves are kept.
	BackupDir string `toml:"backup_dir" yaml:"backup_dir"`

	// BackupDays is how long snapshots are kept; negative keeps them forever.
	BackupDays int `toml:"backup_days" yaml:"backup_days"`

	// NoBackup disables snapshots.
	NoBackup bool `toml:"no_backup" yaml:"no_backup"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, plaxerr.Wrap(plaxerr.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, plaxerr.Wrap(plaxerr.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDefault reads the file at DefaultPath, returning Default when it does
// not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if plaxerr.Is(err, plaxerr.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath returns $XDG_CONFIG_HOME/plax/config.toml, falling back to
// ~/.config/plax/config.toml.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultBackupDir returns $XDG_CACHE_HOME/plax/backups, falling back to
// ~/.cache/plax/backups.
func DefaultBackupDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName, "backups"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName, "backups"), nil
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := sav.ParseWireColor(c.WireColor); err != nil {
		return err
	}
	if _, err := sav.ParseLockStyle(c.LockStyle); err != nil {
		return err
	}
	return nil
}

// Wire returns the configured default wire colour.
func (c *Config) Wire() sav.WireColor {
	color, err := sav.ParseWireColor(c.WireColor)
	if err != nil {
		return sav.DefaultWireColor
	}
	return color
}

// Lock returns the configured lock convention.
func (c *Config) Lock() sav.LockStyle {
	style, _ := sav.ParseLockStyle(c.LockStyle)
	return style
}

// BackupTTL converts BackupDays to a duration for the backup store.
func (c *Config) BackupTTL() time.Duration {
	if c.BackupDays < 0 {
		return -1
	}
	return time.Duration(c.BackupDays) * 24 * time.Hour
}

func (c *Config) applyDefaults() {
	if c.WireColor == "" {
		c.WireColor = sav.DefaultWireColor.Name()
	}
	if c.LockStyle == "" {
		c.LockStyle = sav.LockAuto.String()
	}
	if c.BackupDays == 0 {
		c.BackupDays = 30
	}
	if c.BackupDir == "" {
		c.BackupDir, _ = DefaultBackupDir()
	}
}
