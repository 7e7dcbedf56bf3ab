package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

type (
	// Config holds the application settings read from config.yml.
	Config struct {
		Paths         Paths              `mapstructure:"-"`
		Messages      MessageConfig      `mapstructure:"messages"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		Timer         Settings           `mapstructure:"timer"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// MessageConfig holds the notification text shown when a session of
	// each mode completes.
	MessageConfig struct {
		Work      string `mapstructure:"work"`
		Break     string `mapstructure:"break"`
		LongBreak string `mapstructure:"long_break"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd          string `mapstructure:"cmd"`
		HistoryLimit int    `mapstructure:"history_limit"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// Paths holds the locations of the files managed by studyfocus.
	Paths struct {
		ConfigFile string
		DBFile     string
		LogFile    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const configDir = "studyfocus"

// Message returns the completion message for mode.
func (m MessageConfig) Message(mode Mode) string {
	switch mode {
	case Break:
		return m.Break
	case LongBreak:
		return m.LongBreak
	default:
		return m.Work
	}
}

// ResolvePaths computes the config, database and log file locations under
// the XDG base directories. FOCUS_ENV, if set, is appended to every file
// name so that separate environments do not share state.
func ResolvePaths() (Paths, error) {
	configFileName := "config.yml"
	dbFileName := "studyfocus.db"
	logFileName := "studyfocus.log"

	focusEnv := strings.TrimSpace(os.Getenv("FOCUS_ENV"))
	if focusEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", focusEnv)
		dbFileName = fmt.Sprintf("studyfocus_%s.db", focusEnv)
		logFileName = fmt.Sprintf("studyfocus_%s.log", focusEnv)
	}

	var (
		p   Paths
		err error
	)

	p.ConfigFile, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
	if err != nil {
		return p, errResolvePaths.Wrap(err)
	}

	p.DBFile, err = xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		return p, errResolvePaths.Wrap(err)
	}

	p.LogFile, err = xdg.DataFile(filepath.Join(configDir, "log", logFileName))
	if err != nil {
		return p, errResolvePaths.Wrap(err)
	}

	return p, nil
}

// WithPaths returns an Option that records the resolved file paths.
func WithPaths(p Paths) Option {
	return func(c *Config) error {
		c.Paths = p
		return nil
	}
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}
