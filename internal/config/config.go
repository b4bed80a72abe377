// Package config is responsible for setting the program config from the
// config file and command-line arguments.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Journey      JourneyConfig
		Notification NotificationConfig
		Stats        StatsConfig
		Display      DisplayConfig
		System       SystemConfig
	}

	// JourneyConfig holds journey-related settings.
	JourneyConfig struct {
		DefaultDuration time.Duration
		DefaultOrigin   string
		DefaultDest     string
	}

	// NotificationConfig holds arrival notification settings.
	NotificationConfig struct {
		Enabled bool
		Sound   string
	}

	// StatsConfig holds statistics policy settings.
	StatsConfig struct {
		// CountInterrupted includes interrupted journeys in the focus
		// totals. They never count toward the streak.
		CountInterrupted bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
		SessionCmd string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "railfocus"
	configFileName = "config.yml"
	dbFileName     = "railfocus.db"
	logFileName    = "railfocus.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, data, and log paths through xdg.
// RAILFOCUS_ENV suffixes the file names so test runs never touch real data.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("RAILFOCUS_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("railfocus_%s.db", env)
		logFileName = fmt.Sprintf("railfocus_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		System: SystemConfig{
			ConfigPath: configFilePath,
			DBPath:     dbFilePath,
			LogPath:    logFilePath,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}
