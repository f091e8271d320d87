package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errConfigValue = errors.New("invalid config value")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "keychain-tui"
	DefaultConfigName = "keychain-tui"
	DefaultDBName     = "keychain-tui.db"
	DefaultLogName    = "keychain-tui.log"
	EnvPrefix         = "keychain"
	DefaultLocale     = "en"
)

type Config struct {
	// Locale selects the message catalogue used for menu labels and titles.
	Locale   string `mapstructure:"locale"`
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"debug"`
	// MouseEnabled turns on mouse support so drawer items can be clicked.
	MouseEnabled      bool `mapstructure:"mouse_enabled"`
	FPS               int  `mapstructure:"fps"`
	NoticeTimeoutSecs int  `mapstructure:"notice_timeout_secs"`
	// DatabasePath overrides the location of the sqlite database. Empty means the default
	// path under $XDG_CONFIG_HOME.
	DatabasePath string `mapstructure:"database_path"`
}

// NoticeTimeout is how long a notification stays in the status bar.
func (c Config) NoticeTimeout() time.Duration {
	if c.NoticeTimeoutSecs <= 0 {
		return 10 * time.Second
	}

	return time.Duration(c.NoticeTimeoutSecs) * time.Second
}

func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

func (c Config) DBPath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}

	return Path(DefaultDBName)
}

// ParseLevel converts a config level name into a slog.Level.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Join(errConfigValue, errors.New("unknown log level: "+value))
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
