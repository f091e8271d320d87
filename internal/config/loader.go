package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Writer persists a config, used by the settings page.
type Writer interface {
	Write(config Config) error
	Path() string
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader. When configFile is empty the config is searched for under
// $XDG_CONFIG_HOME and the working directory.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("locale", DefaultLocale)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("debug", false)
	loader.SetDefault("mouse_enabled", true)
	loader.SetDefault("fps", 30)
	loader.SetDefault("notice_timeout_secs", 10)
	loader.SetDefault("database_path", "")
	loader.SetConfigType("yaml")

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}

	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file for external edits. Changes are sent over the changes
// channel given to NewLoader.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	if used := cl.ConfigFileUsed(); used != "" {
		return used
	}

	return Path(DefaultConfigName + ".yaml")
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	if _, err := ParseLevel(config.LogLevel); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	cl.Set("locale", config.Locale)
	cl.Set("log_level", config.LogLevel)
	cl.Set("debug", config.Debug)
	cl.Set("mouse_enabled", config.MouseEnabled)
	cl.Set("fps", config.FPS)
	cl.Set("notice_timeout_secs", config.NoticeTimeoutSecs)
	cl.Set("database_path", config.DatabasePath)

	if cl.ConfigFileUsed() == "" {
		if err := cl.WriteConfigAs(cl.Path()); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config. A missing config file is not an error, defaults are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.Locale == "" {
		config.Locale = DefaultLocale
	}

	if _, err := ParseLevel(config.LogLevel); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
