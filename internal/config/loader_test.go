package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	loader := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml"))

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, config.DefaultLocale, conf.Locale)
	require.True(t, conf.MouseEnabled)
	require.Equal(t, 30, conf.FPS)
	require.Equal(t, 10*time.Second, conf.NoticeTimeout())
	require.Equal(t, slog.LevelInfo, conf.Level())
}

func TestReadFileAndEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "keychain-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("locale: de\nlog_level: debug\nnotice_timeout_secs: 3\n"), 0o600))
	t.Setenv("KEYCHAIN_MOUSE_ENABLED", "false")

	conf, err := config.NewLoader(nil, configPath).Read()
	require.NoError(t, err)
	require.Equal(t, "de", conf.Locale)
	require.Equal(t, slog.LevelDebug, conf.Level())
	require.Equal(t, 3*time.Second, conf.NoticeTimeout())
	require.False(t, conf.MouseEnabled)
}

func TestReadInvalidLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "keychain-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: chatty\n"), 0o600))

	_, err := config.NewLoader(nil, configPath).Read()
	require.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "keychain-tui.yaml")
	loader := config.NewLoader(nil, configPath)

	conf, err := loader.Read()
	require.NoError(t, err)

	conf.Locale = "de"
	conf.MouseEnabled = false
	conf.NoticeTimeoutSecs = 5
	require.NoError(t, loader.Write(conf))
	require.Equal(t, configPath, loader.Path())

	reread, err := config.NewLoader(nil, configPath).Read()
	require.NoError(t, err)
	require.Equal(t, conf, reread)

	conf.LogLevel = "loud"
	require.Error(t, loader.Write(conf))
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, level)

	_, err = config.ParseLevel("nope")
	require.Error(t, err)
}
