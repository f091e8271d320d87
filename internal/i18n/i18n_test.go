package i18n_test

import (
	"testing"

	"github.com/openkeychain/keychain-tui/internal/i18n"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	english, err := i18n.New("en")
	require.NoError(t, err)
	require.Equal(t, "Encrypt/Decrypt", english.Label(nav.MsgNavEncrypt))
	require.Equal(t, "not_a_message", english.Label("not_a_message"))

	german, err := i18n.New("de")
	require.NoError(t, err)
	require.Equal(t, "Hilfe", german.Label(nav.MsgHelp))

	fallback, err := i18n.New("fr")
	require.NoError(t, err)
	require.Equal(t, "Settings", fallback.Label(nav.MsgPreferences))
}

func TestMenuUsesLabels(t *testing.T) {
	german, err := i18n.New("de")
	require.NoError(t, err)

	primary, sticky := nav.DefaultMenu(german.Label)
	require.Equal(t, "Registrierte Apps", primary[2].Label)
	require.Equal(t, "Einstellungen", sticky[0].Label)
	require.Equal(t, "Schlüssel", nav.DefaultTitles(german.Label)(nav.KeysOverview))
}
