package ui

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/result"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/views"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var (
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyMenu  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}
	keyHelp  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}
)

// collect runs cmd and flattens batches. Commands that block, like timers, are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var msgs []tea.Msg
			for _, inner := range msg {
				msgs = append(msgs, collect(inner)...)
			}

			return msgs
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// pump feeds msgs to the model along with everything their commands produce.
func pump(m *rootModel, msgs ...tea.Msg) []tea.Msg {
	var seen []tea.Msg

	queue := msgs
	for depth := 0; len(queue) > 0 && depth < 8; depth++ {
		var next []tea.Msg
		for _, msg := range queue {
			seen = append(seen, msg)
			_, cmd := m.Update(msg)
			next = append(next, collect(cmd)...)
		}
		queue = next
	}

	return seen
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}

	return false
}

func newQueries(t *testing.T) *store.Queries {
	t.Helper()

	conn, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return store.New(conn)
}

func newTestRoot(t *testing.T, queries *store.Queries, signal nav.StartupSignal) *rootModel {
	t.Helper()

	root := newRootModel(t.Context(), Options{
		Config:   config.Config{DatabasePath: ":memory:", NoticeTimeoutSecs: 30},
		Queries:  queries,
		Signal:   signal,
		CopyText: func(string) error { return nil },
	})

	pump(root, tea.WindowSizeMsg{Width: 100, Height: 30})
	pump(root, collect(root.Init())...)

	return root
}

func TestStartShowsKeys(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{})

	require.Equal(t, model.PageHost, root.viewState.Page)
	require.Equal(t, nav.KeysOverview, root.host.CurrentKind())

	keys, ok := root.host.Current().(*views.Keys)
	require.True(t, ok)
	require.True(t, keys.Attached())
	require.Contains(t, root.View(), "No keys yet")
}

func TestFirstRunSetupStartsHost(t *testing.T) {
	queries := newQueries(t)
	root := newTestRoot(t, queries, nav.StartupSignal{FirstRun: true})

	require.Nil(t, root.host)
	require.Equal(t, model.PageSetup, root.viewState.Page)
	require.True(t, root.setup.FirstRun())

	pump(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Alice")})
	pump(root, keyEnter)
	pump(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("alice@example.com")})
	pump(root, keyEnter)
	pump(root, keyEnter)

	require.Equal(t, model.PageHost, root.viewState.Page)
	require.NotNil(t, root.host)
	require.Equal(t, nav.KeysOverview, root.host.CurrentKind())
	require.Equal(t, "Welcome, Alice", root.status.message)

	firstTime, err := queries.IsFirstTime(t.Context())
	require.NoError(t, err)
	require.False(t, firstTime)

	keys, err := queries.ListKeys(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, "Alice <alice@example.com>", keys[0].UserID())
	require.Contains(t, root.View(), "Alice <alice@example.com>")
}

func TestSetupBackspaceEditsName(t *testing.T) {
	queries := newQueries(t)
	root := newTestRoot(t, queries, nav.StartupSignal{FirstRun: true})

	pump(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Alx")})
	msgs := pump(root, tea.KeyMsg{Type: tea.KeyBackspace})
	require.False(t, hasQuit(msgs))
	require.Equal(t, model.PageSetup, root.viewState.Page)

	pump(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ice")})
	pump(root, keyEnter, keyEnter, keyEnter)
	require.Equal(t, model.PageHost, root.viewState.Page)

	keys, err := queries.ListKeys(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, "Alice", keys[0].Name)
}

func TestSettingsBackspaceKeepsPageOpen(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{})

	pump(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("S")})
	require.Equal(t, model.PageSettings, root.viewState.Page)

	msgs := pump(root, tea.KeyMsg{Type: tea.KeyBackspace})
	require.False(t, hasQuit(msgs))
	require.Equal(t, model.PageSettings, root.viewState.Page)
}

func TestFirstRunEscQuits(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{FirstRun: true})

	require.True(t, hasQuit(pump(root, keyEsc)))
}

func TestPendingResultRaisesFab(t *testing.T) {
	pending := result.OperationResult{Operation: "import", Code: result.CodeOK, Count: 2}
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{PendingResult: pending})

	require.Equal(t, pending.Notification(), root.status.message)
	require.False(t, root.status.isErr)

	keys := root.host.Current().(*views.Keys)
	require.Equal(t, 1, keys.Offset())
	require.Contains(t, root.View(), pending.Notification())

	// A stale timer does not clear a newer message.
	pump(root, command.ClearStatusMessageMsg{ID: root.status.id - 1})
	require.True(t, root.status.active())

	pump(root, command.ClearStatusMessageMsg{ID: root.status.id})
	require.False(t, root.status.active())
	require.Zero(t, keys.Offset())
}

func TestResizeRaisesFabOverWrappedSnackbar(t *testing.T) {
	pending := result.OperationResult{Operation: "import", Code: result.CodeWarning, Log: []result.LogEntry{
		{Level: result.LevelWarn, Message: "three keys were skipped because their self signatures expired"},
	}}
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{PendingResult: pending})

	keys := root.host.Current().(*views.Keys)
	require.Equal(t, 1, keys.Offset())

	pump(root, tea.WindowSizeMsg{Width: 24, Height: 30})
	require.Greater(t, root.status.snackbarHeight(), 1)
	require.Equal(t, root.status.snackbarHeight(), keys.Offset())
}

func TestDrawerSelectAndBack(t *testing.T) {
	queries := newQueries(t)
	root := newTestRoot(t, queries, nav.StartupSignal{})

	require.NotContains(t, root.View(), "menu_preferences")
	pump(root, keyMenu)
	require.True(t, root.host.Drawer().IsOpen())
	require.Contains(t, root.View(), "menu_preferences")

	pump(root, keyDown, keyDown, keyEnter)
	require.False(t, root.host.Drawer().IsOpen())
	require.Equal(t, nav.AppsOverview, root.host.CurrentKind())
	require.Equal(t, "nav_apps", root.host.Title())
	require.Contains(t, root.View(), "No apps registered")

	msgs := pump(root, keyEsc)
	require.False(t, hasQuit(msgs))
	require.Equal(t, nav.KeysOverview, root.host.CurrentKind())

	require.True(t, hasQuit(pump(root, keyEsc)))

	saved, err := queries.LoadUIState(t.Context())
	require.NoError(t, err)
	require.Equal(t, "3", saved["drawer.selected"])
	require.Equal(t, "false", saved["drawer.open"])
	require.NotEmpty(t, saved[keySavedAt])
}

func TestBackClosesDrawerBeforeExit(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{})

	pump(root, keyMenu)
	require.False(t, hasQuit(pump(root, keyEsc)))
	require.False(t, root.host.Drawer().IsOpen())
	require.True(t, hasQuit(pump(root, keyEsc)))
}

func TestDrawerLaunchesSettings(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{})
	displayed := root.host.Current()

	pump(root, keyMenu, keyDown, keyDown, keyDown, keyEnter)
	require.Equal(t, model.PageSettings, root.viewState.Page)

	pump(root, keyEsc)
	require.Equal(t, model.PageHost, root.viewState.Page)
	require.Same(t, displayed, root.host.Current())
	require.Equal(t, nav.ItemSettings, root.host.Drawer().Selected())
}

func TestHelpToggles(t *testing.T) {
	root := newTestRoot(t, newQueries(t), nav.StartupSignal{})

	pump(root, keyHelp)
	require.Equal(t, model.PageHelp, root.viewState.Page)
	require.Contains(t, root.View(), "Database Path")

	pump(root, keyHelp)
	require.Equal(t, model.PageHost, root.viewState.Page)
}

func TestOverlayBottom(t *testing.T) {
	require.Equal(t, "a\nb\nX", overlayBottom("a\nb\nc", "X"))
	require.Equal(t, "X", overlayBottom("a", "X\nY"))
	require.Equal(t, "a", overlayBottom("a", ""))
}
