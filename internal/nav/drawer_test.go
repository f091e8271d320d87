package nav_test

import (
	"testing"

	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestDrawerCursorWraps(t *testing.T) {
	primary, sticky := nav.DefaultMenu(label)
	drawer := nav.BuildDrawer(primary, sticky, nil)

	require.Len(t, drawer.Items(), 5)
	require.Equal(t, nav.ItemHelp, drawer.Items()[4].ID)
	require.Equal(t, nav.SectionSticky, drawer.Items()[3].Section)

	drawer.MoveCursor(-1)
	require.Equal(t, 4, drawer.Cursor())
	drawer.MoveCursor(2)
	require.Equal(t, 1, drawer.Cursor())

	var clicked []int
	drawer.OnItemClick(func(id int) { clicked = append(clicked, id) })
	drawer.ClickCursor()
	drawer.ClickCursor()
	drawer.Click(99)

	require.Equal(t, []int{nav.ItemEncryptDecrypt, nav.ItemEncryptDecrypt}, clicked)
	require.Equal(t, nav.ItemEncryptDecrypt, drawer.Selected())
}

func TestDrawerSaveStateKeepsForeignKeys(t *testing.T) {
	primary, sticky := nav.DefaultMenu(label)
	drawer := nav.BuildDrawer(primary, sticky, nil)
	drawer.Toggle()

	snapshot := drawer.SaveState(nav.Snapshot{"other.key": "value", "drawer.open": "false"})
	require.Equal(t, "value", snapshot["other.key"])
	require.Equal(t, "true", snapshot["drawer.open"])
	require.Equal(t, "-1", snapshot["drawer.selected"])

	fresh := drawer.SaveState(nil)
	require.Equal(t, []string{"drawer.cursor", "drawer.open", "drawer.selected"}, fresh.Keys())
}

func TestDrawerRestoreIgnoresGarbage(t *testing.T) {
	primary, sticky := nav.DefaultMenu(label)
	drawer := nav.BuildDrawer(primary, sticky, nav.Snapshot{
		"drawer.open":     "maybe",
		"drawer.selected": "77",
		"drawer.cursor":   "-3",
	})

	require.False(t, drawer.IsOpen())
	require.Equal(t, nav.NoSelection, drawer.Selected())
	require.Zero(t, drawer.Cursor())
}

func TestDestinationsResolve(t *testing.T) {
	destinations := nav.DefaultDestinations()

	action, found := destinations.Resolve(nav.ItemEncryptDecrypt)
	require.True(t, found)
	require.Equal(t, nav.Action{Type: nav.ActionSelectView, View: nav.EncryptDecryptOverview}, action)

	action, found = destinations.Resolve(nav.ItemHelp)
	require.True(t, found)
	require.Equal(t, nav.ActionLaunchHelp, action.Type)

	_, found = destinations.Resolve(0)
	require.False(t, found)
}

func TestHistory(t *testing.T) {
	var history nav.History

	_, ok := history.Pop()
	require.False(t, ok)

	history.Push(nav.KeysOverview)
	history.Push(nav.AppsOverview)
	require.Equal(t, []nav.ViewKind{nav.KeysOverview, nav.AppsOverview}, history.Entries())

	kind, ok := history.Pop()
	require.True(t, ok)
	require.Equal(t, nav.AppsOverview, kind)

	history.Clear()
	require.True(t, history.Empty())
}
