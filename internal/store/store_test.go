package store_test

import (
	"testing"
	"time"

	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/stretchr/testify/require"
)

func newQueries(t *testing.T) *store.Queries {
	t.Helper()

	conn, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return store.New(conn)
}

func TestFirstTime(t *testing.T) {
	queries := newQueries(t)

	firstTime, err := queries.IsFirstTime(t.Context())
	require.NoError(t, err)
	require.True(t, firstTime)

	require.NoError(t, queries.SetFirstTime(t.Context(), false))
	firstTime, err = queries.IsFirstTime(t.Context())
	require.NoError(t, err)
	require.False(t, firstTime)

	_, err = queries.GetPreference(t.Context(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUIStateMerges(t *testing.T) {
	queries := newQueries(t)

	require.NoError(t, queries.SaveUIState(t.Context(), map[string]string{"drawer.open": "true", "ui.saved_at": "1"}))
	require.NoError(t, queries.SaveUIState(t.Context(), map[string]string{"drawer.open": "false"}))

	state, err := queries.LoadUIState(t.Context())
	require.NoError(t, err)
	require.Equal(t, map[string]string{"drawer.open": "false", "ui.saved_at": "1"}, state)
}

func TestKeysAndApps(t *testing.T) {
	queries := newQueries(t)
	now := time.Now()

	created, err := queries.CreateKey(t.Context(), store.CreateKeyParams{Name: "Alice", Email: "alice@example.com", CreatedOn: now})
	require.NoError(t, err)
	require.Positive(t, created.KeyID)
	require.Equal(t, "Alice <alice@example.com>", created.UserID())

	_, err = queries.CreateKey(t.Context(), store.CreateKeyParams{Name: "Bob", CreatedOn: now})
	require.NoError(t, err)

	keys, err := queries.ListKeys(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	require.Equal(t, "Alice", keys[0].Name)
	require.Equal(t, "Bob", keys[1].UserID())
	require.Equal(t, now.Unix(), keys[0].CreatedOn.Unix())

	require.NoError(t, queries.RegisterApp(t.Context(), store.RegisterAppParams{PackageName: "org.example.mail", Name: "Mail", CreatedOn: now}))
	require.NoError(t, queries.RegisterApp(t.Context(), store.RegisterAppParams{PackageName: "org.example.mail", Name: "Mail 2", CreatedOn: now}))

	apps, err := queries.ListApps(t.Context())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "Mail 2", apps[0].Name)
}

func TestMigrateDown(t *testing.T) {
	conn, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, store.Migrate(conn, store.MigrateDn))
	_, err = store.New(conn).ListKeys(t.Context())
	require.Error(t, err)
	require.NoError(t, store.Migrate(conn, store.MigrateUp))
}
