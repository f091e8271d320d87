package views

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

var errNoKeySelected = errors.New("no key selected")

type keysLoadedMsg struct {
	keys []store.UserKey
	err  error
}

type keyItem struct {
	key store.UserKey
}

func (i keyItem) Title() string       { return styles.IconKeys + " " + i.key.UserID() }
func (i keyItem) Description() string { return "created " + humanize.Time(i.key.CreatedOn) }
func (i keyItem) FilterValue() string { return i.key.UserID() }

// Keys lists the user's keys. It is the default view of the host and owns a FAB.
type Keys struct {
	fab
	deps     Deps
	list     list.Model
	width    int
	height   int
	attached bool
	loaded   bool
	err      error
}

func NewKeys(deps Deps) *Keys {
	return &Keys{
		fab:  fab{label: "+"},
		deps: deps.withDefaults(),
		list: newList(nil),
	}
}

func (m *Keys) Kind() nav.ViewKind { return nav.KeysOverview }

func (m *Keys) Attach() {
	m.attached = true
}

func (m *Keys) Detach() {
	m.attached = false
	m.FabRestorePosition()
}

func (m *Keys) Attached() bool {
	return m.attached
}

func (m *Keys) Init() tea.Cmd {
	return m.load()
}

func (m *Keys) load() tea.Cmd {
	if m.deps.Queries == nil {
		return nil
	}

	ctx, queries := m.deps.Ctx, m.deps.Queries

	return func() tea.Msg {
		keys, err := queries.ListKeys(ctx)

		return keysLoadedMsg{keys: keys, err: err}
	}
}

func (m *Keys) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.width, m.height = contentSize(msg)
		m.list.SetSize(m.width, max(m.height-1, 0))

		return m, nil
	case keysLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err != nil {
			slog.Error("Failed to load keys", slog.String("error", msg.err.Error()))

			return m, nil
		}

		items := make([]list.Item, len(msg.keys))
		for idx, userKey := range msg.keys {
			items[idx] = keyItem{key: userKey}
		}

		return m, m.list.SetItems(items)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Copy):
			return m, m.copySelected()
		case key.Matches(msg, input.Default.Refresh):
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *Keys) copySelected() tea.Cmd {
	selected, ok := m.list.SelectedItem().(keyItem)
	if !ok {
		return command.SetStatusMessage(errNoKeySelected.Error(), true)
	}

	if err := m.deps.CopyText(selected.key.UserID()); err != nil {
		slog.Error("Failed to copy to clipboard", slog.String("error", err.Error()))

		return command.SetStatusMessage("Clipboard unavailable", true)
	}

	return command.SetStatusMessage("Copied "+selected.key.UserID(), false)
}

func (m *Keys) View() string {
	var body string
	switch {
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(styles.Red).Render("Failed to load keys: " + m.err.Error())
	case m.loaded && len(m.list.Items()) == 0:
		body = styles.InfoMessage.Render(styles.IconInfo + " No keys yet")
	default:
		body = m.list.View()
	}

	return m.overlay(body, m.width, m.height)
}
