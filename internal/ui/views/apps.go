package views

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

type appsLoadedMsg struct {
	apps []store.APIApp
	err  error
}

type appItem struct {
	app store.APIApp
}

func (i appItem) Title() string { return i.app.Name }
func (i appItem) Description() string {
	return i.app.PackageName + " · registered " + humanize.Time(i.app.CreatedOn)
}
func (i appItem) FilterValue() string { return i.app.Name }

// Apps lists the applications registered to use the key store.
type Apps struct {
	deps     Deps
	list     list.Model
	width    int
	height   int
	attached bool
	loaded   bool
	err      error
}

func NewApps(deps Deps) *Apps {
	return &Apps{deps: deps.withDefaults(), list: newList(nil)}
}

func (m *Apps) Kind() nav.ViewKind { return nav.AppsOverview }

func (m *Apps) Attach() {
	m.attached = true
}

func (m *Apps) Detach() {
	m.attached = false
}

func (m *Apps) Attached() bool {
	return m.attached
}

func (m *Apps) Init() tea.Cmd {
	return m.load()
}

func (m *Apps) load() tea.Cmd {
	if m.deps.Queries == nil {
		return nil
	}

	ctx, queries := m.deps.Ctx, m.deps.Queries

	return func() tea.Msg {
		apps, err := queries.ListApps(ctx)

		return appsLoadedMsg{apps: apps, err: err}
	}
}

func (m *Apps) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.width, m.height = contentSize(msg)
		m.list.SetSize(m.width, m.height)

		return m, nil
	case appsLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err != nil {
			slog.Error("Failed to load apps", slog.String("error", msg.err.Error()))

			return m, nil
		}

		items := make([]list.Item, len(msg.apps))
		for idx, app := range msg.apps {
			items[idx] = appItem{app: app}
		}

		return m, m.list.SetItems(items)
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Refresh) {
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *Apps) View() string {
	style := lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height)

	switch {
	case m.err != nil:
		return style.Foreground(styles.Red).Render("Failed to load apps: " + m.err.Error())
	case m.loaded && len(m.list.Items()) == 0:
		return style.Render(styles.InfoMessage.Render(styles.IconInfo + " No apps registered"))
	default:
		return style.Render(m.list.View())
	}
}
