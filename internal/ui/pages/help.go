package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

const helpIntro = "Open the menu to switch between your keys, encryption tools and the apps allowed to " +
	"use them. Back closes the menu first, then returns to the keys overview, and exits from there."

func NewHelp(build model.BuildInfo, configPath string, dbPath string) *Help {
	return &Help{
		helpView:   help.New(),
		build:      build,
		configPath: configPath,
		dbPath:     dbPath,
	}
}

type Help struct {
	helpView   help.Model
	viewState  model.ViewState
	build      model.BuildInfo
	configPath string
	dbPath     string
}

func (m *Help) Init() tea.Cmd {
	return nil
}

func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.helpView.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Back) || key.Matches(msg, input.Default.Help) {
			return m, command.CloseDestination
		}
	}

	return m, nil
}

func (m *Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Drawer,
			input.Default.Back,
			input.Default.Up,
			input.Default.Down,
			input.Default.Accept,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Copy,
			input.Default.Refresh,
			input.Default.Settings,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	intro := helpIntro
	if m.viewState.Width > 8 {
		intro = wordwrap.String(helpIntro, min(m.viewState.Width-4, 80))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.InfoMessage.Render(intro),
		helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", m.build.ShortCommit()),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Database Path", m.dbPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.ContentHeight, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
