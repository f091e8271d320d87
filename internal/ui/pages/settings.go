package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/component"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

type settingsIdx int

const (
	fieldLocale settingsIdx = iota
	fieldLogLevel
	fieldNoticeTimeout
	fieldMouseEnabled
	fieldSave
)

// Settings edits the persisted configuration.
type Settings struct {
	fields     []*component.ValidatingTextInputModel
	focusIndex settingsIdx
	config     config.Config
	viewState  model.ViewState
	writer     config.Writer
}

func NewSettings(cfg config.Config, writer config.Writer) *Settings {
	settings := &Settings{writer: writer}
	settings.reset(cfg)

	return settings
}

func (m *Settings) reset(cfg config.Config) {
	m.config = cfg
	m.focusIndex = fieldLocale
	m.fields = []*component.ValidatingTextInputModel{
		component.NewValidatingTextInputModel("Language", cfg.Locale, config.DefaultLocale,
			component.NonEmptyValidator{}, component.LocaleValidator{}),
		component.NewValidatingTextInputModel("Log level", cfg.LogLevel, "info",
			component.LogLevelValidator{}),
		component.NewValidatingTextInputModel("Notice timeout (sec)", strconv.Itoa(int(cfg.NoticeTimeout().Seconds())), "10",
			component.PositiveIntValidator{}),
		component.NewValidatingTextInputModel("Mouse enabled", strconv.FormatBool(cfg.MouseEnabled), "true",
			component.BoolValidator{}),
	}
	m.fields[fieldLocale].Focus()
}

func (m *Settings) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg

		return m, nil
	case config.Config:
		m.reset(msg)

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Back):
			m.reset(m.config)

			return m, command.CloseDestination
		case key.Matches(msg, input.Default.PrevField):
			if m.focusIndex > 0 {
				return m, m.changeInput(input.Up)
			}

			return m, nil
		case key.Matches(msg, input.Default.NextField):
			if m.focusIndex < fieldSave {
				return m, m.changeInput(input.Down)
			}

			return m, nil
		case key.Matches(msg, input.Default.Accept):
			if m.focusIndex < fieldSave {
				return m, m.changeInput(input.Down)
			}

			return m, m.save()
		}
	}

	cmds := make([]tea.Cmd, len(m.fields))
	for idx := range m.fields {
		m.fields[idx], cmds[idx] = m.fields[idx].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Settings) save() tea.Cmd {
	for _, field := range m.fields {
		if !field.Valid() {
			return command.SetStatusMessage("Settings are not valid, cannot save", true)
		}
	}

	cfg := m.config
	cfg.Locale = m.fields[fieldLocale].Value()
	cfg.LogLevel = m.fields[fieldLogLevel].Value()
	cfg.NoticeTimeoutSecs, _ = strconv.Atoi(m.fields[fieldNoticeTimeout].Value())
	cfg.MouseEnabled, _ = strconv.ParseBool(m.fields[fieldMouseEnabled].Value())

	if m.writer != nil {
		if err := m.writer.Write(cfg); err != nil {
			return command.SetStatusMessage(err.Error(), true)
		}
	}

	m.reset(cfg)

	return tea.Batch(
		command.SetConfig(cfg),
		command.SetStatusMessage("Saved settings", false),
		command.CloseDestination)
}

func (m *Settings) changeInput(dir input.Direction) tea.Cmd {
	m.focusIndex += settingsIdx(dir.Delta())

	var cmd tea.Cmd
	for i := range m.fields {
		if settingsIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

// Focused returns the index of the focused row, the save button being the last one.
func (m *Settings) Focused() int {
	return int(m.focusIndex)
}

func (m *Settings) View() string {
	fields := make([]string, 0, len(m.fields)+1)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	return styles.Container("Settings", max(m.viewState.Width-2, 0), max(m.viewState.ContentHeight-2, 0),
		lipgloss.NewStyle().Align(lipgloss.Left).Render(lipgloss.JoinVertical(lipgloss.Top, fields...)), true)
}
