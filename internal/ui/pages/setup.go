package pages

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/component"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

var errNoStore = errors.New("no key store available")

type setupIdx int

const (
	fieldName setupIdx = iota
	fieldEmail
	fieldCreate
)

// Setup creates the user's first key. During the first run it is the only way into the
// application, so leaving it quits.
type Setup struct {
	ctx        context.Context //nolint:containedctx
	queries    *store.Queries
	fields     []*component.ValidatingTextInputModel
	focusIndex setupIdx
	firstRun   bool
	viewState  model.ViewState
}

func NewSetup(ctx context.Context, queries *store.Queries) *Setup {
	setup := &Setup{ctx: ctx, queries: queries}
	setup.Reset(false)

	return setup
}

// Reset clears the form. firstRun controls whether leaving the page quits the application.
func (m *Setup) Reset(firstRun bool) {
	m.firstRun = firstRun
	m.focusIndex = fieldName
	m.fields = []*component.ValidatingTextInputModel{
		component.NewValidatingTextInputModel("Name", "", "Alice", component.NonEmptyValidator{}),
		component.NewValidatingTextInputModel("Email", "", "alice@example.com", component.EmailValidator{EmptyOk: true}),
	}
	m.fields[fieldName].Focus()
}

func (m *Setup) FirstRun() bool {
	return m.firstRun
}

func (m *Setup) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Setup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Back):
			if m.firstRun {
				return m, tea.Quit
			}

			return m, command.CloseDestination
		case key.Matches(msg, input.Default.PrevField):
			if m.focusIndex > fieldName {
				return m, m.changeInput(input.Up)
			}

			return m, nil
		case key.Matches(msg, input.Default.NextField):
			if m.focusIndex < fieldCreate {
				return m, m.changeInput(input.Down)
			}

			return m, nil
		case key.Matches(msg, input.Default.Accept):
			if m.focusIndex < fieldCreate {
				return m, m.changeInput(input.Down)
			}

			return m, m.create()
		}
	}

	cmds := make([]tea.Cmd, len(m.fields))
	for idx := range m.fields {
		m.fields[idx], cmds[idx] = m.fields[idx].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Setup) create() tea.Cmd {
	for _, field := range m.fields {
		if !field.Valid() {
			return command.SetStatusMessage("Enter a name and a valid email address", true)
		}
	}

	ctx, queries := m.ctx, m.queries
	params := store.CreateKeyParams{
		Name:      m.fields[fieldName].Value(),
		Email:     m.fields[fieldEmail].Value(),
		CreatedOn: time.Now(),
	}

	return func() tea.Msg {
		if queries == nil {
			return command.StatusMsg{Message: errNoStore.Error(), Err: true}
		}

		userKey, err := queries.CreateKey(ctx, params)
		if err != nil {
			slog.Error("Failed to create key", slog.String("error", err.Error()))

			return command.StatusMsg{Message: "Failed to create key", Err: true}
		}

		if errFirst := queries.SetFirstTime(ctx, false); errFirst != nil {
			slog.Error("Failed to clear first run flag", slog.String("error", errFirst.Error()))
		}

		return command.SetupCompleteMsg{Key: userKey}
	}
}

func (m *Setup) changeInput(dir input.Direction) tea.Cmd {
	m.focusIndex += setupIdx(dir.Delta())

	var cmd tea.Cmd
	for i := range m.fields {
		if setupIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

func (m *Setup) View() string {
	rows := []string{
		styles.InfoMessage.Render(styles.IconKeys + " Create your key to get started"),
	}
	for _, field := range m.fields {
		rows = append(rows, field.View())
	}

	if m.focusIndex == fieldCreate {
		rows = append(rows, styles.FocusedSubmitButton)
	} else {
		rows = append(rows, styles.BlurredSubmitButton)
	}

	return styles.Container("Setup", max(m.viewState.Width-2, 0), max(m.viewState.ContentHeight-2, 0),
		lipgloss.JoinVertical(lipgloss.Left, rows...), true)
}
