package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
)

type actionItem struct {
	title       string
	description string
}

func (i actionItem) Title() string       { return i.title }
func (i actionItem) Description() string { return i.description }
func (i actionItem) FilterValue() string { return i.title }

// EncryptDecrypt is the overview of the available encrypt and decrypt actions. It has no FAB.
type EncryptDecrypt struct {
	deps     Deps
	list     list.Model
	width    int
	height   int
	attached bool
}

func NewEncryptDecrypt(deps Deps) *EncryptDecrypt {
	return &EncryptDecrypt{
		deps: deps.withDefaults(),
		list: newList([]list.Item{
			actionItem{title: "Encrypt text", description: "Encrypt a message for one or more recipients"},
			actionItem{title: "Encrypt files", description: "Encrypt files for one or more recipients"},
			actionItem{title: "Decrypt from clipboard", description: "Decrypt or verify clipboard contents"},
			actionItem{title: "Decrypt files", description: "Decrypt or verify files"},
		}),
	}
}

func (m *EncryptDecrypt) Kind() nav.ViewKind { return nav.EncryptDecryptOverview }

func (m *EncryptDecrypt) Attach() {
	m.attached = true
}

func (m *EncryptDecrypt) Detach() {
	m.attached = false
}

func (m *EncryptDecrypt) Attached() bool {
	return m.attached
}

func (m *EncryptDecrypt) Init() tea.Cmd {
	return nil
}

func (m *EncryptDecrypt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.width, m.height = contentSize(msg)
		m.list.SetSize(m.width, m.height)

		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Accept) {
			if selected, ok := m.list.SelectedItem().(actionItem); ok {
				return m, command.SetStatusMessage(selected.title+": not available in this build", false)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *EncryptDecrypt) View() string {
	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(m.list.View())
}
