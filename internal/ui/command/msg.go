package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
)

// LaunchMsg asks the root model to show a destination outside of the navigation host.
type LaunchMsg struct {
	Page     model.Page
	FirstRun bool
}

func Launch(page model.Page, firstRun bool) tea.Cmd {
	return func() tea.Msg { return LaunchMsg{Page: page, FirstRun: firstRun} }
}

// CloseDestinationMsg returns from a launched destination to the navigation host.
type CloseDestinationMsg struct{}

func CloseDestination() tea.Msg {
	return CloseDestinationMsg{}
}

// SetupCompleteMsg is sent once the first run setup stored the user's key.
type SetupCompleteMsg struct {
	Key store.UserKey
}

func SetupComplete(key store.UserKey) tea.Cmd {
	return func() tea.Msg { return SetupCompleteMsg{Key: key} }
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// ClearStatusMessageMsg clears the status message with the matching ID. Older timers carry a
// stale ID and are ignored.
type ClearStatusMessageMsg struct {
	ID int
}

func ClearStatusAfter(t time.Duration, id int) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{ID: id}
	})
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}
