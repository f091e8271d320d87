package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
)

// bridge turns the host's synchronous launcher and notifier calls into tea commands. The root
// model drains it after every call into the host.
type bridge struct {
	cmds []tea.Cmd
}

func (b *bridge) LaunchSettings() {
	b.cmds = append(b.cmds, command.Launch(model.PageSettings, false))
}

func (b *bridge) LaunchHelp() {
	b.cmds = append(b.cmds, command.Launch(model.PageHelp, false))
}

func (b *bridge) LaunchFirstRunSetup(firstRun bool) {
	b.cmds = append(b.cmds, command.Launch(model.PageSetup, firstRun))
}

func (b *bridge) Notify(result nav.Result) {
	b.cmds = append(b.cmds, command.SetStatusMessage(result.Notification(), !result.Success()))
}

func (b *bridge) drain() tea.Cmd {
	if len(b.cmds) == 0 {
		return nil
	}

	cmd := tea.Batch(b.cmds...)
	b.cmds = nil

	return cmd
}
