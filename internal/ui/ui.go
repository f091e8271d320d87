// Package ui is the terminal front end: the root bubbletea model hosting the navigation host,
// and the pages it launches.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const defaultFPS = 30

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, opts Options) *UI {
	zone.NewGlobal()

	fps := opts.Config.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(fps),
	}

	if opts.Config.MouseEnabled {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	return &UI{
		program: tea.NewProgram(newRootModel(ctx, opts), programOpts...),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
