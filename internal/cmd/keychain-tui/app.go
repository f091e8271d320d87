package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It runs the ui and routes background updates, like
// config file edits, into it.
type App struct {
	ui            UI
	configUpdates chan config.Config
}

func NewApp(configUpdates chan config.Config) *App {
	return &App{configUpdates: configUpdates}
}

// Start runs the ui until it exits, forwarding config changes to it in the meantime.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		// Leaving the ui ends the application.
		defer cancel()

		return app.ui.Run()
	})

	group.Go(func() error {
		app.configSender(groupCtx)

		return nil
	})

	return group.Wait()
}

// configSender forwards externally edited configs to the ui.
func (app *App) configSender(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Debug("Forwarding config update")
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, opts ui.Options) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, opts)
	}

	return app.ui
}
