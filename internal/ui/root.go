package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/openkeychain/keychain-tui/internal/ui/pages"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
	"github.com/openkeychain/keychain-tui/internal/ui/views"
)

const keySavedAt = "ui.saved_at"

// Options configures the root model.
type Options struct {
	Config  config.Config
	Writer  config.Writer
	Queries *store.Queries
	// Labels resolves menu labels and view titles.
	Labels nav.Labeler
	Signal nav.StartupSignal
	// Saved is the ui state snapshot of the previous run.
	Saved     nav.Snapshot
	BuildInfo model.BuildInfo
	// CopyText overrides the clipboard writer used by the content views.
	CopyText func(text string) error
}

// rootModel is the top level model for the ui side of the app. It owns the navigation host and
// the destinations the host launches.
type rootModel struct {
	ctx       context.Context //nolint:containedctx
	host      *nav.Host
	bridge    *bridge
	config    config.Config
	labels    nav.Labeler
	queries   *store.Queries
	deps      views.Deps
	signal    nav.StartupSignal
	saved     nav.Snapshot
	viewState model.ViewState
	status    *statusBar
	help      *pages.Help
	settings  *pages.Settings
	setup     *pages.Setup
	// shown is the host view that last received Init and sizing.
	shown nav.View
}

func newRootModel(ctx context.Context, opts Options) *rootModel {
	labels := opts.Labels
	if labels == nil {
		labels = func(messageID string) string { return messageID }
	}

	configPath := ""
	if opts.Writer != nil {
		configPath = opts.Writer.Path()
	}

	root := &rootModel{
		ctx:     ctx,
		bridge:  &bridge{},
		config:  opts.Config,
		labels:  labels,
		queries: opts.Queries,
		deps: views.Deps{
			Ctx:      ctx,
			Queries:  opts.Queries,
			CopyText: opts.CopyText,
		},
		signal:    opts.Signal,
		saved:     opts.Saved,
		viewState: model.ViewState{Page: model.PageHost},
		status:    newStatusBar(opts.BuildInfo.Version),
		help:      pages.NewHelp(opts.BuildInfo, configPath, opts.Config.DBPath()),
		settings:  pages.NewSettings(opts.Config, opts.Writer),
		setup:     pages.NewSetup(ctx, opts.Queries),
	}

	root.startHost()

	return root
}

// startHost creates a fresh navigation host and evaluates the startup signal. A host that
// redirected to the first run setup is dropped right away.
func (m *rootModel) startHost() {
	primary, sticky := nav.DefaultMenu(m.labels)
	m.host = nav.NewHost(nav.Options{
		Primary:  primary,
		Sticky:   sticky,
		Factory:  views.Factory(m.deps),
		Titles:   nav.DefaultTitles(m.labels),
		Launcher: m.bridge,
		Notifier: m.bridge,
		Saved:    m.saved,
	})
	m.shown = nil

	if !m.host.Start(m.signal) {
		m.host = nil
	}
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.labels(nav.MsgAppName)),
		m.bridge.drain(),
		m.syncView(),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height
		m.viewState.ContentHeight = max(msg.Height-2, 0)
		m.status.width = msg.Width

		// The snackbar wraps to the new width, its height may have changed.
		if m.status.active() && m.host != nil {
			m.host.FabMoveUp(m.status.snackbarHeight())
		}

		return m, m.propagateViewState()
	case command.LaunchMsg:
		return m, m.launch(msg)
	case command.CloseDestinationMsg:
		m.viewState.Page = model.PageHost
		if m.host == nil {
			m.startHost()

			return m, tea.Batch(m.bridge.drain(), m.syncView())
		}

		return m, nil
	case command.SetupCompleteMsg:
		slog.Info("Setup complete", slog.String("user_id", msg.Key.UserID()))
		m.viewState.Page = model.PageHost
		m.signal = nav.StartupSignal{}
		m.startHost()

		return m, tea.Batch(
			m.bridge.drain(),
			m.syncView(),
			command.SetStatusMessage("Welcome, "+msg.Key.Name, false))
	case command.StatusMsg:
		id := m.status.set(msg)
		if m.host != nil {
			m.host.FabMoveUp(m.status.snackbarHeight())
		}

		return m, command.ClearStatusAfter(m.config.NoticeTimeout(), id)
	case command.ClearStatusMessageMsg:
		if m.status.clear(msg.ID) && m.host != nil {
			m.host.FabRestorePosition()
		}

		return m, nil
	case config.Config:
		return m, m.applyConfig(msg)
	case tea.MouseMsg:
		return m, m.onMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Quit) {
			return m, m.quit()
		}

		if m.viewState.Page == model.PageHost {
			return m, m.onHostKey(msg)
		}

		return m, m.updatePage(msg)
	}

	return m, m.propagate(inMsg)
}

func (m *rootModel) launch(msg command.LaunchMsg) tea.Cmd {
	slog.Debug("Launching destination", slog.String("page", msg.Page.String()), slog.Bool("first_run", msg.FirstRun))
	m.viewState.Page = msg.Page

	switch msg.Page {
	case model.PageSetup:
		m.setup.Reset(msg.FirstRun)
		if msg.FirstRun && m.host != nil {
			m.host = nil
			m.shown = nil
		}

		return m.setup.Init()
	case model.PageSettings:
		return m.settings.Init()
	case model.PageHelp:
		return m.help.Init()
	default:
		return nil
	}
}

func (m *rootModel) applyConfig(cfg config.Config) tea.Cmd {
	previous := m.config
	m.config = cfg

	var cmds []tea.Cmd
	if previous.MouseEnabled != cfg.MouseEnabled {
		if cfg.MouseEnabled {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}

	if previous.Locale != cfg.Locale {
		slog.Info("Locale changed, labels update on next start", slog.String("locale", cfg.Locale))
	}

	_, cmd := m.settings.Update(cfg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m *rootModel) onMouse(msg tea.MouseMsg) tea.Cmd {
	if m.viewState.Page != model.PageHost || m.host == nil {
		return nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if zone.Get(zoneNavToggle).InBounds(msg) {
		m.host.Drawer().Toggle()

		return m.propagateViewState()
	}

	if !m.host.Drawer().IsOpen() {
		return nil
	}

	if id, found := drawerItemAt(m.host.Drawer(), msg); found {
		m.host.Drawer().Click(id)
		m.host.Drawer().Close()

		return m.afterHostChange()
	}

	return nil
}

func (m *rootModel) onHostKey(msg tea.KeyMsg) tea.Cmd {
	if m.host == nil {
		return nil
	}

	drawer := m.host.Drawer()

	switch {
	case key.Matches(msg, input.Default.Back):
		if !m.host.Back() {
			return m.quit()
		}

		return m.afterHostChange()
	case key.Matches(msg, input.Default.Drawer):
		drawer.Toggle()

		return m.propagateViewState()
	case key.Matches(msg, input.Default.Help):
		m.host.SelectDestination(nav.ItemHelp)

		return m.bridge.drain()
	case key.Matches(msg, input.Default.Settings):
		m.host.SelectDestination(nav.ItemSettings)

		return m.bridge.drain()
	}

	if drawer.IsOpen() {
		switch {
		case key.Matches(msg, input.Default.Up):
			drawer.MoveCursor(input.Up.Delta())
		case key.Matches(msg, input.Default.Down):
			drawer.MoveCursor(input.Down.Delta())
		case key.Matches(msg, input.Default.Accept):
			drawer.ClickCursor()
			drawer.Close()

			return m.afterHostChange()
		}

		return nil
	}

	return m.updateCurrent(msg)
}

// afterHostChange collects the commands produced by a host transition.
func (m *rootModel) afterHostChange() tea.Cmd {
	return tea.Batch(m.bridge.drain(), m.syncView(), m.propagateViewState())
}

// syncView initialises a view the first time it is displayed by the host. Views restored from
// the cache keep their state and are only resized.
func (m *rootModel) syncView() tea.Cmd {
	if m.host == nil {
		return nil
	}

	current := m.host.Current()
	if current == nil || current == m.shown {
		return nil
	}

	m.shown = current
	if m.status.active() {
		m.host.FabMoveUp(m.status.snackbarHeight())
	}

	content, ok := current.(tea.Model)
	if !ok {
		return nil
	}

	content.Update(m.contentState())

	return content.Init()
}

func (m *rootModel) updateCurrent(msg tea.Msg) tea.Cmd {
	if m.host == nil {
		return nil
	}

	content, ok := m.host.Current().(tea.Model)
	if !ok {
		return nil
	}

	_, cmd := content.Update(msg)

	return cmd
}

func (m *rootModel) updatePage(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.viewState.Page {
	case model.PageHelp:
		_, cmd = m.help.Update(msg)
	case model.PageSettings:
		_, cmd = m.settings.Update(msg)
	case model.PageSetup:
		_, cmd = m.setup.Update(msg)
	case model.PageHost:
		cmd = m.updateCurrent(msg)
	}

	return cmd
}

// contentState is the view state handed to host views. The open drawer takes its width from
// the content region.
func (m *rootModel) contentState() model.ViewState {
	state := m.viewState
	if m.host != nil && m.host.Drawer().IsOpen() {
		state.Width = max(state.Width-drawerWidth(), 0)
	}

	return state
}

func (m *rootModel) propagateViewState() tea.Cmd {
	cmds := []tea.Cmd{
		m.updateCurrent(m.contentState()),
	}

	for _, page := range []tea.Model{m.help, m.settings, m.setup} {
		_, cmd := page.Update(m.viewState)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// propagate routes messages the root does not handle itself. Async results like loaded
// records go to the displayed view.
func (m *rootModel) propagate(msg tea.Msg) tea.Cmd {
	return m.updatePage(msg)
}

func (m *rootModel) quit() tea.Cmd {
	m.saveState()

	return tea.Quit
}

// saveState persists the host's ui state so the drawer comes back the way it was left.
func (m *rootModel) saveState() {
	if m.host == nil || m.queries == nil {
		return
	}

	m.saved = m.host.SaveState(m.saved)
	m.saved[keySavedAt] = time.Now().UTC().Format(time.RFC3339)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(m.ctx), 5*time.Second)
	defer cancel()

	if err := m.queries.SaveUIState(ctx, m.saved); err != nil {
		slog.Error("Failed to save ui state", slog.String("error", err.Error()))
	}
}

func (m *rootModel) title() string {
	switch m.viewState.Page {
	case model.PageSettings:
		return m.labels(nav.MsgPreferences)
	case model.PageHelp:
		return m.labels(nav.MsgHelp)
	case model.PageSetup:
		return m.labels(nav.MsgAppName)
	default:
		if m.host == nil {
			return m.labels(nav.MsgAppName)
		}

		return m.host.Title()
	}
}

func (m *rootModel) View() string {
	if m.viewState.Width == 0 || m.viewState.Height == 0 {
		return ""
	}

	toggle := zone.Mark(zoneNavToggle, styles.TitleNav.Render("☰"))
	titleBar := lipgloss.JoinHorizontal(lipgloss.Top, toggle,
		styles.TitleBar.Width(max(m.viewState.Width-lipgloss.Width(toggle), 0)).Render(m.title()))

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.help.View()
	case model.PageSettings:
		content = m.settings.View()
	case model.PageSetup:
		content = m.setup.View()
	case model.PageHost:
		content = m.hostView()
	}

	content = overlayBottom(
		lipgloss.NewStyle().Width(m.viewState.Width).Height(m.viewState.ContentHeight).
			MaxHeight(m.viewState.ContentHeight).Render(content),
		m.status.snackbar())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, titleBar, content, m.status.View()))
}

func (m *rootModel) hostView() string {
	if m.host == nil {
		return ""
	}

	var content string
	if current, ok := m.host.Current().(tea.Model); ok {
		content = current.View()
	}

	if !m.host.Drawer().IsOpen() {
		return content
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderDrawer(m.host.Drawer(), m.labels(nav.MsgAppName), m.viewState.ContentHeight),
		content)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/keychain-tui/keychain-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case spinner.TickMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
