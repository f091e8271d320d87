package nav

import (
	"log/slog"
)

// Launcher sends fire-and-forget requests to destinations outside of the host.
type Launcher interface {
	LaunchSettings()
	LaunchHelp()
	LaunchFirstRunSetup(firstRun bool)
}

// Result is an opaque operation outcome handed to the host at startup. The host never looks
// inside, it only forwards it to a Notifier.
type Result interface {
	Notification() string
	Success() bool
}

// Notifier displays a notification derived from a Result.
type Notifier interface {
	Notify(result Result)
}

// StartupSignal holds the launch parameters evaluated once by Host.Start.
type StartupSignal struct {
	FirstRun      bool
	PendingResult Result
}

// BackState is the state of the back-navigation state machine.
type BackState int

const (
	ContentAtRoot BackState = iota
	ContentWithHistory
	DrawerOpen
)

func (s BackState) String() string {
	switch s {
	case DrawerOpen:
		return "drawer_open"
	case ContentWithHistory:
		return "content_with_history"
	default:
		return "content_at_root"
	}
}

// State is a read only view of the navigation state.
type State struct {
	Current    ViewKind
	History    []ViewKind
	DrawerOpen bool
	LastUsed   ViewKind
	HasLast    bool
}

type Options struct {
	Primary      []MenuItem
	Sticky       []MenuItem
	Destinations Destinations
	Factory      Factory
	Titles       func(ViewKind) string
	Launcher     Launcher
	Notifier     Notifier
	// Saved is the snapshot restored from a previous run, may be nil.
	Saved Snapshot
}

// Host is the navigation host. It owns the drawer, the view cache, the history and the view
// currently placed in the content region.
type Host struct {
	drawer       *Drawer
	cache        *ViewCache
	history      History
	destinations Destinations
	titles       func(ViewKind) string
	launcher     Launcher
	notifier     Notifier
	current      View
	currentKind  ViewKind
	lastUsed     View
	lastUsedKind ViewKind
	title        string
	started      bool
	finished     bool
}

func NewHost(opts Options) *Host {
	if opts.Destinations == nil {
		opts.Destinations = DefaultDestinations()
	}

	if opts.Titles == nil {
		opts.Titles = ViewKind.String
	}

	host := &Host{
		drawer:       BuildDrawer(opts.Primary, opts.Sticky, opts.Saved),
		cache:        NewViewCache(opts.Factory),
		destinations: opts.Destinations,
		titles:       opts.Titles,
		launcher:     opts.Launcher,
		notifier:     opts.Notifier,
		currentKind:  RootView,
		title:        opts.Titles(RootView),
	}

	host.drawer.OnItemClick(host.SelectDestination)

	return host
}

// Start evaluates the startup signal. It returns false when the host redirected to the first
// run setup and finished itself, in which case nothing was attached and the host must not be
// shown. Only the first call has any effect.
func (h *Host) Start(signal StartupSignal) bool {
	if h.started {
		return !h.finished
	}

	h.started = true

	if signal.FirstRun {
		slog.Info("First run detected, redirecting to setup")
		if h.launcher != nil {
			h.launcher.LaunchFirstRunSetup(true)
		}
		h.finished = true

		return false
	}

	h.show(RootView, h.cache.Get(RootView))

	if signal.PendingResult != nil && h.notifier != nil {
		h.notifier.Notify(signal.PendingResult)
	}

	return true
}

// Finished reports whether the host terminated itself during Start.
func (h *Host) Finished() bool {
	return h.finished
}

// SelectDestination performs the action bound to a drawer item identifier. Unmapped
// identifiers are ignored.
func (h *Host) SelectDestination(id int) {
	action, found := h.destinations.Resolve(id)
	if !found {
		slog.Debug("Ignoring unmapped drawer item", slog.Int("id", id))

		return
	}

	switch action.Type {
	case ActionSelectView:
		h.Select(action.View)
	case ActionLaunchSettings:
		if h.launcher != nil {
			h.launcher.LaunchSettings()
		}
	case ActionLaunchHelp:
		if h.launcher != nil {
			h.launcher.LaunchHelp()
		}
	}
}

// Select displays the view for kind. Every selection drops the cached instances of the other
// kinds and resets the history to its root, so a non default view is always exactly one back
// press away from the keys overview.
func (h *Host) Select(kind ViewKind) {
	h.title = h.titles(kind)

	h.cache.Retain(kind)
	h.history.Clear()
	h.currentKind = RootView

	view := h.cache.Get(kind)
	h.show(kind, view)

	if kind != RootView {
		h.history.Push(RootView)
	}

	slog.Debug("Selected view", slog.String("view", kind.String()),
		slog.Int("history", h.history.Len()))
}

// Back handles a back-navigation request. It returns false when the request was not consumed
// and should fall through to the default behaviour, exiting.
func (h *Host) Back() bool {
	state := h.BackState()
	slog.Debug("Back pressed", slog.String("state", state.String()))

	switch state {
	case DrawerOpen:
		h.drawer.Close()

		return true
	case ContentWithHistory:
		kind, _ := h.history.Pop()
		h.title = h.titles(kind)
		h.show(kind, h.cache.Get(kind))

		return true
	default:
		return false
	}
}

func (h *Host) BackState() BackState {
	switch {
	case h.drawer.IsOpen():
		return DrawerOpen
	case !h.history.Empty():
		return ContentWithHistory
	default:
		return ContentAtRoot
	}
}

func (h *Host) show(kind ViewKind, view View) {
	if h.current != nil && h.current != view {
		h.current.Detach()
	}

	h.current = view
	h.currentKind = kind
	h.lastUsed = view
	h.lastUsedKind = kind

	view.Attach()
}

// FabMoveUp forwards to the displayed view when it has a FAB, otherwise it does nothing.
func (h *Host) FabMoveUp(offset int) {
	if fab, ok := FabOf(h.current); ok {
		fab.FabMoveUp(offset)
	}
}

// FabRestorePosition forwards to the displayed view when it has a FAB, otherwise it does nothing.
func (h *Host) FabRestorePosition() {
	if fab, ok := FabOf(h.current); ok {
		fab.FabRestorePosition()
	}
}

// SaveState merges the host's persistent state, the drawer's, into snapshot.
func (h *Host) SaveState(snapshot Snapshot) Snapshot {
	return h.drawer.SaveState(snapshot)
}

func (h *Host) Drawer() *Drawer {
	return h.drawer
}

// Current returns the displayed view, nil before Start.
func (h *Host) Current() View {
	return h.current
}

func (h *Host) CurrentKind() ViewKind {
	return h.currentKind
}

func (h *Host) Title() string {
	return h.title
}

// Cached returns the cached instance for kind without creating it.
func (h *Host) Cached(kind ViewKind) (View, bool) {
	return h.cache.Peek(kind)
}

func (h *Host) State() State {
	return State{
		Current:    h.currentKind,
		History:    h.history.Entries(),
		DrawerOpen: h.drawer.IsOpen(),
		LastUsed:   h.lastUsedKind,
		HasLast:    h.lastUsed != nil,
	}
}
