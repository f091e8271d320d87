// Package nav implements the navigation host of the application shell: the side drawer, the
// content view switcher with its history, and the routing of startup and FAB signals to the
// currently displayed view.
//
// Everything in this package runs on the ui event loop. None of it is safe for concurrent use.
package nav

// ViewKind identifies one of the cacheable content views reachable from the drawer.
type ViewKind int

const (
	KeysOverview ViewKind = iota
	EncryptDecryptOverview
	AppsOverview
)

// RootView is the default view. It is never pushed onto the history.
const RootView = KeysOverview

// ViewKinds lists every cacheable kind in drawer order.
var ViewKinds = []ViewKind{KeysOverview, EncryptDecryptOverview, AppsOverview}

func (k ViewKind) String() string {
	switch k {
	case KeysOverview:
		return "keys"
	case EncryptDecryptOverview:
		return "encrypt_decrypt"
	case AppsOverview:
		return "apps"
	default:
		return "unknown"
	}
}

// Section is the drawer section a menu item is rendered in.
type Section int

const (
	SectionPrimary Section = iota
	// SectionSticky items are pinned to the bottom of the drawer.
	SectionSticky
)

// Identifiers of the default drawer items. These are stable and persisted in saved state.
const (
	ItemKeys           = 1
	ItemEncryptDecrypt = 2
	ItemApps           = 3
	ItemSettings       = 4
	ItemHelp           = 5
)

type MenuItem struct {
	ID      int
	Label   string
	Icon    string
	Section Section
}

// ActionType is the kind of navigation a drawer item triggers.
type ActionType int

const (
	ActionSelectView ActionType = iota
	ActionLaunchSettings
	ActionLaunchHelp
)

// Action is what selecting a drawer item does. View is only meaningful for ActionSelectView.
type Action struct {
	Type ActionType
	View ViewKind
}

// Destinations maps drawer item identifiers to their actions. It is built once when the host
// is configured.
type Destinations map[int]Action

// Resolve returns the action bound to id. Unknown ids report false.
func (d Destinations) Resolve(id int) (Action, bool) {
	action, found := d[id]

	return action, found
}

func DefaultDestinations() Destinations {
	return Destinations{
		ItemKeys:           {Type: ActionSelectView, View: KeysOverview},
		ItemEncryptDecrypt: {Type: ActionSelectView, View: EncryptDecryptOverview},
		ItemApps:           {Type: ActionSelectView, View: AppsOverview},
		ItemSettings:       {Type: ActionLaunchSettings},
		ItemHelp:           {Type: ActionLaunchHelp},
	}
}

// Labeler resolves a message id into display text.
type Labeler func(messageID string) string

// Message ids used for the default menu and view titles.
const (
	MsgAppName        = "app_name"
	MsgNavKeys        = "nav_keys"
	MsgNavEncrypt     = "nav_encrypt_decrypt"
	MsgNavApps        = "nav_apps"
	MsgRegisteredApps = "title_api_registered_apps"
	MsgPreferences    = "menu_preferences"
	MsgHelp           = "menu_help"
)

// DefaultMenu returns the primary and sticky drawer items, labelled with label.
func DefaultMenu(label Labeler) ([]MenuItem, []MenuItem) {
	primary := []MenuItem{
		{ID: ItemKeys, Label: label(MsgNavKeys), Icon: "🔑", Section: SectionPrimary},
		{ID: ItemEncryptDecrypt, Label: label(MsgNavEncrypt), Icon: "🔒", Section: SectionPrimary},
		{ID: ItemApps, Label: label(MsgRegisteredApps), Icon: "📱", Section: SectionPrimary},
	}
	sticky := []MenuItem{
		{ID: ItemSettings, Label: label(MsgPreferences), Icon: "⚙", Section: SectionSticky},
		{ID: ItemHelp, Label: label(MsgHelp), Icon: "❓", Section: SectionSticky},
	}

	return primary, sticky
}

// DefaultTitles returns the title shown in the toolbar for each view kind. The keys overview
// uses the application name, as it is the home screen.
func DefaultTitles(label Labeler) func(ViewKind) string {
	titles := map[ViewKind]string{
		KeysOverview:           label(MsgAppName),
		EncryptDecryptOverview: label(MsgNavEncrypt),
		AppsOverview:           label(MsgNavApps),
	}

	return func(kind ViewKind) string {
		return titles[kind]
	}
}
