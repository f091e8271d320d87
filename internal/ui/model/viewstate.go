package model

// Page is a complete standalone screen. Only PageHost shows the navigation host, the others are
// the destinations it launches.
type Page int

const (
	PageHost Page = iota
	PageSettings
	PageHelp
	PageSetup
)

func (p Page) String() string {
	switch p {
	case PageSettings:
		return "settings"
	case PageHelp:
		return "help"
	case PageSetup:
		return "setup"
	default:
		return "host"
	}
}

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page

	// ---------------- h
	// | Title bar    | e
	// |------------- | i
	// | Content      | g
	// |------------- | h
	// | Status bar   | t
	// ---------------- h
	//   W i d t h
	Height        int
	Width         int
	ContentHeight int
}

// BuildInfo is the version information stamped into the binary at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// ShortCommit returns the abbreviated commit hash.
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) > 8 {
		return b.Commit[0:8]
	}

	return b.Commit
}
