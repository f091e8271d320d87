// Package views holds the content views the navigation host switches between.
package views

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
)

// Content is a view that can be placed in the host's content region.
type Content interface {
	nav.View
	tea.Model
	Kind() nav.ViewKind
}

// Deps are the collaborators shared by all content views.
type Deps struct {
	Ctx     context.Context //nolint:containedctx
	Queries *store.Queries
	// CopyText writes to the system clipboard.
	CopyText func(text string) error
}

func (d Deps) withDefaults() Deps {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}

	if d.CopyText == nil {
		d.CopyText = clipboard.WriteAll
	}

	return d
}

// Factory returns a nav.Factory creating fresh content views.
func Factory(deps Deps) nav.Factory {
	deps = deps.withDefaults()

	return func(kind nav.ViewKind) nav.View {
		switch kind {
		case nav.EncryptDecryptOverview:
			return NewEncryptDecrypt(deps)
		case nav.AppsOverview:
			return NewApps(deps)
		default:
			return NewKeys(deps)
		}
	}
}

func newList(items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	listModel := list.New(items, delegate, 0, 0)
	listModel.SetShowTitle(false)
	listModel.SetShowHelp(false)
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.DisableQuitKeybindings()

	return listModel
}

// contentSize extracts the usable content area from the shared view state.
func contentSize(state model.ViewState) (int, int) {
	return max(state.Width, 0), max(state.ContentHeight, 0)
}
