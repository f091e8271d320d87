package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

// fab is a floating action button pinned to the bottom right of a view. It can be pushed up
// while something else, like a notification, covers the bottom of the content region.
type fab struct {
	label  string
	offset int
}

func (f *fab) FabMoveUp(offset int) {
	f.offset = max(offset, 0)
}

func (f *fab) FabRestorePosition() {
	f.offset = 0
}

func (f *fab) Offset() int {
	return f.offset
}

// overlay renders the button over the body, which is padded or cut to height lines.
func (f *fab) overlay(body string, width int, height int) string {
	if height <= 0 {
		return ""
	}

	lines := strings.Split(body, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	row := max(height-1-f.offset, 0)
	button := styles.Fab.Render(f.label)
	lines[row] = lipgloss.PlaceHorizontal(width, lipgloss.Right, button)

	return strings.Join(lines, "\n")
}
