package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/openkeychain/keychain-tui/internal/ui/command"
	"github.com/openkeychain/keychain-tui/internal/ui/input"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

// statusBar owns the bottom line of the screen and the snackbar notification drawn over the
// bottom of the content region.
type statusBar struct {
	width   int
	version string
	message string
	isErr   bool
	// id identifies the current message so a stale clear timer cannot remove a newer one.
	id int
}

func newStatusBar(version string) *statusBar {
	return &statusBar{version: version}
}

func (m *statusBar) set(msg command.StatusMsg) int {
	m.id++
	m.message = msg.Message
	m.isErr = msg.Err

	return m.id
}

// clear removes the message if it is still the one identified by id.
func (m *statusBar) clear(id int) bool {
	if id != m.id || m.message == "" {
		return false
	}

	m.message = ""
	m.isErr = false

	return true
}

func (m *statusBar) active() bool {
	return m.message != ""
}

// snackbar renders the current message wrapped to the available width.
func (m *statusBar) snackbar() string {
	if !m.active() || m.width <= 0 {
		return ""
	}

	style := styles.Snackbar
	if m.isErr {
		style = styles.SnackbarError
	}

	innerWidth := max(m.width-style.GetHorizontalFrameSize(), 1)

	return style.Width(m.width).Render(wordwrap.String(m.message, innerWidth))
}

// snackbarHeight is the number of lines the snackbar covers.
func (m *statusBar) snackbarHeight() int {
	if !m.active() {
		return 0
	}

	return lipgloss.Height(m.snackbar())
}

func (m *statusBar) View() string {
	hints := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Drawer.Help().Key, input.Default.Drawer.Help().Desc)),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Back.Help().Key, input.Default.Back.Help().Desc)),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	return lipgloss.NewStyle().Width(m.width).MaxHeight(1).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, hints...))
}

// overlayBottom draws overlay over the last lines of body.
func overlayBottom(body string, overlay string) string {
	if overlay == "" {
		return body
	}

	lines := strings.Split(body, "\n")
	covered := strings.Split(overlay, "\n")
	start := max(len(lines)-len(covered), 0)

	for idx := start; idx < len(lines); idx++ {
		lines[idx] = covered[idx-start]
	}

	return strings.Join(lines, "\n")
}
