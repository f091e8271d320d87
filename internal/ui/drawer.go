package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
)

const (
	zoneDrawerItem = "drawer_item_"
	zoneNavToggle  = "nav_toggle"
)

func drawerZoneID(id int) string {
	return zoneDrawerItem + strconv.Itoa(id)
}

// drawerWidth is the number of columns the open drawer takes from the content region.
func drawerWidth() int {
	return styles.DrawerContainer.GetWidth() + styles.DrawerContainer.GetHorizontalBorderSize()
}

// renderDrawer draws the header and primary items at the top and the sticky items pinned to
// the bottom of a column height lines tall.
func renderDrawer(drawer *nav.Drawer, header string, height int) string {
	if height <= 0 {
		return ""
	}

	rows := []string{styles.DrawerHeader.Render(header)}
	for idx, item := range drawer.Primary() {
		rows = append(rows, drawerRow(drawer, item, idx))
	}
	top := lipgloss.JoinVertical(lipgloss.Left, rows...)

	innerWidth := styles.DrawerContainer.GetWidth() - styles.DrawerContainer.GetHorizontalPadding()
	rows = []string{styles.DrawerDivider.Render(styles.WrapX(innerWidth, "", "─"))}
	for idx, item := range drawer.Sticky() {
		rows = append(rows, drawerRow(drawer, item, len(drawer.Primary())+idx))
	}
	bottom := lipgloss.JoinVertical(lipgloss.Left, rows...)

	parts := []string{top}
	if gap := height - lipgloss.Height(top) - lipgloss.Height(bottom); gap > 0 {
		parts = append(parts, lipgloss.NewStyle().Height(gap).Render(""))
	}
	parts = append(parts, bottom)

	return styles.DrawerContainer.Height(height).MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func drawerRow(drawer *nav.Drawer, item nav.MenuItem, index int) string {
	style := styles.DrawerItem
	switch {
	case index == drawer.Cursor():
		style = styles.DrawerItemCursor
	case item.ID == drawer.Selected():
		style = styles.DrawerItemSelected
	}

	width := styles.DrawerContainer.GetWidth() - styles.DrawerContainer.GetHorizontalPadding()

	return zone.Mark(drawerZoneID(item.ID), style.Width(width).Render(item.Icon+" "+item.Label))
}

// drawerItemAt returns the id of the drawer item under the mouse.
func drawerItemAt(drawer *nav.Drawer, msg tea.MouseMsg) (int, bool) {
	for _, item := range drawer.Items() {
		if zone.Get(drawerZoneID(item.ID)).InBounds(msg) {
			return item.ID, true
		}
	}

	return 0, false
}
