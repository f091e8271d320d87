package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")
	Red         = lipgloss.Color("#B8383B")
	Green       = lipgloss.Color("#4d7455")
	Blue        = lipgloss.Color("#5885A2")
	Purple      = lipgloss.Color("#8650ac")
	Gold        = lipgloss.Color("#ffd700")

	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Submit ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Submit"))

	// Toolbar.
	TitleBar = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Blue).Padding(0, 1)
	TitleNav = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Blue).PaddingLeft(1)

	// Drawer.
	DrawerContainer = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(Gray).
			Width(28).
			PaddingRight(1)
	DrawerHeader       = lipgloss.NewStyle().Bold(true).Foreground(Accent).Padding(0, 1).MarginBottom(1)
	DrawerItem         = lipgloss.NewStyle().Foreground(White).PaddingLeft(1)
	DrawerItemCursor   = lipgloss.NewStyle().Foreground(Black).Background(Blue).Bold(true).PaddingLeft(1)
	DrawerItemSelected = lipgloss.NewStyle().Foreground(Purple).Bold(true).PaddingLeft(1)
	DrawerDivider      = lipgloss.NewStyle().Foreground(Gray)

	// Floating action button.
	Fab = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).Padding(0, 1)

	ListSelectedRow  = lipgloss.NewStyle().Padding(0).Bold(true).Foreground(Blue).Inline(true)
	ListUnelectedRow = lipgloss.NewStyle().Padding(0).Bold(false).Foreground(White).Inline(true)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center).PaddingLeft(1).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	Snackbar      = lipgloss.NewStyle().Foreground(White).Background(GrayDark).Padding(0, 1)
	SnackbarError = lipgloss.NewStyle().Foreground(White).Background(Red).Bold(true).Padding(0, 1)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1).Foreground(Whiter)

	HelpBox = lipgloss.NewStyle().Padding(2)

	IconKeys    = "🔑"
	IconInfo    = "💡"
	IconWarning = "⚠"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}

// Container renders content in a titled box.
func Container(title string, width int, height int, content string, active bool) string {
	if height <= 0 || width <= 0 {
		return ""
	}

	base := ContainerStyle
	if active {
		base = ContainerStyleActive
	}

	return base.
		Border(TitleBorder(ContainerBorder, width, title)).
		Width(width).
		Height(height).
		Render(content)
}
