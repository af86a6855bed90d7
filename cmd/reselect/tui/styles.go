package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// DetailWidth is the fixed width of the detail pane.
const DetailWidth = 34

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// List styles.
var (
	// HeaderStyle is used for section headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedRowStyle marks the selected row.
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorGreen).
				Bold(true)

	// CursorRowStyle marks the cursor row when it is not selected.
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1)

	// HandleStyle renders the reorder handle shown in edit mode.
	HandleStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	// DimStyle is used for placeholders and scroll hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ListPaneStyle wraps the list column.
	ListPaneStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)
)

// Detail pane styles.
var (
	// DetailPaneStyle wraps the detail column.
	DetailPaneStyle = lipgloss.NewStyle().
			Width(DetailWidth).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1).
			PaddingLeft(1)

	// DetailTitleStyle is used for the detailed entry's title.
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// DetailLabelStyle is used for field labels in the detail pane.
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// BrowseModeStyle labels browse mode.
	BrowseModeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// EditModeStyle labels edit mode.
	EditModeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPeach).
			Padding(0, 1).
			Bold(true)

	// ErrorStyle is used for the last edit error.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorSurface0)
)

// PromptStyle frames the insert prompt.
var PromptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBlue).
	Padding(0, 1)
