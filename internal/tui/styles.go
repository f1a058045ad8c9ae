package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for consistent styling
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#6B4FD8")

	// Status colors
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorInfo    = lipgloss.Color("#8BE9FD")

	// Neutral colors
	ColorMuted   = lipgloss.Color("#6C7086")
	ColorSubtle  = lipgloss.Color("#45475A")
	ColorText    = lipgloss.Color("#CDD6F4")
	ColorTextDim = lipgloss.Color("#A6ADC8")
	ColorBg      = lipgloss.Color("#1E1E2E")
	ColorBgDim   = lipgloss.Color("#181825")
)

// Reusable styles
var (
	// Title style for headers
	StyleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1).
			Bold(true)

	// Subtitle style
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// Success message style
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Error message style
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning message style
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Info message style
	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Muted/dimmed text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Highlighted text
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Box styles for sections
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)
)

// Form styles
var (
	StyleFormLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleFormInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)

	StyleFormInputFocused = StyleFormInput.
				BorderForeground(ColorPrimary)

	StyleFormInputError = StyleFormInput.
				BorderForeground(ColorError)

	StyleFormHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Layout styles
var (
	StyleSectionHeader = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				MarginBottom(1)

	StyleSectionContent = lipgloss.NewStyle().
				Padding(0, 2)

	StyleSidebarContainer = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(ColorSubtle).
				Width(24).
				Padding(0, 1)

	StyleNavItem = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleNavItemActive = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	StyleNavItemHover = lipgloss.NewStyle().
				Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorSubtle).
			Foreground(ColorTextDim)

	StyleStatusSource = lipgloss.NewStyle().
				Foreground(ColorInfo)

	StyleStatusModified = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusSaved = lipgloss.NewStyle().
				Foreground(ColorSuccess)
)

// Field list styles
var (
	StyleFieldHeading = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	StyleFieldHeader = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	StyleFieldSelected = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(ColorPrimary).
				PaddingLeft(1)

	StyleFieldIdle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1)

	StylePropertyName = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Width(18)

	StylePropertyActive = StylePropertyName.
				Foreground(ColorPrimary).
				Bold(true)
)

// Swatch renders a block filled with hex, or an empty outline when hex is
// empty, which stands for a transparent colour.
func Swatch(hex string) string {
	if hex == "" {
		return StyleMuted.Render(IconSwatchEmpty)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(IconSwatch)
}

// Icons for different states
const (
	IconSuccess     = "✓"
	IconError       = "✗"
	IconWarning     = "!"
	IconInfo        = "·"
	IconArrow       = "→"
	IconBullet      = "•"
	IconFile        = "📄"
	IconVisible     = "◉"
	IconHidden      = "○"
	IconSwatch      = "■"
	IconSwatchEmpty = "□"
)
