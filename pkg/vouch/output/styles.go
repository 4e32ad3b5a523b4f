package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
// These provide a consistent color scheme across all formatters.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for matched files and clean runs (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for moved and extra files (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for mismatches (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for skipped files and secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Box styles for containing grouped content.
var (
	// HeaderBox is the style for the header section containing run info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// SummaryBox is the style for the summary section.
	SummaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)
)

// Text styles for various content types.
var (
	// LabelStyle is used for field labels (e.g., "Root:", "Snapshot:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// MatchedStyle is used for matched verdict markers.
	MatchedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// MismatchStyle is used for mismatch verdict markers.
	MismatchStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// MovedStyle is used for moved verdict markers.
	MovedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ExtraStyle is used for extra verdict markers.
	ExtraStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// SkippedStyle is used for skipped verdict markers.
	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// PathStyle is used for file paths.
	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// MutedStyle is used for less important text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
