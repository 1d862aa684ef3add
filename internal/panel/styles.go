package panel

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	// DialWidth is the number of character cells in the needle dial.
	DialWidth = 41

	// MaxStationRunes is the longest station name shown before truncation.
	// Matches the device's own OLED renderer.
	MaxStationRunes = 18
)

// Color palette: warm amber instrument lighting on a dark chassis.
var (
	AmberColor  = lipgloss.Color("#FFB000")
	GreenColor  = lipgloss.Color("#43BF6D")
	RedColor    = lipgloss.Color("#FF5555")
	DimColor    = lipgloss.Color("#626262")
	TextColor   = lipgloss.Color("#FFFFFF")
	BorderColor = lipgloss.Color("#8B6914")
)

// Common styles
var (
	// Panel chassis
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 3)

	// Frequency readout
	FrequencyStyle = lipgloss.NewStyle().
			Foreground(AmberColor).
			Bold(true)

	// Station name line
	StationStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Lamps
	LampOnStereoStyle = lipgloss.NewStyle().
				Foreground(GreenColor).
				Bold(true)

	LampOnMuteStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true)

	LampOffStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	// Signal meter
	MeterLitStyle = lipgloss.NewStyle().
			Foreground(AmberColor)

	MeterDimStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	// Needle dial
	DialScaleStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	NeedleStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true)

	// Footer / help
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	// Direct-tune prompt
	PromptStyle = lipgloss.NewStyle().
			Foreground(AmberColor)
)
