package panel

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the complete instrument panel for a visual state. Every
// element (readout, lamps, meter, dial) is re-assigned from scratch on
// each call, so a render can never leave a stale lamp or meter segment
// behind from a previous frame.
func Render(v VisualState) string {
	readout := FrequencyStyle.Render(v.FrequencyText + " MHz")
	lamps := renderLamps(v.StereoLampOn, v.MuteLampOn)

	gap := DialWidth - lipgloss.Width(readout) - lipgloss.Width(lamps)
	if gap < 1 {
		gap = 1
	}
	top := readout + strings.Repeat(" ", gap) + lamps

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(StationStyle.Render(truncateStation(v.NameText)))
	b.WriteString("\n\n")
	b.WriteString(renderMeter(v.MeterLitCount))
	b.WriteString("\n\n")
	b.WriteString(renderDial(v.NeedleAngleDegrees))

	return b.String()
}

// renderLamps draws both indicator lamps. Each lamp is always emitted,
// lit or unlit, never skipped.
func renderLamps(stereo, mute bool) string {
	st := LampOffStyle.Render("○ ST")
	if stereo {
		st = LampOnStereoStyle.Render("● ST")
	}

	mu := LampOffStyle.Render("○ MUTE")
	if mute {
		mu = LampOnMuteStyle.Render("● MUTE")
	}

	return st + "  " + mu
}

// renderMeter draws the signal meter as a prefix of lit segments followed
// by unlit segments, always MeterSegments cells wide.
func renderMeter(lit int) string {
	lit = clampInt(lit, 0, MeterSegments)

	var b strings.Builder
	b.WriteString(MeterDimStyle.Render("SIG "))
	b.WriteString(MeterLitStyle.Render(strings.Repeat("▮", lit)))
	b.WriteString(MeterDimStyle.Render(strings.Repeat("▯", MeterSegments-lit)))
	b.WriteString(MeterDimStyle.Render(fmt.Sprintf(" %2d/%d", lit, MeterSegments)))
	return b.String()
}

// renderDial draws the frequency scale with the tuning needle underneath.
func renderDial(angleDegrees float64) string {
	col := needleColumn(angleDegrees, DialWidth)

	ticks := make([]rune, DialWidth)
	for i := range ticks {
		switch {
		case i == 0:
			ticks[i] = '└'
		case i == DialWidth-1:
			ticks[i] = '┘'
		case i%5 == 0:
			ticks[i] = '┴'
		default:
			ticks[i] = '─'
		}
	}

	track := DialScaleStyle.Render(string(ticks[:col])) +
		NeedleStyle.Render("▼") +
		DialScaleStyle.Render(string(ticks[col+1:]))

	return DialScaleStyle.Render(dialScale()) + "\n" + track
}

// needleColumn converts a needle angle into a dial cell index. The needle's
// travel maps linearly across the dial width, matching the angle mapping of
// the visual state.
func needleColumn(angleDegrees float64, width int) int {
	t := (angleDegrees + NeedleTravelDegrees) / (2 * NeedleTravelDegrees)
	col := int(math.Round(t * float64(width-1)))
	return clampInt(col, 0, width-1)
}

// dialScale builds the MHz label row above the dial, one label every
// 4 MHz across the band.
func dialScale() string {
	scale := []rune(strings.Repeat(" ", DialWidth))
	for mhz := 88.0; mhz <= 108.0; mhz += 4 {
		label := fmt.Sprintf("%.0f", mhz)
		angle := needleAngle(mhz)
		col := needleColumn(angle, DialWidth)

		// Center the label on the tick, keeping it inside the dial.
		start := clampInt(col-len(label)/2, 0, DialWidth-len(label))
		copy(scale[start:], []rune(label))
	}
	return string(scale)
}

// truncateStation trims long station names the same way the device's own
// display does.
func truncateStation(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxStationRunes {
		return name
	}
	return string(runes[:MaxStationRunes]) + "…"
}
