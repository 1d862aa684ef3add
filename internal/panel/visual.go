package panel

import (
	"math"
	"strconv"

	"github.com/t0mer/pi-fm-radio/internal/tuner"
)

const (
	// MeterSegments is the number of discrete segments in the signal meter.
	// Matches the 4-bit signal level reported by the tuner chip.
	MeterSegments = 15

	// NeedleTravelDegrees is the needle's maximum deflection from center.
	// The needle sweeps linearly from -NeedleTravelDegrees at the bottom of
	// the band to +NeedleTravelDegrees at the top.
	NeedleTravelDegrees = 70.0

	// UnknownStation is substituted when the device reports no station name.
	UnknownStation = "Unknown"
)

// VisualState is the complete set of visual property assignments for the
// instrument panel. It is a total, deterministic, side-effect-free function
// of a StatusSnapshot (see Map); it is never mutated independently of a
// snapshot, and field-wise equal snapshots always produce field-wise equal
// visual states.
type VisualState struct {
	// FrequencyText is the tuned frequency with one decimal, e.g. "96.6".
	FrequencyText string

	// NameText is the station label, never empty.
	NameText string

	// StereoLampOn and MuteLampOn are the two indicator lamps.
	StereoLampOn bool
	MuteLampOn   bool

	// MeterLitCount is how many meter segments are lit, always in
	// [0, MeterSegments].
	MeterLitCount int

	// NeedleAngleDegrees is the needle deflection, always in
	// [-NeedleTravelDegrees, +NeedleTravelDegrees].
	NeedleAngleDegrees float64
}

// Map translates a status snapshot into visual state.
//
// The raw signal level is clamped into the meter range rather than trusted:
// the chip nominally reports 0–15 but the wire value is tolerated at any
// integer. The frequency is clamped into the FM band before the needle
// angle is interpolated, so out-of-band values saturate at the ends of the
// needle's physical travel instead of extrapolating past it.
func Map(s tuner.StatusSnapshot) VisualState {
	return VisualState{
		FrequencyText:      formatFrequency(s.Frequency),
		NameText:           stationName(s.StationName),
		StereoLampOn:       s.Stereo,
		MuteLampOn:         s.Muted,
		MeterLitCount:      clampInt(s.Signal, 0, MeterSegments),
		NeedleAngleDegrees: needleAngle(s.Frequency),
	}
}

// formatFrequency renders a frequency with one decimal place, rounding
// half away from zero (101.05 -> "101.1").
func formatFrequency(mhz float64) string {
	return strconv.FormatFloat(math.Round(mhz*10)/10, 'f', 1, 64)
}

// stationName substitutes the placeholder label for an absent name.
func stationName(name string) string {
	if name == "" {
		return UnknownStation
	}
	return name
}

// needleAngle linearly maps a frequency in the FM band onto the needle's
// travel range. Frequencies at or below the bottom of the band map to
// -NeedleTravelDegrees, at or above the top to +NeedleTravelDegrees.
func needleAngle(mhz float64) float64 {
	clamped := clampFloat(mhz, tuner.BandMinMHz, tuner.BandMaxMHz)
	t := (clamped - tuner.BandMinMHz) / (tuner.BandMaxMHz - tuner.BandMinMHz)
	return -NeedleTravelDegrees + t*2*NeedleTravelDegrees
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
