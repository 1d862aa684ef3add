package panel

import (
	"math"
	"testing"

	"github.com/t0mer/pi-fm-radio/internal/tuner"
)

func TestMap_MeterClampTotality(t *testing.T) {
	// Any integer signal produces a lit count inside the meter, and clamping
	// before mapping changes nothing.
	for signal := -50; signal <= 50; signal++ {
		v := Map(tuner.StatusSnapshot{Signal: signal})

		if v.MeterLitCount < 0 || v.MeterLitCount > MeterSegments {
			t.Fatalf("Map(signal=%d).MeterLitCount = %d, outside [0,%d]",
				signal, v.MeterLitCount, MeterSegments)
		}

		preClamped := Map(tuner.StatusSnapshot{Signal: clampInt(signal, 0, MeterSegments)})
		if v.MeterLitCount != preClamped.MeterLitCount {
			t.Fatalf("Map(signal=%d) = %d, but Map(clamped) = %d",
				signal, v.MeterLitCount, preClamped.MeterLitCount)
		}
	}
}

func TestMap_NeedleMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for f := tuner.BandMinMHz; f <= tuner.BandMaxMHz; f += 0.1 {
		angle := Map(tuner.StatusSnapshot{Frequency: f}).NeedleAngleDegrees
		if angle < prev {
			t.Fatalf("needle angle decreased: %v MHz -> %v°, previous %v°", f, angle, prev)
		}
		prev = angle
	}
}

func TestMap_NeedleBoundaries(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{"bottom of band", 87.5, -70},
		{"top of band", 108.0, 70},
		{"below band saturates", 50.0, -70},
		{"far below band saturates", -3.0, -70},
		{"above band saturates", 120.0, 70},
		{"band center", 97.75, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tuner.StatusSnapshot{Frequency: tt.freq}).NeedleAngleDegrees
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("needleAngle(%v) = %v, want %v", tt.freq, got, tt.want)
			}
		})
	}
}

func TestMap_Purity(t *testing.T) {
	snapshot := tuner.StatusSnapshot{
		Frequency:   96.6,
		StationName: "Preset 1",
		Stereo:      true,
		Muted:       false,
		Signal:      11,
	}

	first := Map(snapshot)
	second := Map(snapshot)

	if first != second {
		t.Errorf("Map is not pure: first = %+v, second = %+v", first, second)
	}
}

func TestMap_UnknownStationDefault(t *testing.T) {
	v := Map(tuner.StatusSnapshot{Frequency: 99.8})
	if v.NameText != UnknownStation {
		t.Errorf("NameText = %q, want %q", v.NameText, UnknownStation)
	}

	v = Map(tuner.StatusSnapshot{Frequency: 99.8, StationName: "Radio X"})
	if v.NameText != "Radio X" {
		t.Errorf("NameText = %q, want %q", v.NameText, "Radio X")
	}
}

func TestMap_FrequencyText(t *testing.T) {
	tests := []struct {
		freq float64
		want string
	}{
		{96.6, "96.6"},
		{101.05, "101.1"}, // half rounds away from zero
		{99.8, "99.8"},
		{108.0, "108.0"},
		{87.5, "87.5"},
		{100.0, "100.0"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		got := Map(tuner.StatusSnapshot{Frequency: tt.freq}).FrequencyText
		if got != tt.want {
			t.Errorf("FrequencyText(%v) = %q, want %q", tt.freq, got, tt.want)
		}
	}
}

func TestMap_Lamps(t *testing.T) {
	v := Map(tuner.StatusSnapshot{Stereo: true, Muted: true})
	if !v.StereoLampOn || !v.MuteLampOn {
		t.Errorf("lamps = %v/%v, want true/true", v.StereoLampOn, v.MuteLampOn)
	}

	v = Map(tuner.StatusSnapshot{})
	if v.StereoLampOn || v.MuteLampOn {
		t.Errorf("lamps = %v/%v, want false/false", v.StereoLampOn, v.MuteLampOn)
	}
}

func TestMap_OverdrivenSnapshot(t *testing.T) {
	// Out-of-range signal and frequency in a single snapshot.
	v := Map(tuner.StatusSnapshot{Frequency: 101.05, Signal: 20})

	if v.FrequencyText != "101.1" {
		t.Errorf("FrequencyText = %q, want %q", v.FrequencyText, "101.1")
	}
	if v.MeterLitCount != 15 {
		t.Errorf("MeterLitCount = %d, want 15", v.MeterLitCount)
	}
	if v.MuteLampOn {
		t.Error("MuteLampOn = true, want false")
	}

	// -70 + 140*(101.05-87.5)/20.5
	wantAngle := -70.0 + 140.0*(101.05-87.5)/20.5
	if math.Abs(v.NeedleAngleDegrees-wantAngle) > 1e-9 {
		t.Errorf("NeedleAngleDegrees = %v, want %v", v.NeedleAngleDegrees, wantAngle)
	}
}
