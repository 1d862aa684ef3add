package tuner

// Band limits of the TEA5767 tuner in MHz. The device clamps tune requests
// to this range; the client only uses these for display purposes.
const (
	BandMinMHz = 87.5
	BandMaxMHz = 108.0
)

// StatusSnapshot is one immutable read of device status at a point in time.
//
// Snapshots are created by Client.Status, consumed by the presentation
// mapper and discarded. No history is kept and no diffing is done against
// a previous snapshot; every render is a full overwrite.
//
// Fields arrive from the device as-is and are not sanitized here. Signal
// in particular is nominally 0–15 but must never be trusted as pre-bounded,
// and Frequency can fall outside the FM band.
type StatusSnapshot struct {
	// Frequency is the currently tuned frequency in MHz.
	Frequency float64 `json:"frequency"`

	// StationName is the device's display label for the current frequency.
	// Empty when the device has no matching preset.
	StationName string `json:"station_name"`

	// Stereo reports whether a stereo pilot is detected.
	Stereo bool `json:"stereo"`

	// Muted reports whether the output is muted.
	Muted bool `json:"muted"`

	// Signal is the raw signal level from the chip (nominal range 0–15).
	Signal int `json:"signal"`
}

// Preset is one named station from the device's preset list.
type Preset struct {
	Frequency float64 `json:"freq"`
	Name      string  `json:"name"`
}

// StepDirection selects the direction for a single frequency-step command.
// The step size itself is device-defined (0.1 MHz on the TEA5767 service).
type StepDirection string

const (
	StepUp   StepDirection = "up"
	StepDown StepDirection = "down"
)
