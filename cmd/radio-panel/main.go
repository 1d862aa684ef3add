// Radio-panel is a terminal instrument panel for a Raspberry Pi FM
// radio service.
//
// It renders the tuner state (frequency readout, station name, signal
// meter, tuning dial, stereo and mute lamps) as a live panel and sends
// tuning commands back to the radio over HTTP. The radio service is
// located via the --device flag, a saved config file, or mDNS
// discovery, in that order.
//
// Usage:
//
//	radio-panel [command] [flags]
//
// Running without arguments launches the interactive panel.
// See 'radio-panel --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t0mer/pi-fm-radio/internal/logging"
	"github.com/t0mer/pi-fm-radio/internal/version"
)

func main() {
	// Silent by default; set RADIO_PANEL_LOG_LEVEL=debug for detail.
	if err := logging.InitializeFromEnv(); err != nil {
		_ = err
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "radio-panel",
	Short: "FM Radio Instrument Panel",
	Long: `A terminal instrument panel for a Raspberry Pi FM radio.

Displays the tuner state as a live panel (frequency, station name,
signal meter, dial needle, stereo and mute lamps) and sends tuning
commands to the radio service over HTTP.

If no command is specified, the interactive panel will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the panel when no subcommand provided
		return runPanel(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("radio-panel %s (commit: %s)\n", version.Version, version.Commit)
	},
}
