package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/t0mer/pi-fm-radio/internal/config"
	"github.com/t0mer/pi-fm-radio/internal/discovery"
	"github.com/t0mer/pi-fm-radio/internal/logging"
	"github.com/t0mer/pi-fm-radio/internal/panel"
	"github.com/t0mer/pi-fm-radio/internal/tuner"
)

// Command flags
var (
	deviceAddr     string
	devicePort     int
	requestTimeout string
	pollInterval   string
	scanTimeout    int
	outputFormat   string
)

func init() {
	// Common flags for device commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&deviceAddr, "device", "", "Radio address: URL or IP (skips discovery)")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", tuner.DefaultPort, "Radio HTTP port (used with a bare --device IP)")
	rootCmd.PersistentFlags().StringVar(&requestTimeout, "timeout", "", "HTTP request timeout (e.g., 5s, 30s)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	// Add subcommands directly to root
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuneCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(muteCmd)
	rootCmd.AddCommand(unmuteCmd)
	rootCmd.AddCommand(monoCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

// panelCmd launches the interactive instrument panel
var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Launch the interactive instrument panel",
	Long: `Launch the live terminal instrument panel.

The panel polls the radio on a fixed interval and redraws the full
frame on every status update. Keys send tuning commands; each command
is followed by an immediate refresh so the panel reflects the radio's
actual state rather than the intended one.`,
	Example: `  # Launch panel with auto-discovery
  radio-panel panel
  # Or simply (panel is default):
  radio-panel

  # Launch panel for a specific radio
  radio-panel panel --device 192.168.1.40:8000
  radio-panel --device http://radio.local:8000

  # Slower refresh for a busy network
  radio-panel panel --interval 5s`,
	RunE: runPanel,
}

func init() {
	panelCmd.Flags().StringVar(&pollInterval, "interval", "", "Status refresh interval (e.g., 2s, 500ms)")
	rootCmd.Flags().StringVar(&pollInterval, "interval", "", "Status refresh interval (e.g., 2s, 500ms)")
}

func runPanel(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the panel requires a terminal; use 'radio-panel status' for scripted output")
	}

	cfg := loadConfig()

	client, err := resolveClient(cfg)
	if err != nil {
		return err
	}

	interval := cfg.PollInterval.Std()
	if pollInterval != "" {
		interval, err = time.ParseDuration(pollInterval)
		if err != nil {
			return fmt.Errorf("invalid interval value: %w", err)
		}
	}

	logging.Info("starting panel",
		zap.String("device", client.BaseURL),
		zap.Duration("interval", interval))

	p := tea.NewProgram(panel.New(client, panel.LogReporter{}, interval))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel error: %w", err)
	}

	return nil
}

// statusCmd fetches and prints the current tuner state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current tuner status",
	Long: `Fetch and display the current state of the radio tuner.

Shows the tuned frequency, decoded RDS station name, stereo indicator,
signal level, and mute state.`,
	Example: `  # Status with auto-discovery
  radio-panel status

  # Status for a specific radio
  radio-panel status --device 192.168.1.40:8000

  # JSON output for scripting
  radio-panel status --format json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := resolveClient(loadConfig())
	if err != nil {
		return err
	}

	snapshot, err := fetchStatus(client)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		fmt.Println(formatCompact(*snapshot))
	case "detailed":
		fallthrough
	default:
		fmt.Print(formatDetailed(*snapshot))
	}

	return nil
}

// tuneCmd tunes the radio to an exact frequency
var tuneCmd = &cobra.Command{
	Use:   "tune <frequency>",
	Short: "Tune to a frequency in MHz",
	Long: `Tune the radio to an exact frequency.

The frequency is sent to the radio verbatim; the radio clamps it to
the FM band it supports.`,
	Example: `  radio-panel tune 101.1
  radio-panel tune 87.5 --device 192.168.1.40:8000`,
	Args: cobra.ExactArgs(1),
	RunE: runTune,
}

func runTune(cmd *cobra.Command, args []string) error {
	frequency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid frequency value: %w", err)
	}

	return runCommandThenStatus("tune", func(ctx context.Context, c *tuner.Client) error {
		return c.Tune(ctx, frequency)
	})
}

// stepCmd nudges the tuner one step up or down
var stepCmd = &cobra.Command{
	Use:   "step <up|down>",
	Short: "Step the tuner up or down",
	Example: `  radio-panel step up
  radio-panel step down`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
	RunE:      runStep,
}

func runStep(cmd *cobra.Command, args []string) error {
	var direction tuner.StepDirection
	switch args[0] {
	case "up":
		direction = tuner.StepUp
	case "down":
		direction = tuner.StepDown
	default:
		return fmt.Errorf("invalid direction %q (use up or down)", args[0])
	}

	return runCommandThenStatus("step", func(ctx context.Context, c *tuner.Client) error {
		return c.Step(ctx, direction)
	})
}

// muteCmd silences the audio output
var muteCmd = &cobra.Command{
	Use:   "mute",
	Short: "Mute the radio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommandThenStatus("mute", func(ctx context.Context, c *tuner.Client) error {
			return c.Mute(ctx)
		})
	},
}

// unmuteCmd restores the audio output
var unmuteCmd = &cobra.Command{
	Use:   "unmute",
	Short: "Unmute the radio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommandThenStatus("unmute", func(ctx context.Context, c *tuner.Client) error {
			return c.Unmute(ctx)
		})
	},
}

// monoCmd forces or releases mono reception
var monoCmd = &cobra.Command{
	Use:   "mono <on|off>",
	Short: "Force mono reception on or off",
	Long: `Force the tuner into mono reception, or release it back to
automatic stereo. Mono can pull a listenable signal out of a weak,
hissy stereo broadcast.`,
	Example: `  radio-panel mono on
  radio-panel mono off`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runMono,
}

func runMono(cmd *cobra.Command, args []string) error {
	var mono bool
	switch args[0] {
	case "on", "true":
		mono = true
	case "off", "false":
		mono = false
	default:
		return fmt.Errorf("invalid mono value %q (use on or off)", args[0])
	}

	return runCommandThenStatus("mono", func(ctx context.Context, c *tuner.Client) error {
		return c.SetMono(ctx, mono)
	})
}

// presetsCmd lists the radio's station presets
var presetsCmd = &cobra.Command{
	Use:   "presets [reload]",
	Short: "List station presets",
	Long: `List the station presets configured on the radio.

With the 'reload' argument, the radio re-reads its presets file from
disk before the list is fetched.`,
	Example: `  # List presets
  radio-panel presets

  # Re-read the presets file on the radio, then list
  radio-panel presets reload`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"reload"},
	RunE:      runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	client, err := resolveClient(loadConfig())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if args[0] != "reload" {
			return fmt.Errorf("unknown argument %q (did you mean 'reload'?)", args[0])
		}
		if err := callDevice(client, "presets reload", func(ctx context.Context, c *tuner.Client) error {
			return c.ReloadPresets(ctx)
		}); err != nil {
			return fmt.Errorf("failed to reload presets: %w", err)
		}
		fmt.Println("Presets reloaded.")
		fmt.Println()
	}

	var presets []tuner.Preset
	if err := callDevice(client, "presets", func(ctx context.Context, c *tuner.Client) error {
		var err error
		presets, err = c.Presets(ctx)
		return err
	}); err != nil {
		return fmt.Errorf("failed to get presets: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(presets) == 0 {
		fmt.Println("No presets configured.")
		return nil
	}

	for i, p := range presets {
		fmt.Printf("%d. %5.1f MHz  %s\n", i+1, p.Frequency, p.Name)
	}

	return nil
}

// scanCmd discovers radios on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for radios on the network",
	Long: `Scan for FM radio services using mDNS/DNS-SD discovery.

This command listens for mDNS broadcasts and displays all discovered
radios with their hostnames and addresses.`,
	Example: `  # Scan for 10 seconds (default)
  radio-panel scan

  # Quick 3-second scan
  radio-panel scan --scan-timeout 3`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "scan-timeout", 10, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for radios (timeout: %ds)...\n\n", scanTimeout)

	devices, err := discovery.ScanForDevices(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No radios found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure the radio service is running on the Pi")
		fmt.Println("  - Check that your computer is on the same network")
		fmt.Println("  - Try increasing --scan-timeout for slower networks")
		fmt.Println("  - Use --device flag to specify the address manually")
		return nil
	}

	fmt.Printf("Found %d radio(s):\n\n", len(devices))

	for i, device := range devices {
		fmt.Printf("%d. %s\n", i+1, device.Hostname)
		fmt.Printf("   Address: %s:%d\n", device.IP, device.Port)
		if len(device.Metadata) > 0 {
			fmt.Printf("   Metadata: %v\n", device.Metadata)
		}
		fmt.Println()
	}

	fmt.Println("Use 'radio-panel --device <ip>' to open the panel for one of them")

	return nil
}

// configCmd shows or updates the saved panel configuration
var configCmd = &cobra.Command{
	Use:   "config [set-device <url>]",
	Short: "Show or update the saved configuration",
	Long: `Show the saved panel configuration, or save a default radio
address so the panel skips discovery on startup.`,
	Example: `  # Show the saved configuration
  radio-panel config

  # Save a default radio address
  radio-panel config set-device http://192.168.1.40:8000

  # Clear it (discovery takes over again)
  radio-panel config set-device ""`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cfg := loadConfig()
		path, err := config.GetConfigPath()
		if err == nil {
			fmt.Printf("Config file:     %s\n", path)
		}
		if cfg.DeviceURL != "" {
			fmt.Printf("Device URL:      %s\n", cfg.DeviceURL)
		} else {
			fmt.Printf("Device URL:      (unset, mDNS discovery)\n")
		}
		fmt.Printf("Poll interval:   %s\n", cfg.PollInterval.Std())
		fmt.Printf("Request timeout: %s\n", cfg.RequestTimeout.Std())
		return nil
	}

	if args[0] != "set-device" || len(args) != 2 {
		return fmt.Errorf("usage: radio-panel config [set-device <url>]")
	}

	cfg := loadConfig()
	cfg.DeviceURL = args[1]
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if cfg.DeviceURL == "" {
		fmt.Println("Device URL cleared; discovery will be used.")
	} else {
		fmt.Printf("Device URL saved: %s\n", cfg.DeviceURL)
	}
	return nil
}

// loadConfig reads the saved config, falling back to defaults when the
// file is missing or unreadable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logging.Warn("config load failed, using defaults", zap.Error(err))
		return config.Default()
	}
	return cfg
}

// resolveClient builds a tuner client from, in order: the --device
// flag, the saved config, mDNS discovery.
func resolveClient(cfg *config.Config) (*tuner.Client, error) {
	var client *tuner.Client

	switch {
	case deviceAddr != "":
		client = clientFromAddr(deviceAddr)
	case cfg.DeviceURL != "":
		client = tuner.NewClientWithURL(cfg.DeviceURL)
	default:
		fmt.Fprintln(os.Stderr, "No radio address specified, attempting auto-discovery...")
		ctx, cancel := context.WithTimeout(context.Background(), discovery.DefaultScanTimeout)
		defer cancel()

		device, err := discovery.NewScanner().FindFirstDevice(ctx)
		if err != nil {
			return nil, fmt.Errorf("discovery failed: %w (use --device to specify the address manually)", err)
		}
		fmt.Fprintf(os.Stderr, "Found radio: %s\n\n", device)
		client = tuner.NewClientWithURL(device.BaseURL())
	}

	if requestTimeout != "" {
		timeout, err := time.ParseDuration(requestTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout value: %w", err)
		}
		client.SetTimeout(timeout)
	} else if cfg.RequestTimeout.Std() > 0 {
		client.SetTimeout(cfg.RequestTimeout.Std())
	}

	return client, nil
}

// clientFromAddr accepts either a full URL or a bare host/IP with an
// optional port.
func clientFromAddr(addr string) *tuner.Client {
	if strings.Contains(addr, "://") {
		return tuner.NewClientWithURL(addr)
	}
	if host, portStr, ok := strings.Cut(addr, ":"); ok {
		if port, err := strconv.Atoi(portStr); err == nil {
			return tuner.NewClient(host, port)
		}
	}
	return tuner.NewClient(addr, devicePort)
}

// callDevice runs one client call with a bounded context and logs the
// request outcome.
func callDevice(client *tuner.Client, op string, fn func(context.Context, *tuner.Client) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), tuner.DefaultTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx, client)
	logging.LogRequest(op, client.BaseURL, time.Since(start), err)
	return err
}

// runCommandThenStatus sends one tuning command and then re-fetches
// the status, printing what the radio actually settled on.
func runCommandThenStatus(op string, fn func(context.Context, *tuner.Client) error) error {
	client, err := resolveClient(loadConfig())
	if err != nil {
		return err
	}

	if err := callDevice(client, op, fn); err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	snapshot, err := fetchStatus(client)
	if err != nil {
		return fmt.Errorf("%s accepted, but status refresh failed: %w", op, err)
	}

	fmt.Println(formatCompact(*snapshot))
	return nil
}

func fetchStatus(client *tuner.Client) (*tuner.StatusSnapshot, error) {
	var snapshot *tuner.StatusSnapshot
	err := callDevice(client, "status", func(ctx context.Context, c *tuner.Client) error {
		var err error
		snapshot, err = c.Status(ctx)
		return err
	})
	return snapshot, err
}

// formatCompact renders a snapshot as a single line, mirroring the
// panel's readout row.
func formatCompact(s tuner.StatusSnapshot) string {
	v := panel.Map(s)
	parts := []string{v.FrequencyText + " MHz", v.NameText}
	if v.StereoLampOn {
		parts = append(parts, "stereo")
	} else {
		parts = append(parts, "mono")
	}
	parts = append(parts, fmt.Sprintf("signal %d/%d", v.MeterLitCount, panel.MeterSegments))
	if v.MuteLampOn {
		parts = append(parts, "MUTED")
	}
	return strings.Join(parts, "  ")
}

func formatDetailed(s tuner.StatusSnapshot) string {
	v := panel.Map(s)

	var b strings.Builder
	fmt.Fprintf(&b, "Frequency: %s MHz\n", v.FrequencyText)
	fmt.Fprintf(&b, "Station:   %s\n", v.NameText)
	if v.StereoLampOn {
		fmt.Fprintf(&b, "Audio:     stereo\n")
	} else {
		fmt.Fprintf(&b, "Audio:     mono\n")
	}
	fmt.Fprintf(&b, "Signal:    %d/%d\n", v.MeterLitCount, panel.MeterSegments)
	if v.MuteLampOn {
		fmt.Fprintf(&b, "Mute:      on\n")
	} else {
		fmt.Fprintf(&b, "Mute:      off\n")
	}
	return b.String()
}
