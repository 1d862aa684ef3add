package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.DeviceURL != "" {
		t.Errorf("DeviceURL = %q, want empty", cfg.DeviceURL)
	}
	if cfg.PollInterval.Std() != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.PollInterval.Std())
	}
	if cfg.RequestTimeout.Std() != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout.Std())
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Duration
		want string
	}{
		{"seconds", Duration(2 * time.Second), "2s"},
		{"milliseconds", Duration(500 * time.Millisecond), "500ms"},
		{"composite", Duration(90 * time.Second), "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal error = %v", err)
			}
			if got := strings.TrimSpace(string(data)); got != tt.want {
				t.Errorf("Marshal = %q, want %q", got, tt.want)
			}

			var back Duration
			if err := yaml.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if back != tt.in {
				t.Errorf("round trip = %v, want %v", back.Std(), tt.in.Std())
			}
		})
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := yaml.Unmarshal([]byte(`"not a duration"`), &d); err == nil {
		t.Error("Unmarshal should fail for garbage input")
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("loadFrom error = %v, want nil for missing file", err)
	}
	if cfg.PollInterval != Default().PollInterval {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
device_url: http://192.168.1.40:8000
poll_interval: 5s
request_timeout: 3s
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom error = %v", err)
	}
	if cfg.DeviceURL != "http://192.168.1.40:8000" {
		t.Errorf("DeviceURL = %q", cfg.DeviceURL)
	}
	if cfg.PollInterval.Std() != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval.Std())
	}
	if cfg.RequestTimeout.Std() != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", cfg.RequestTimeout.Std())
	}
}

func TestLoadFrom_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom should reject an unsupported config version")
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\ndevice_url: http://radio.local\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom error = %v", err)
	}
	if cfg.DeviceURL != "http://radio.local" {
		t.Errorf("DeviceURL = %q", cfg.DeviceURL)
	}
	if cfg.PollInterval != Default().PollInterval {
		t.Errorf("unset PollInterval should keep the default, got %v", cfg.PollInterval.Std())
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	// Point the XDG config home at a scratch directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.DeviceURL = "http://192.168.1.40"
	cfg.PollInterval = Duration(time.Second)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if loaded.DeviceURL != cfg.DeviceURL {
		t.Errorf("DeviceURL = %q, want %q", loaded.DeviceURL, cfg.DeviceURL)
	}
	if loaded.PollInterval != cfg.PollInterval {
		t.Errorf("PollInterval = %v, want %v", loaded.PollInterval.Std(), cfg.PollInterval.Std())
	}

	// The saved file carries the explanatory header.
	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Radio panel configuration file") {
		t.Error("saved config missing header comment")
	}
}
