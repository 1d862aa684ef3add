// Package config stores the radio panel's user settings.
//
// Settings live in a YAML file in the platform configuration directory
// ($XDG_CONFIG_HOME/radio-panel/config.yaml on Linux). The file records
// the radio device's base URL, the panel's poll interval and the HTTP
// request timeout. A missing file yields defaults; command-line flags
// override whatever the file says.
//
// Saves are atomic (write to a temporary file, then rename) so a crash
// mid-write never leaves a corrupt config behind.
package config
