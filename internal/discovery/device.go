package discovery

import (
	"fmt"
	"time"
)

// Device represents a discovered radio service on the network.
type Device struct {
	// Name is the mDNS service instance name (e.g., "FM Radio (TEA5767)").
	Name string

	// Hostname is the mDNS hostname (e.g., "radio.local.").
	Hostname string

	// IP is the IPv4 address (e.g., "192.168.1.40").
	IP string

	// Port is the HTTP port of the radio service.
	Port int

	// Metadata contains additional mDNS TXT record data.
	// The radio service advertises "app=pi-fm-radio".
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered.
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device.
func (d *Device) String() string {
	return fmt.Sprintf("Radio %q (%s) at %s:%d", d.Name, d.Hostname, d.IP, d.Port)
}

// BaseURL returns the HTTP base URL for the device.
func (d *Device) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", d.IP, d.Port)
}

// GetMetadata retrieves a TXT record value by key, or returns an empty
// string if not found.
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
