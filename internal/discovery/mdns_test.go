package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name: "radio service identified by TXT record",
			entry: &zeroconf.ServiceEntry{
				HostName: "raspberrypi.local.",
				Port:     8000,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.40")},
				Text:     []string{"app=pi-fm-radio", "path=/"},
			},
			wantNil:  false,
			wantIP:   "192.168.1.40",
			wantPort: 8000,
		},
		{
			name: "radio hostname without TXT record",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantNil:  false,
			wantIP:   "10.0.0.5",
			wantPort: 80,
		},
		{
			name: "prefixed radio hostname without trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "pi-fm-radio-kitchen.local",
				Port:     8000,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.7")},
			},
			wantNil:  false,
			wantIP:   "10.0.0.7",
			wantPort: 8000,
		},
		{
			name: "no port specified defaults to 80",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				Port:     0,
				AddrIPv4: []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantNil:  false,
			wantIP:   "172.16.0.1",
			wantPort: 80,
		},
		{
			name: "unrelated HTTP service filtered out",
			entry: &zeroconf.ServiceEntry{
				HostName: "printer.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
				Text:     []string{"app=ipp-everywhere"},
			},
			wantNil: true,
		},
		{
			name: "radio service without any address",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				Port:     80,
				Text:     []string{"app=pi-fm-radio"},
			},
			wantNil: true,
		},
		{
			name: "IPv6-only radio service",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				Port:     8000,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
				Text:     []string{"app=pi-fm-radio"},
			},
			wantNil:  false,
			wantIP:   "fe80::1",
			wantPort: 8000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if device != nil {
					t.Errorf("parseServiceEntry() = %+v, want nil", device)
				}
				return
			}

			if device == nil {
				t.Fatal("parseServiceEntry() = nil, want device")
			}
			if device.IP != tt.wantIP {
				t.Errorf("IP = %s, want %s", device.IP, tt.wantIP)
			}
			if device.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", device.Port, tt.wantPort)
			}
			if device.DiscoveredAt.IsZero() {
				t.Error("DiscoveredAt should be set")
			}
		})
	}
}

func TestParseTXT(t *testing.T) {
	metadata := parseTXT([]string{"app=pi-fm-radio", "path=/", "flag"})

	if metadata["app"] != "pi-fm-radio" {
		t.Errorf("app = %q, want pi-fm-radio", metadata["app"])
	}
	if metadata["path"] != "/" {
		t.Errorf("path = %q, want /", metadata["path"])
	}
	if v, ok := metadata["flag"]; !ok || v != "" {
		t.Errorf("bare key should map to empty string, got %q (present=%v)", v, ok)
	}
}

func TestDevice_BaseURL(t *testing.T) {
	device := &Device{IP: "192.168.1.40", Port: 8000}
	if got := device.BaseURL(); got != "http://192.168.1.40:8000" {
		t.Errorf("BaseURL() = %s, want http://192.168.1.40:8000", got)
	}
}

func TestDevice_GetMetadata(t *testing.T) {
	device := &Device{Metadata: map[string]string{"app": "pi-fm-radio"}}

	if got := device.GetMetadata("app"); got != "pi-fm-radio" {
		t.Errorf("GetMetadata(app) = %q", got)
	}
	if got := device.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}

	var empty Device
	if got := empty.GetMetadata("app"); got != "" {
		t.Errorf("GetMetadata on nil map = %q, want empty", got)
	}
}
