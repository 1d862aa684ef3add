// Package discovery locates the radio service on the local network via
// mDNS (multicast DNS / DNS-SD).
//
// The pi-fm-radio service advertises itself as a plain "_http._tcp"
// service carrying an "app=pi-fm-radio" TXT record. Discovery browses the
// local domain for HTTP services and filters on that record, falling back
// to a hostname match for installs that advertise without TXT data.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, device := range devices {
//	    fmt.Printf("Found %s at %s\n", device.Name, device.BaseURL())
//	}
//
// # Network Requirements
//
//   - Multicast support on the network interface
//   - Device on the same local network segment
//   - Firewall allowing mDNS (UDP port 5353)
package discovery
