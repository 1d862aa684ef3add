// Package tuner provides an HTTP client for the pi-fm-radio tuner service.
//
// The radio device exposes a small JSON API over HTTP: a status endpoint
// reporting the currently tuned frequency, station name, stereo/mute flags
// and signal level, plus command endpoints for tuning, stepping, muting and
// forcing mono reception.
//
// # Usage Example
//
//	client := tuner.NewClient("192.168.1.40", 80)
//
//	status, err := client.Status(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.1f MHz (%s)\n", status.Frequency, status.StationName)
//
//	// Tune and read back the resulting state. The device may clamp the
//	// requested frequency, so the post-command status is the only truth.
//	if err := client.Tune(ctx, 96.6); err != nil {
//	    log.Fatal(err)
//	}
//	status, err = client.Status(ctx)
//
// # Error Handling
//
// Every failure is surfaced as a *TransportError: network errors, non-2xx
// response codes and malformed response bodies. The client never retries;
// callers decide whether a failed call is worth repeating (the panel's
// periodic refresh makes retrying pointless; the next tick recovers).
//
// # Thread Safety
//
// Client instances are safe for concurrent use. All methods take a
// context.Context and respect cancellation through the underlying
// net/http transport.
package tuner
