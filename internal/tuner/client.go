package tuner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultPort is the default HTTP port for the radio service.
	DefaultPort = 80

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// Client talks to the radio tuner service over HTTP.
//
// The client issues exactly one request per call and never retries;
// see the package documentation for the error model.
type Client struct {
	// BaseURL is the base URL for the device (e.g., "http://192.168.1.40").
	BaseURL string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// NewClient creates a client for a device at the given host and port.
func NewClient(host string, port int) *Client {
	return NewClientWithURL(fmt.Sprintf("http://%s:%d", host, port))
}

// NewClientWithURL creates a client with a full base URL
// (e.g., "http://192.168.1.40:8000").
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Status fetches the current device status. It performs a single
// GET /api/status and decodes the body into a StatusSnapshot. Optional
// fields missing from the payload decode to their zero values; decoding
// never fails merely because a field is absent.
func (c *Client) Status(ctx context.Context) (*StatusSnapshot, error) {
	var snapshot StatusSnapshot
	if err := c.get(ctx, "status", "/api/status", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Tune requests the device tune to the given frequency in MHz. The value
// is sent verbatim; range validation (and clamping) is the device's
// responsibility. Callers must re-fetch status afterwards to learn the
// frequency the device actually settled on.
func (c *Client) Tune(ctx context.Context, frequency float64) error {
	return c.post(ctx, "tune", "/api/tune", map[string]float64{"frequency": frequency})
}

// Step requests a single frequency-step adjustment in the given direction.
// The step size is device-defined.
func (c *Client) Step(ctx context.Context, direction StepDirection) error {
	return c.post(ctx, "step", "/api/step", map[string]StepDirection{"direction": direction})
}

// Mute silences the output. Muting an already muted device is a no-op on
// the device side, not an error.
func (c *Client) Mute(ctx context.Context) error {
	return c.post(ctx, "mute", "/api/mute", nil)
}

// Unmute restores the output. Idempotent like Mute.
func (c *Client) Unmute(ctx context.Context) error {
	return c.post(ctx, "unmute", "/api/unmute", nil)
}

// SetMono forces mono reception when mono is true and restores stereo
// detection when false.
func (c *Client) SetMono(ctx context.Context, mono bool) error {
	return c.post(ctx, "mono", "/api/mono", map[string]bool{"mono": mono})
}

// Presets fetches the device's station preset list, sorted by frequency.
func (c *Client) Presets(ctx context.Context) ([]Preset, error) {
	var payload struct {
		Presets []Preset `json:"presets"`
	}
	if err := c.get(ctx, "presets", "/api/presets", &payload); err != nil {
		return nil, err
	}
	return payload.Presets, nil
}

// ReloadPresets asks the device to re-read its preset file from disk.
func (c *Client) ReloadPresets(ctx context.Context) error {
	return c.post(ctx, "presets reload", "/api/presets/reload", nil)
}

// get issues a GET request and decodes the response body into out.
func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return newTransportError(op, 0, "failed to create request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return newTransportError(op, 0, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newTransportError(op, resp.StatusCode,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(op, resp.StatusCode, "failed to read response body", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newTransportError(op, resp.StatusCode, "malformed response body", err)
	}

	return nil
}

// post issues a POST request with an optional JSON body. The response body
// is ignored: command acknowledgments can diverge from the true resulting
// state (the device clamps out-of-range frequencies), so callers converge
// through a follow-up Status call instead.
func (c *Client) post(ctx context.Context, op, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return newTransportError(op, 0, "failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, reader)
	if err != nil {
		return newTransportError(op, 0, "failed to create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return newTransportError(op, 0, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newTransportError(op, resp.StatusCode,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	return nil
}
