package pushforge

import (
	"bytes"
	"context"
	"net/http"
)

// Request is the wire-ready artifact for one notification: where to POST,
// which headers to send, and the encrypted body. It is returned once per
// Build call and never mutated by the library afterwards.
//
// Headers is a plain map rather than an http.Header so the literal header
// names (TTL, Crypto-Key) survive; push services match them as-is.
type Request struct {
	Endpoint string
	Headers  map[string]string
	Body     []byte
}

// NewHTTPRequest builds the *http.Request a caller hands to its HTTP
// client. No I/O is performed; sending, retries, and response handling
// stay with the caller.
func (r *Request) NewHTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}

	for name, value := range r.Headers {
		req.Header.Set(name, value)
	}

	return req, nil
}
