package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iJaack/chain-guru/internal/chain"
)

// FetchError reports a transport failure or a non-success HTTP status
// from the snapshot API.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch chains: %v", e.Err)
	}
	return fmt.Sprintf("fetch chains: unexpected status %d", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a malformed snapshot payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse chains payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client reads chain snapshots from the upstream chains API.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient builds a client against baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}
}

// FetchChains GETs the full snapshot. Failures map onto the boundary
// taxonomy: *FetchError for transport/status problems, *ParseError for
// payload problems. Field-level defects inside individual records do not
// fail the fetch; they are carried raw and degrade during derivation.
func (c *Client) FetchChains(ctx context.Context) ([]chain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/chains", nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	var records []chain.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &ParseError{Err: err}
	}
	return records, nil
}
