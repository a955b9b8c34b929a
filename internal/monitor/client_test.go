package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchChains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chains" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"chain_id":"1","chain_name":"Ethereum Mainnet","type":"EVM","tps_10min":12.5,"total_tx_count":2000000,"is_dead":false},
			{"chain_id":"solana","chain_name":"Solana","type":"Non-EVM","tps_10min":"3,000","is_dead":false}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	records, err := c.FetchChains(context.Background())
	if err != nil {
		t.Fatalf("FetchChains: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].ChainName != "Ethereum Mainnet" {
		t.Errorf("name = %q", records[0].ChainName)
	}
	// malformed field carried through, degraded later, not fatal
	if records[1].TPS() != 3000 {
		t.Errorf("string TPS = %v, want 3000", records[1].TPS())
	}
}

func TestFetchChainsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchChains(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fe.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", fe.Status)
	}
}

func TestFetchChainsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.FetchChains(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fe.Err == nil {
		t.Error("transport FetchError carries no cause")
	}
}

func TestFetchChainsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchChains(context.Background())

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}
