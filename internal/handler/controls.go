package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iJaack/chain-guru/internal/chain"
	"github.com/iJaack/chain-guru/internal/monitor"
	"github.com/iJaack/chain-guru/internal/view"
)

// SetView selects the presentation mode.
func SetView(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode string `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		mode, err := view.ParseMode(req.Mode)
		if err != nil {
			http.Error(w, `{"error":"unknown view mode"}`, http.StatusBadRequest)
			return
		}
		engine.SetMode(mode)
		writeJSON(w, engine.State())
	}
}

// SetFilter restricts the dashboard to one environment.
func SetFilter(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Environment string `json:"environment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		filter, err := view.ParseFilter(req.Environment)
		if err != nil {
			http.Error(w, `{"error":"unknown environment filter"}`, http.StatusBadRequest)
			return
		}
		engine.SetFilter(filter)
		writeJSON(w, engine.State())
	}
}

// SetSort applies the sort-toggle rule for a key.
func SetSort(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Key string `json:"key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
			http.Error(w, `{"error":"sort key required"}`, http.StatusBadRequest)
			return
		}
		engine.SetSort(req.Key)
		writeJSON(w, engine.State())
	}
}

// UpdatePricing adjusts one pricing field for one ecosystem type.
func UpdatePricing(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type  string  `json:"type"`
			Field string  `json:"field"`
			Value float64 `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if err := engine.SetPricing(chain.ParseEcosystem(req.Type), req.Field, req.Value); err != nil {
			// err.Error() may contain quotes, so it has to be encoded
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, engine.Pricing())
	}
}

// Refresh triggers an immediate, serialized snapshot refresh. This is
// also the explicit retry path out of the failed-before-first-load
// state.
func Refresh(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := engine.RefreshNow(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(engine.Status())
			return
		}
		writeJSON(w, engine.Status())
	}
}
