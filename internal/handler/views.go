package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iJaack/chain-guru/internal/chain"
	"github.com/iJaack/chain-guru/internal/monitor"
)

// Dashboard serves the filtered, ordered live view together with the
// controls that produced it.
func Dashboard(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !engine.Loaded() {
			serveUnavailable(w, engine)
			return
		}
		records := engine.Dashboard()
		if records == nil {
			records = []chain.Annotated{}
		}
		writeJSON(w, map[string]any{
			"records": records,
			"state":   engine.State(),
		})
	}
}

// Graveyard serves delisted chains, clean name ascending.
func Graveyard(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !engine.Loaded() {
			serveUnavailable(w, engine)
			return
		}
		records := engine.Graveyard()
		if records == nil {
			records = []chain.Annotated{}
		}
		writeJSON(w, map[string]any{"records": records})
	}
}

// Stats serves the aggregate snapshot under the current pricing.
func Stats(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !engine.Loaded() {
			serveUnavailable(w, engine)
			return
		}
		writeJSON(w, map[string]any{
			"stats":   engine.Stats(),
			"pricing": engine.Pricing(),
		})
	}
}

// EngineStatus reports whether the snapshot is loading, failed or ready.
func EngineStatus(engine *monitor.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Status())
	}
}

// serveUnavailable distinguishes first-load-in-progress from
// failed-before-first-load.
func serveUnavailable(w http.ResponseWriter, engine *monitor.Engine) {
	st := engine.Status()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(st)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
