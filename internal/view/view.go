package view

import (
	"fmt"
	"sort"

	"github.com/iJaack/chain-guru/internal/chain"
	"github.com/iJaack/chain-guru/internal/order"
)

// Mode selects which presentation the consumer is looking at.
type Mode string

const (
	ModeDashboard Mode = "dashboard"
	ModeGraveyard Mode = "graveyard"
	ModeAbout     Mode = "about"
)

// ParseMode validates a wire mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDashboard, ModeGraveyard, ModeAbout:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Filter restricts the dashboard to one environment.
type Filter string

const (
	FilterAll     Filter = "All"
	FilterMainnet Filter = Filter(chain.Mainnet)
	FilterTestnet Filter = Filter(chain.Testnet)
)

// ParseFilter validates a wire filter string.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterMainnet, FilterTestnet:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("unknown environment filter %q", s)
	}
}

// State holds the current presentation controls. It drives derivation
// but caches nothing.
type State struct {
	Filter  Filter          `json:"filter"`
	SortKey string          `json:"sort_key"`
	SortDir order.Direction `json:"sort_dir"`
	Mode    Mode            `json:"mode"`
}

// DefaultState is the view on first load: dashboard, all environments,
// throughput descending.
func DefaultState() State {
	return State{
		Filter:  FilterAll,
		SortKey: "tps_10min",
		SortDir: order.Desc,
		Mode:    ModeDashboard,
	}
}

// ToggleSort applies the sort-control rule: selecting the active key
// flips direction, selecting a new key adopts it descending.
func (s *State) ToggleSort(key string) {
	if key == s.SortKey {
		s.SortDir = s.SortDir.Flip()
		return
	}
	s.SortKey = key
	s.SortDir = order.Desc
}

// Visible derives the ordered sequence for the current state. Graveyard
// ignores filter and sort controls and lists dead chains by clean name
// ascending; About has no data. Inputs are never mutated.
func Visible(live, dead []chain.Annotated, s State) []chain.Annotated {
	switch s.Mode {
	case ModeGraveyard:
		out := append([]chain.Annotated(nil), dead...)
		sortBy(out, "clean_name", order.Asc)
		return out
	case ModeAbout:
		return nil
	}

	out := make([]chain.Annotated, 0, len(live))
	for _, r := range live {
		if s.Filter != FilterAll && Filter(r.Environment) != s.Filter {
			continue
		}
		out = append(out, r)
	}
	sortBy(out, s.SortKey, s.SortDir)
	return out
}

func sortBy(records []chain.Annotated, key string, dir order.Direction) {
	sort.SliceStable(records, func(i, j int) bool {
		a := order.Normalize(records[i].Field(key))
		b := order.Normalize(records[j].Field(key))
		return order.Ordered(a, b, dir) < 0
	})
}
