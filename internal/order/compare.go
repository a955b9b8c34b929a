package order

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction selects ascending or descending order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// MarshalJSON encodes the direction as "asc" or "desc".
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "asc" and "desc".
func (d *Direction) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"asc"`:
		*d = Asc
	case `"desc"`:
		*d = Desc
	default:
		return fmt.Errorf("unknown sort direction %s", data)
	}
	return nil
}

// Collators keep per-call iterator state, so string comparisons are
// funneled through a single guarded instance.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
)

func compareStrings(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// Compare is the base total order over normalized values:
// Empty == Empty, Empty after everything else, numbers by value,
// strings by natural case-insensitive order, numbers before strings.
func Compare(a, b Value) int {
	switch {
	case a.Kind == Empty && b.Kind == Empty:
		return 0
	case a.Kind == Empty:
		return 1
	case b.Kind == Empty:
		return -1
	}

	if a.Kind != b.Kind {
		if a.Kind == Number {
			return -1
		}
		return 1
	}

	if a.Kind == Number {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return compareStrings(a.Str, b.Str)
}

// Ordered applies dir to Compare. Empty placement and the
// number-before-string rule are direction-invariant: reversing dir never
// moves a missing value ahead of a present one.
func Ordered(a, b Value, dir Direction) int {
	switch {
	case a.Kind == Empty && b.Kind == Empty:
		return 0
	case a.Kind == Empty:
		return 1
	case b.Kind == Empty:
		return -1
	}
	if a.Kind != b.Kind {
		if a.Kind == Number {
			return -1
		}
		return 1
	}

	c := Compare(a, b)
	if dir == Desc {
		return -c
	}
	return c
}
