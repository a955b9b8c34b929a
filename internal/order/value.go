package order

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags a normalized sort value.
type Kind int

const (
	Empty Kind = iota
	Number
	String
)

// Value is the normalized form of an arbitrary record field. Exactly one
// of Num/Str is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Normalize maps any raw field value onto a Value. It is total: no input
// produces an error, malformed data degrades to Empty or String.
func Normalize(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: Empty}
	case float64:
		return numberOrEmpty(v)
	case float32:
		return numberOrEmpty(float64(v))
	case int:
		return Value{Kind: Number, Num: float64(v)}
	case int64:
		return Value{Kind: Number, Num: float64(v)}
	case *float64:
		if v == nil {
			return Value{Kind: Empty}
		}
		return numberOrEmpty(*v)
	case bool:
		if v {
			return Value{Kind: Number, Num: 1}
		}
		return Value{Kind: Number, Num: 0}
	case string:
		return normalizeString(v)
	default:
		return Value{Kind: String, Str: fmt.Sprint(v)}
	}
}

func numberOrEmpty(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{Kind: Empty}
	}
	return Value{Kind: Number, Num: f}
}

func normalizeString(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Value{Kind: Empty}
	}
	// "1,234,567" style thousands separators parse as numbers
	numeric := strings.ReplaceAll(trimmed, ",", "")
	if f, err := strconv.ParseFloat(numeric, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Value{Kind: Number, Num: f}
	}
	return Value{Kind: String, Str: trimmed}
}
