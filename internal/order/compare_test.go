package order

import "testing"

func num(f float64) Value { return Value{Kind: Number, Num: f} }
func str(s string) Value  { return Value{Kind: String, Str: s} }

var empty = Value{Kind: Empty}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
		{-1, 0, -1},
		{0.1, 0.2, -1},
	}
	for _, tt := range tests {
		if got := Compare(num(tt.a), num(tt.b)); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareStringsNatural(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"chain2", "chain10", -1}, // numeral runs compare numerically
		{"chain10", "chain2", 1},
		{"alpha", "beta", -1},
		{"Ethereum", "ethereum", 0}, // case-insensitive
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := Compare(str(tt.a), str(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareMixedKinds(t *testing.T) {
	if got := Compare(num(99), str("alpha")); got != -1 {
		t.Errorf("number vs string = %d, want -1", got)
	}
	if got := Compare(str("alpha"), num(99)); got != 1 {
		t.Errorf("string vs number = %d, want 1", got)
	}
}

func TestCompareEmpty(t *testing.T) {
	if got := Compare(empty, empty); got != 0 {
		t.Errorf("empty vs empty = %d, want 0", got)
	}
	if got := Compare(empty, num(0)); got != 1 {
		t.Errorf("empty vs number = %d, want 1", got)
	}
	if got := Compare(str(""), empty); got != -1 {
		t.Errorf("string vs empty = %d, want -1", got)
	}
}

// Missing values must never lead the list, whichever way it is sorted.
func TestOrderedEmptyAlwaysLast(t *testing.T) {
	nonEmpty := []Value{num(-1), num(0), num(100), str(""), str("zzz"), str("0")}
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range nonEmpty {
			if got := Ordered(empty, v, dir); got != 1 {
				t.Errorf("Ordered(empty, %+v, %v) = %d, want 1", v, dir, got)
			}
			if got := Ordered(v, empty, dir); got != -1 {
				t.Errorf("Ordered(%+v, empty, %v) = %d, want -1", v, dir, got)
			}
		}
		if got := Ordered(empty, empty, dir); got != 0 {
			t.Errorf("Ordered(empty, empty, %v) = %d, want 0", dir, got)
		}
	}
}

// Numbers stay ahead of strings regardless of direction.
func TestOrderedMixedDirectionInvariant(t *testing.T) {
	for _, dir := range []Direction{Asc, Desc} {
		if got := Ordered(num(1), str("a"), dir); got != -1 {
			t.Errorf("Ordered(number, string, %v) = %d, want -1", dir, got)
		}
		if got := Ordered(str("a"), num(1), dir); got != 1 {
			t.Errorf("Ordered(string, number, %v) = %d, want 1", dir, got)
		}
	}
}

func TestOrderedDirection(t *testing.T) {
	if got := Ordered(num(1), num(2), Asc); got != -1 {
		t.Errorf("asc: Ordered(1, 2) = %d, want -1", got)
	}
	if got := Ordered(num(1), num(2), Desc); got != 1 {
		t.Errorf("desc: Ordered(1, 2) = %d, want 1", got)
	}
	if got := Ordered(str("alpha"), str("beta"), Desc); got != 1 {
		t.Errorf("desc: Ordered(alpha, beta) = %d, want 1", got)
	}
}

func TestDirectionFlip(t *testing.T) {
	if Asc.Flip() != Desc || Desc.Flip() != Asc {
		t.Error("Flip did not invert direction")
	}
	if Asc.String() != "asc" || Desc.String() != "desc" {
		t.Error("unexpected direction string form")
	}
}
