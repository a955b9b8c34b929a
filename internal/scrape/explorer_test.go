package scrape

import "testing"

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		tps     float64
		txCount float64
	}{
		{
			name:    "labelled tps and transactions",
			text:    "Network stats\nTPS: 12.5\nTotal Transactions: 1,234,567\n",
			tps:     12.5,
			txCount: 1_234_567,
		},
		{
			name:    "spelled out tps label",
			text:    "Transactions per second 4,000\nTotal Txs: 999",
			tps:     4000,
			txCount: 999,
		},
		{
			name:    "value before tps unit",
			text:    "Currently processing 65,000 TPS across the network",
			tps:     65000,
			txCount: 0,
		},
		{
			name:    "value before transactions unit",
			text:    "2,500,000 transactions settled",
			tps:     0,
			txCount: 2_500_000,
		},
		{
			name: "no metrics present",
			text: "Welcome to the block explorer. Search for an address.",
		},
		{
			name: "empty page",
			text: "",
		},
		{
			name:    "zero values skipped in favor of later match",
			text:    "TPS: 0\n300 TPS sustained",
			tps:     300,
			txCount: 0,
		},
		{
			name:    "case insensitive labels",
			text:    "tps: 7.2\ntotal transactions: 42",
			tps:     7.2,
			txCount: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tps, txCount := ExtractMetrics(tt.text)
			if tps != tt.tps {
				t.Errorf("tps = %v, want %v", tps, tt.tps)
			}
			if txCount != tt.txCount {
				t.Errorf("txCount = %v, want %v", txCount, tt.txCount)
			}
		})
	}
}

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234", 1234},
		{"12.5", 12.5},
		{" 42 ", 42},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		if got := cleanNumber(tt.in); got != tt.want {
			t.Errorf("cleanNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
