package chain

import (
	"testing"
	"unicode/utf8"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw       string
		wantClean string
		wantEnv   Environment
	}{
		{"Ethereum-Testnet", "Ethereum", Testnet},
		{"Ethereum Mainnet", "Ethereum", Mainnet},
		{"Polygon", "Polygon", Mainnet},
		{"Sepolia TESTNET", "Sepolia", Testnet},
		{"testnet", "", Testnet},
		{"Goerli - Testnet", "Goerli", Testnet},
		{"MAINNET Avalanche", "Avalanche", Mainnet},
		// testnet wins when both keywords appear
		{"Mainnet Shadow Testnet", "Mainnet Shadow", Testnet},
		{"TestnetTestnet Chain", "Chain", Testnet},
		{"", "", Mainnet},
		{"  Near Protocol  ", "  Near Protocol  ", Mainnet}, // no keyword: unchanged
	}
	for _, tt := range tests {
		clean, env := Classify(tt.raw)
		if clean != tt.wantClean || env != tt.wantEnv {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)",
				tt.raw, clean, env, tt.wantClean, tt.wantEnv)
		}
	}
}

// Chain names come off the wire as arbitrary UTF-8; keyword removal
// must not corrupt names whose runes change byte length when lowered.
func TestClassifyMultibyteNames(t *testing.T) {
	tests := []struct {
		raw       string
		wantClean string
		wantEnv   Environment
	}{
		{"Ⱥtestnet", "Ⱥ", Testnet},          // Ⱥ grows from 2 to 3 bytes lowered
		{"İtestnet chain", "İ chain", Testnet}, // İ shrinks from 2 bytes to 1
		{"Ktestnet", "K", Testnet},   // Kelvin sign shrinks to ASCII k
		{"Ⱥ Mainnet", "Ⱥ", Mainnet},
		{"日本 Testnet", "日本", Testnet},
	}
	for _, tt := range tests {
		clean, env := Classify(tt.raw)
		if clean != tt.wantClean || env != tt.wantEnv {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)",
				tt.raw, clean, env, tt.wantClean, tt.wantEnv)
		}
		if !utf8.ValidString(clean) {
			t.Errorf("Classify(%q) produced invalid UTF-8 %q", tt.raw, clean)
		}
	}
}

// Re-classifying a cleaned name must not change it again.
func TestClassifyIdempotent(t *testing.T) {
	inputs := []string{
		"Ethereum-Testnet", "Polygon Mainnet", "Solana", "Base testnet chain",
		"Arbitrum One", "testnet", "Optimism MAINNET",
	}
	for _, raw := range inputs {
		clean, _ := Classify(raw)
		again, env := Classify(clean)
		if again != clean {
			t.Errorf("Classify not idempotent on %q: %q -> %q", raw, clean, again)
		}
		if env != Mainnet {
			// a cleaned name no longer carries an environment keyword
			t.Errorf("Classify(%q) env = %v after cleaning, want Mainnet default", clean, env)
		}
	}
}

func TestParseEcosystem(t *testing.T) {
	tests := []struct {
		in   string
		want EcosystemType
	}{
		{"EVM", EVM},
		{"evm", EVM},
		{" EVM ", EVM},
		{"Non-EVM", NonEVM},
		{"NonEVM", NonEVM},
		{"cosmos", NonEVM},
		{"", NonEVM},
	}
	for _, tt := range tests {
		if got := ParseEcosystem(tt.in); got != tt.want {
			t.Errorf("ParseEcosystem(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
