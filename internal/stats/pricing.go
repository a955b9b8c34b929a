package stats

import (
	"fmt"

	"github.com/iJaack/chain-guru/internal/chain"
)

// TierPricing holds the pricing knobs for one ecosystem type.
type TierPricing struct {
	PricePerTPS            float64 `json:"price_per_tps"`
	SetupPricePerMillionTx float64 `json:"setup_price_per_million_tx"`
}

// Pricing is the full user-adjustable pricing model.
type Pricing struct {
	EVM    TierPricing `json:"evm"`
	NonEVM TierPricing `json:"non_evm"`
}

// DefaultPricing returns the standard rate card: EVM $4k per TPS and
// $200 per million historical transactions, NonEVM at 4x.
func DefaultPricing() Pricing {
	return Pricing{
		EVM:    TierPricing{PricePerTPS: 4000, SetupPricePerMillionTx: 200},
		NonEVM: TierPricing{PricePerTPS: 16000, SetupPricePerMillionTx: 800},
	}
}

// Set updates one pricing field for one ecosystem type.
func (p *Pricing) Set(t chain.EcosystemType, field string, value float64) error {
	if value < 0 {
		return fmt.Errorf("pricing value must be non-negative, got %v", value)
	}
	tier := &p.EVM
	if t != chain.EVM {
		tier = &p.NonEVM
	}
	switch field {
	case "price_per_tps":
		tier.PricePerTPS = value
	case "setup_price_per_million_tx":
		tier.SetupPricePerMillionTx = value
	default:
		return fmt.Errorf("unknown pricing field %q", field)
	}
	return nil
}
