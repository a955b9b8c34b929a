package stats

import "github.com/iJaack/chain-guru/internal/chain"

// Totals are the accumulated metrics of one segment.
type Totals struct {
	TPS     float64 `json:"tps"`
	History float64 `json:"history"`
	Count   int     `json:"count"`
}

func (t *Totals) add(r chain.Annotated) {
	t.TPS += r.TPS()
	t.History += r.TxCount()
	t.Count++
}

// Revenue is the projection for one ecosystem type under the current
// pricing. Recurring is the monthly figure, ARR its annualization, and
// Total the headline recurring + setup number.
type Revenue struct {
	Recurring float64 `json:"recurring"`
	ARR       float64 `json:"arr"`
	Setup     float64 `json:"setup"`
	Total     float64 `json:"total"`
}

func project(t Totals, p TierPricing) Revenue {
	recurring := t.TPS * p.PricePerTPS
	setup := (t.History / 1_000_000) * p.SetupPricePerMillionTx
	return Revenue{
		Recurring: recurring,
		ARR:       recurring * 12,
		Setup:     setup,
		Total:     recurring + setup,
	}
}

// Snapshot is the full aggregate view over the live subset. It is a pure
// function of (records, pricing) and recomputed on demand, never cached.
type Snapshot struct {
	EVM     Totals `json:"evm"`
	NonEVM  Totals `json:"non_evm"`
	Mainnet Totals `json:"mainnet"`
	Testnet Totals `json:"testnet"`
	Grand   Totals `json:"grand"`

	EVMRevenue    Revenue `json:"evm_revenue"`
	NonEVMRevenue Revenue `json:"non_evm_revenue"`
	TotalRevenue  float64 `json:"total_revenue"`

	// Revenue share per ecosystem type, zero when there is no revenue.
	EVMShare    float64 `json:"evm_share"`
	NonEVMShare float64 `json:"non_evm_share"`

	// Parity scenario: NonEVM re-priced at EVM rates.
	ParityNonEVMRevenue Revenue `json:"parity_non_evm_revenue"`
	ParityTotalRevenue  float64 `json:"parity_total_revenue"`
}

// Aggregate sums throughput and history per ecosystem type and per
// environment over the live subset and projects revenue under the given
// pricing. Missing metrics count as zero.
func Aggregate(live []chain.Annotated, pricing Pricing) Snapshot {
	var s Snapshot
	for _, r := range live {
		if r.Type == chain.EVM {
			s.EVM.add(r)
		} else {
			s.NonEVM.add(r)
		}
		if r.Environment == chain.Testnet {
			s.Testnet.add(r)
		} else {
			s.Mainnet.add(r)
		}
		s.Grand.add(r)
	}

	s.EVMRevenue = project(s.EVM, pricing.EVM)
	s.NonEVMRevenue = project(s.NonEVM, pricing.NonEVM)
	s.TotalRevenue = s.EVMRevenue.Total + s.NonEVMRevenue.Total

	s.EVMShare = Share(s.EVMRevenue.Total, s.TotalRevenue)
	s.NonEVMShare = Share(s.NonEVMRevenue.Total, s.TotalRevenue)

	s.ParityNonEVMRevenue = project(s.NonEVM, pricing.EVM)
	s.ParityTotalRevenue = s.EVMRevenue.Total + s.ParityNonEVMRevenue.Total

	return s
}

// Share returns part/total, guarding the zero-total case so displays
// never show NaN.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total
}
