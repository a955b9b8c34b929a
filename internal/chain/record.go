package chain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iJaack/chain-guru/internal/order"
)

// EcosystemType is the virtual-machine family of a chain, used for
// pricing segmentation.
type EcosystemType string

const (
	EVM    EcosystemType = "EVM"
	NonEVM EcosystemType = "NonEVM"
)

// ParseEcosystem maps wire spellings onto a tag. Upstream emits
// "Non-EVM"; anything that is not exactly EVM counts as NonEVM.
func ParseEcosystem(s string) EcosystemType {
	if strings.EqualFold(strings.TrimSpace(s), "EVM") {
		return EVM
	}
	return NonEVM
}

// Environment is the deployment tier of a chain.
type Environment string

const (
	Mainnet Environment = "Mainnet"
	Testnet Environment = "Testnet"
)

// Record is one raw chain row as served by the snapshot API. Metric
// fields stay untyped: upstream rows mix numbers, formatted strings and
// NULLs, and a single bad field must never abort a whole snapshot.
type Record struct {
	ChainID      string        `json:"chain_id"`
	ChainName    string        `json:"chain_name"`
	Type         EcosystemType `json:"type"`
	TPS10Min     any           `json:"tps_10min"`
	TotalTxCount any           `json:"total_tx_count"`
	HealthStatus string        `json:"health_status"`
	IsDead       bool          `json:"is_dead"`
	RPCURL       string        `json:"rpc_url"`
	ExplorerURL  string        `json:"explorer_url,omitempty"`
}

// UnmarshalJSON tolerates the looser shapes seen in real payloads:
// numeric chain IDs, sqlite-style 0/1 booleans, string metrics. Every
// field decodes as any and is coerced afterwards, so one malformed
// field in one record never fails the whole array.
func (r *Record) UnmarshalJSON(data []byte) error {
	var aux struct {
		ChainID      any `json:"chain_id"`
		ChainName    any `json:"chain_name"`
		Type         any `json:"type"`
		TPS10Min     any `json:"tps_10min"`
		TotalTxCount any `json:"total_tx_count"`
		HealthStatus any `json:"health_status"`
		IsDead       any `json:"is_dead"`
		RPCURL       any `json:"rpc_url"`
		ExplorerURL  any `json:"explorer_url"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ChainID = asString(aux.ChainID)
	r.ChainName = asString(aux.ChainName)
	r.Type = ParseEcosystem(asString(aux.Type))
	r.TPS10Min = aux.TPS10Min
	r.TotalTxCount = aux.TotalTxCount
	r.HealthStatus = asString(aux.HealthStatus)
	r.IsDead = truthy(aux.IsDead)
	r.RPCURL = asString(aux.RPCURL)
	r.ExplorerURL = asString(aux.ExplorerURL)
	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; chain IDs are integral
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	default:
		return false
	}
}

// Field returns the raw value behind a sort key. Unknown keys return
// nil, which normalizes to Empty and sorts last.
func (a Annotated) Field(key string) any {
	switch key {
	case "chain_id":
		return a.ChainID
	case "chain_name":
		return a.ChainName
	case "clean_name":
		return a.CleanName
	case "type":
		return string(a.Type)
	case "environment":
		return string(a.Environment)
	case "tps_10min":
		return a.TPS10Min
	case "total_tx_count":
		return a.TotalTxCount
	case "health_status":
		return a.HealthStatus
	case "rpc_url":
		return a.RPCURL
	default:
		return nil
	}
}

// TPS returns the throughput metric as a number, zero when missing or
// unparseable.
func (r Record) TPS() float64 {
	return numeric(r.TPS10Min)
}

// TxCount returns the cumulative transaction count, zero when missing.
func (r Record) TxCount() float64 {
	return numeric(r.TotalTxCount)
}

func numeric(raw any) float64 {
	v := order.Normalize(raw)
	if v.Kind != order.Number {
		return 0
	}
	return v.Num
}

// Annotated is a Record plus derived classification. Built once per
// refresh and replaced wholesale on the next one.
type Annotated struct {
	Record
	CleanName   string      `json:"clean_name"`
	Environment Environment `json:"environment"`
}

// Annotate classifies a single record.
func Annotate(r Record) Annotated {
	clean, env := Classify(r.ChainName)
	return Annotated{Record: r, CleanName: clean, Environment: env}
}

// AnnotateAll classifies a full snapshot, preserving input order.
func AnnotateAll(records []Record) []Annotated {
	out := make([]Annotated, 0, len(records))
	for _, r := range records {
		out = append(out, Annotate(r))
	}
	return out
}
