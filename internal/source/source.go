package source

import (
	"context"

	"feeTierScope/internal/model"
)

// Kind names the backend shape a source reads.
type Kind string

const (
	KindPositions Kind = "positions"
	KindPools     Kind = "pools"
	KindPostgres  Kind = "postgres"
)

// Source supplies fee-tier tagged records for a token pair.
// Implementations query both orderings of the pair and return the union.
type Source interface {
	Kind() Kind
	Records(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error)
}

// Status is the state of a boundary query as seen by the engine.
type Status int

const (
	StatusNotRequested Status = iota
	StatusInFlight
	StatusFailed
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusNotRequested:
		return "not_requested"
	case StatusInFlight:
		return "in_flight"
	case StatusFailed:
		return "failed"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is a boundary query outcome. Records is only meaningful on success.
type Result struct {
	Status  Status
	Records []model.LiquidityRecord
	Err     error
}
