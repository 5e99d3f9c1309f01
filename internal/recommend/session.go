package recommend

import (
	"go.uber.org/zap"

	"feeTierScope/internal/aggregate"
	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

// State is the session's recommendation state.
type State int

const (
	StateIdle State = iota
	StateAwaitingQuery
	StateRecommended
	StateManualOverride
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingQuery:
		return "awaiting_query"
	case StateRecommended:
		return "recommended"
	case StateManualOverride:
		return "manual_override"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Decision is what the caller should do after an event.
type Decision struct {
	State State `json:"state"`
	// Tier is the recommended or manually chosen tier; valid when HasTier is set.
	Tier    model.FeeTier `json:"fee"`
	HasTier bool          `json:"has_fee"`
	// Fire is set exactly once per fresh result that produced a recommendation.
	Fire bool `json:"fire"`
	// Loading means a query is pending and no default tier should be shown.
	Loading bool `json:"loading"`
	// ShowManual asks the caller to present the full tier choice.
	ShowManual   bool                `json:"show_manual"`
	Distribution *model.Distribution `json:"distribution,omitempty"`
}

type guardKey struct {
	pair model.TokenPair
	dist model.Distribution
}

// Session tracks recommendation state for one token pair selection.
// It is not safe for concurrent use.
type Session struct {
	logger *zap.Logger

	state  State
	pair   model.TokenPair
	tier   model.FeeTier
	fired  *guardKey
	latest *model.Distribution
}

func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

func (s *Session) State() State {
	return s.state
}

// InputsChanged resets the session for a new token pair.
func (s *Session) InputsChanged(pair model.TokenPair) Decision {
	if pair.SameAs(s.pair) && s.state != StateIdle {
		s.pair = pair
		return s.decision()
	}

	s.pair = pair
	s.fired = nil
	s.latest = nil
	s.tier = 0
	if pair.Complete() {
		s.state = StateAwaitingQuery
	} else {
		s.state = StateIdle
	}
	s.logger.Debug("inputs changed", zap.String("pair", pair.Key()), zap.Stringer("state", s.state))
	return s.decision()
}

// UserPicked records a manual tier choice; later results never override it.
func (s *Session) UserPicked(tier model.FeeTier) Decision {
	if !tier.Valid() {
		return s.decision()
	}
	s.state = StateManualOverride
	s.tier = tier
	return s.decision()
}

// QueryResolved applies a boundary result for pair.
func (s *Session) QueryResolved(pair model.TokenPair, result source.Result) Decision {
	if !pair.SameAs(s.pair) || !pair.Complete() {
		s.logger.Debug("discard stale result", zap.String("pair", pair.Key()), zap.String("current", s.pair.Key()))
		return s.decision()
	}
	if s.state == StateManualOverride {
		return s.decision()
	}

	switch result.Status {
	case source.StatusNotRequested, source.StatusInFlight:
		if s.state != StateRecommended {
			s.state = StateAwaitingQuery
		}
		return s.decision()
	case source.StatusFailed:
		s.state = StateIdle
		s.latest = nil
		return s.decision()
	}

	dist, err := aggregate.Aggregate(result.Records)
	if err != nil {
		s.logger.Warn("aggregate records", zap.String("pair", pair.Key()), zap.Error(err))
		s.state = StateIdle
		s.latest = nil
		return s.decision()
	}
	s.latest = &dist

	tier, ok := Recommend(dist)
	if !ok {
		s.state = StateIdle
		return s.decision()
	}

	key := guardKey{pair: pair.Canonical(), dist: dist}
	if s.fired != nil && *s.fired == key {
		s.state = StateRecommended
		s.tier = tier
		return s.decision()
	}

	s.fired = &key
	s.state = StateRecommended
	s.tier = tier
	d := s.decision()
	d.Fire = true
	s.logger.Info("fee tier recommended",
		zap.String("pair", pair.Key()),
		zap.Stringer("fee", tier),
		zap.Float64("share", dist.Share(tier)),
	)
	return d
}

func (s *Session) decision() Decision {
	d := Decision{State: s.state, Distribution: s.latest}
	switch s.state {
	case StateRecommended, StateManualOverride:
		d.Tier, d.HasTier = s.tier, true
	case StateAwaitingQuery:
		d.Loading = true
	case StateIdle:
		d.ShowManual = s.pair.Complete()
	}
	return d
}
