// Package profile owns the normalized client profile: read, shallow-merge,
// clear, with synchronous persistence on every mutation. Two historical
// storage shapes coexist in the wild; reads normalize both into the
// canonical model.ClientProfile.
package profile

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/store"
)

// Patch is a partial profile update. Nil fields are left unchanged; non-nil
// fields overwrite, mirroring the shallow-merge semantics of Set.
type Patch struct {
	Name             *string
	ExchangeAmount   *float64
	RiskTolerance    *string
	Objective        *string
	AccreditedStatus *string
	TaxBracket       *float64
	HoldPeriod       *float64
	PropTypePrefs    []string
	LiquidNetWorth   *float64
	TotalNetWorth    *float64
	AnnualIncome     *float64
	Age              *float64
	Notes            *string
}

// Store holds the live profile, persisted under the client key.
type Store struct {
	mu      sync.Mutex
	current model.ClientProfile
	store   store.Store
	bus     *events.Bus
	log     zerolog.Logger
}

// NewStore creates a Store, loading and normalizing any persisted profile.
// A missing or corrupt stored value falls back to the documented default.
func NewStore(st store.Store, bus *events.Bus, log zerolog.Logger) *Store {
	s := &Store{
		store: st,
		bus:   bus,
		log:   log.With().Str("component", "profile").Logger(),
	}
	s.current = s.loadNormalized()
	return s
}

func (s *Store) loadNormalized() model.ClientProfile {
	var raw storedProfile
	if !s.store.Get(store.KeyClient, &raw) {
		return model.DefaultClientProfile()
	}
	return normalize(raw)
}

// Get returns a copy of the current profile.
func (s *Store) Get() model.ClientProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// IsSet reports whether the profile carries usable signal. Shares the gate
// with the suitability scorer.
func (s *Store) IsSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.IsSet()
}

// Set shallow-merges the patch over the current profile and persists the
// result synchronously.
func (s *Store) Set(patch Patch) model.ClientProfile {
	s.mu.Lock()
	p := &s.current
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ExchangeAmount != nil {
		p.ExchangeAmount = patch.ExchangeAmount
	}
	if patch.RiskTolerance != nil {
		p.RiskTolerance = *patch.RiskTolerance
	}
	if patch.Objective != nil {
		p.Objective = *patch.Objective
	}
	if patch.AccreditedStatus != nil {
		p.AccreditedStatus = *patch.AccreditedStatus
	}
	if patch.TaxBracket != nil {
		p.TaxBracket = patch.TaxBracket
	}
	if patch.HoldPeriod != nil {
		p.HoldPeriod = patch.HoldPeriod
	}
	if patch.PropTypePrefs != nil {
		p.PropTypePrefs = append([]string(nil), patch.PropTypePrefs...)
	}
	if patch.LiquidNetWorth != nil {
		p.LiquidNetWorth = patch.LiquidNetWorth
	}
	if patch.TotalNetWorth != nil {
		p.TotalNetWorth = patch.TotalNetWorth
	}
	if patch.AnnualIncome != nil {
		p.AnnualIncome = patch.AnnualIncome
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	s.store.Put(store.KeyClient, s.current)
	out := clone(s.current)
	s.mu.Unlock()

	s.bus.Publish(events.HeaderRefresh{})
	return out
}

// Clear resets the profile to the documented default, preserving no history.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = model.DefaultClientProfile()
	s.store.Put(store.KeyClient, s.current)
	s.mu.Unlock()

	s.bus.Publish(events.HeaderRefresh{})
}

// Reload re-reads the persisted profile. Called when an external writer
// (another tab) changed the client key.
func (s *Store) Reload() {
	s.mu.Lock()
	s.current = s.loadNormalized()
	s.mu.Unlock()

	s.bus.Publish(events.HeaderRefresh{})
}

func clone(p model.ClientProfile) model.ClientProfile {
	out := p
	if p.PropTypePrefs != nil {
		out.PropTypePrefs = append([]string{}, p.PropTypePrefs...)
	}
	return out
}
