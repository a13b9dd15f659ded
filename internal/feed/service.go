package feed

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/recorder"
	"github.com/alts-fund-link/fundlink/internal/store"
)

// loadCall is one in-flight load shared by every concurrent caller.
type loadCall struct {
	done  chan struct{}
	funds []model.FundRecord
	err   error
}

// Service owns the fund collection lifecycle: fetch, parse, session cache,
// and request de-duplication. At most one fetch is in flight at a time; all
// concurrent callers receive the same eventual result.
type Service struct {
	fetcher Fetcher
	cache   store.Store
	rec     recorder.Recorder
	bus     *events.Bus
	clock   func() time.Time
	log     zerolog.Logger

	mu   sync.Mutex
	call *loadCall
}

// NewService creates a Service. The cache is the session-scoped store; rec
// and bus may not be nil (use the noop recorder and a fresh bus instead).
func NewService(fetcher Fetcher, cache store.Store, rec recorder.Recorder, bus *events.Bus, clock func() time.Time, log zerolog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		rec:     rec,
		bus:     bus,
		clock:   clock,
		log:     log.With().Str("component", "feed").Logger(),
	}
}

// Load returns the fund collection. A warm session cache is served directly
// unless forceRefresh is set. Cache misses trigger a fetch; concurrent
// callers coalesce onto the same in-flight fetch rather than issuing
// redundant network calls.
//
// Fetch and parse failures propagate to the caller, which decides whether to
// fall back to Cached.
func (s *Service) Load(ctx context.Context, forceRefresh bool) ([]model.FundRecord, error) {
	if !forceRefresh {
		if funds, ok := s.Cached(); ok {
			return funds, nil
		}
	}

	s.mu.Lock()
	if s.call != nil {
		call := s.call
		s.mu.Unlock()
		<-call.done
		return call.funds, call.err
	}
	call := &loadCall{done: make(chan struct{})}
	s.call = call
	s.mu.Unlock()

	call.funds, call.err = s.doLoad(ctx)

	// The in-flight marker clears on every exit path, success or failure,
	// before waiters are released.
	s.mu.Lock()
	s.call = nil
	s.mu.Unlock()
	close(call.done)

	return call.funds, call.err
}

func (s *Service) doLoad(ctx context.Context) ([]model.FundRecord, error) {
	started := s.clock()

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("feed fetch failed")
		return nil, err
	}
	funds, err := Parse(raw, s.clock())
	if err != nil {
		s.log.Error().Err(err).Msg("feed parse failed")
		return nil, err
	}

	s.cache.Put(store.KeyFunds, funds)
	s.rec.RecordLoad(&recorder.LoadSnapshot{
		Source:      s.fetcher.Name(),
		ParsedCount: len(funds),
		Duration:    s.clock().Sub(started),
	})
	s.bus.Publish(events.FundsRefreshed{Count: len(funds)})
	s.log.Info().Int("funds", len(funds)).Msg("feed loaded")
	return funds, nil
}

// Cached returns the last successfully parsed collection, if any.
func (s *Service) Cached() ([]model.FundRecord, bool) {
	var funds []model.FundRecord
	if !s.cache.Get(store.KeyFunds, &funds) || len(funds) == 0 {
		return nil, false
	}
	return funds, true
}

// Invalidate drops the session cache so the next Load refetches.
func (s *Service) Invalidate() {
	s.cache.Delete(store.KeyFunds)
}

// Lookup resolves a fund id against the cached collection. A missing id is
// an empty result, not an error.
func (s *Service) Lookup(id int) (model.FundRecord, bool) {
	funds, ok := s.Cached()
	if !ok {
		return model.FundRecord{}, false
	}
	for _, f := range funds {
		if f.ID == id {
			return f, true
		}
	}
	return model.FundRecord{}, false
}

// BySponsor returns every cached fund from the given sponsor. An unknown
// sponsor yields an empty slice.
func (s *Service) BySponsor(sponsor string) []model.FundRecord {
	funds, _ := s.Cached()
	var out []model.FundRecord
	for _, f := range funds {
		if f.Sponsor == sponsor {
			out = append(out, f)
		}
	}
	return out
}
