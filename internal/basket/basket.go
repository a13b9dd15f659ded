// Package basket maintains the bounded selection of funds a client is
// comparing. State lives in the durable store and survives restarts.
package basket

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/recorder"
	"github.com/alts-fund-link/fundlink/internal/store"
)

// MaxSize is the selection capacity.
const MaxSize = 3

// Manager owns the basket state with concurrency safety. Every mutation is
// persisted synchronously (best-effort) and broadcast on the bus.
type Manager struct {
	mu    sync.Mutex
	ids   []int
	store store.Store
	bus   *events.Bus
	rec   recorder.Recorder
	log   zerolog.Logger
}

// NewManager creates a Manager, loading any persisted selection.
func NewManager(st store.Store, bus *events.Bus, rec recorder.Recorder, log zerolog.Logger) *Manager {
	m := &Manager{
		store: st,
		bus:   bus,
		rec:   rec,
		log:   log.With().Str("component", "basket").Logger(),
	}
	m.load()
	return m
}

func (m *Manager) load() {
	var ids []int
	if m.store.Get(store.KeyBasket, &ids) {
		if len(ids) > MaxSize {
			ids = ids[:MaxSize]
		}
		m.ids = ids
	}
}

// Add appends id to the selection. Duplicates and adds beyond capacity are
// rejected by returning false; neither is an error.
func (m *Manager) Add(id int) bool {
	m.mu.Lock()
	dup := false
	for _, existing := range m.ids {
		if existing == id {
			dup = true
			break
		}
	}
	if dup || len(m.ids) >= MaxSize {
		m.record("REJECT", id)
		m.mu.Unlock()
		return false
	}
	m.ids = append(m.ids, id)
	count := m.persist("ADD", id)
	m.mu.Unlock()

	m.bus.Publish(events.BasketChanged{Count: count})
	return true
}

// Remove drops id from the selection. Idempotent: removing an absent id is a
// no-op that still succeeds.
func (m *Manager) Remove(id int) {
	m.mu.Lock()
	kept := m.ids[:0]
	removed := false
	for _, existing := range m.ids {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	m.ids = kept
	if !removed {
		m.mu.Unlock()
		return
	}
	count := m.persist("REMOVE", id)
	m.mu.Unlock()

	m.bus.Publish(events.BasketChanged{Count: count})
}

// Has reports whether id is selected.
func (m *Manager) Has(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Count returns the selection size.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

// IDs returns a copy of the selected ids in insertion order.
func (m *Manager) IDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Resolve maps the selection onto the given fund collection, silently
// dropping ids that no longer resolve (e.g. after a refresh changed row
// numbering).
func (m *Manager) Resolve(funds []model.FundRecord) []model.FundRecord {
	byID := make(map[int]model.FundRecord, len(funds))
	for _, f := range funds {
		byID[f.ID] = f
	}

	var out []model.FundRecord
	for _, id := range m.IDs() {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Reload re-reads the persisted selection. Called when an external writer
// (another tab) changed the basket key; the header refresh is re-broadcast
// so the shell picks up the new count.
func (m *Manager) Reload() {
	m.mu.Lock()
	m.ids = nil
	m.load()
	count := len(m.ids)
	m.mu.Unlock()

	m.bus.Publish(events.BasketChanged{Count: count})
	m.bus.Publish(events.HeaderRefresh{})
}

// persist is called with the lock held; the event is published by the caller
// after the lock is released so handlers can safely call back in.
func (m *Manager) persist(action string, id int) (count int) {
	ids := make([]int, len(m.ids))
	copy(ids, m.ids)
	m.store.Put(store.KeyBasket, ids)
	m.record(action, id)
	return len(ids)
}

func (m *Manager) record(action string, id int) {
	if err := m.rec.RecordBasketEvent(&recorder.BasketEvent{
		Action: action,
		FundID: id,
		Count:  len(m.ids),
	}); err != nil {
		m.log.Warn().Err(err).Msg("record basket event failed")
	}
}
