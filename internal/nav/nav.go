// Package nav tracks which module the shell is presenting and the active
// view mode. Both are persisted so an in-page reload lands where the user
// left off.
package nav

import (
	"sync"

	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/store"
)

// Defaults applied when nothing is persisted.
const (
	DefaultModule   = "browse"
	DefaultViewMode = "advisor"
)

// View modes.
const (
	ViewAdvisor    = "advisor"
	ViewClient     = "client"
	ViewCompliance = "compliance"
)

// Navigator owns navigation state.
type Navigator struct {
	mu     sync.Mutex
	module string
	view   string
	store  store.Store
	bus    *events.Bus
}

// New creates a Navigator, loading persisted state or the defaults.
func New(st store.Store, bus *events.Bus) *Navigator {
	n := &Navigator{module: DefaultModule, view: DefaultViewMode, store: st, bus: bus}
	var s string
	if st.Get(store.KeyNav, &s) && s != "" {
		n.module = s
	}
	if st.Get(store.KeyView, &s) && s != "" {
		n.view = s
	}
	return n
}

// Navigate records the module switch and asks the shell to render it.
func (n *Navigator) Navigate(module string, params map[string]string) {
	n.mu.Lock()
	n.module = module
	n.store.Put(store.KeyNav, module)
	n.mu.Unlock()

	n.bus.Publish(events.Navigate{Module: module, Params: params})
}

// Module returns the active module.
func (n *Navigator) Module() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.module
}

// ViewMode returns the active view mode.
func (n *Navigator) ViewMode() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view
}

// SetViewMode persists the view mode and refreshes the header.
func (n *Navigator) SetViewMode(mode string) {
	n.mu.Lock()
	n.view = mode
	n.store.Put(store.KeyView, mode)
	n.mu.Unlock()

	n.bus.Publish(events.HeaderRefresh{})
}
