// Package store is the persistence adapter: typed JSON values behind simple
// key-value stores. The bolt-backed store is the durable boundary; the memory
// store holds session-scoped state such as the parsed fund cache.
//
// Persistence is best-effort by contract: a read that misses or fails to parse
// reports false and the caller keeps its fallback, and a failed write is
// logged and swallowed so it never interrupts the operation that triggered it.
package store

// Well-known keys. The afl_ prefix is kept for compatibility with state
// written by earlier builds.
const (
	KeyBasket = "afl_basket"
	KeyClient = "afl_client"
	KeyNav    = "afl_nav"
	KeyView   = "afl_view"
	KeyFunds  = "afl_funds"
)

// Store reads and writes typed values by key.
type Store interface {
	// Get unmarshals the value at key into out and reports whether a usable
	// value was found. Missing keys and corrupt payloads both report false.
	Get(key string, out any) bool
	// Put marshals v and stores it at key, best-effort.
	Put(key string, v any)
	// Delete removes key, best-effort.
	Delete(key string)
}
