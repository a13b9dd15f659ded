package feed

import "errors"

// Load failures are distinguishable so the caller can decide whether a stale
// cache is an acceptable fallback.
var (
	// ErrFetch covers transport errors and non-2xx responses.
	ErrFetch = errors.New("feed fetch failed")
	// ErrParse covers a malformed callback envelope or undecodable payload.
	ErrParse = errors.New("feed parse failed")
)
