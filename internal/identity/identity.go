// Package identity consumes the session-established principal from the
// external identity provider and applies the binary approved/not-approved
// gate. The auth flow itself lives outside this module.
package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Status is the account approval state assigned by the identity provider.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusSuspended Status = "suspended"
	StatusRejected  Status = "rejected"
)

// Principal is the attribute set the identity collaborator establishes for a
// session.
type Principal struct {
	ID            string
	Email         string
	DisplayName   string
	Role          string
	FirmName      string
	BDAffiliation string
	Status        Status

	// Stamped by Admit.
	SessionID  string
	LoginCount int
	LastLogin  time.Time
}

// Approved is the binary gate the rest of the core relies on.
func (p *Principal) Approved() bool {
	return p != nil && p.Status == StatusApproved
}

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotApproved      = errors.New("account not approved")
)

// Gate admits approved principals into a session.
type Gate struct {
	clock func() time.Time
	log   zerolog.Logger
}

// NewGate creates a Gate. A nil clock defaults to time.Now.
func NewGate(clock func() time.Time, log zerolog.Logger) *Gate {
	if clock == nil {
		clock = time.Now
	}
	return &Gate{clock: clock, log: log.With().Str("component", "identity").Logger()}
}

// Admit validates the principal's approval status and stamps session
// metadata. Pending, suspended, and rejected accounts are all turned away
// with ErrNotApproved; a missing principal is ErrNotAuthenticated.
func (g *Gate) Admit(p *Principal) (*Principal, error) {
	if p == nil || p.ID == "" {
		return nil, ErrNotAuthenticated
	}
	if p.Status != StatusApproved {
		g.log.Warn().Str("user", p.ID).Str("status", string(p.Status)).Msg("admission denied")
		return nil, fmt.Errorf("%w: status %s", ErrNotApproved, p.Status)
	}

	admitted := *p
	admitted.SessionID = uuid.NewString()
	admitted.LoginCount = p.LoginCount + 1
	admitted.LastLogin = g.clock()
	g.log.Info().Str("user", admitted.ID).Str("session", admitted.SessionID).Msg("principal admitted")
	return &admitted, nil
}
