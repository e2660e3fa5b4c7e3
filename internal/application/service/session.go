package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

// Session holds the state of one logged-in cashier: who they are and the
// ledger of the sale they are building. It is created by a successful
// login and discarded on logout; nothing about it is process-global, so
// tests and future multi-window use can hold several at once.
type Session struct {
	ID      uuid.UUID
	Profile entity.Profile
	LoginAt time.Time
	Ledger  *entity.Sale
}

// NewSession creates a session for the given profile with an empty ledger.
func NewSession(profile entity.Profile, vatRate decimal.Decimal) *Session {
	return &Session{
		ID:      uuid.New(),
		Profile: profile,
		LoginAt: time.Now(),
		Ledger:  entity.NewSale(vatRate),
	}
}

// Username returns the login name backing this session.
func (s *Session) Username() string {
	return s.Profile.Username
}

// Close ends the session, dropping any un-checked-out sale.
func (s *Session) Close() {
	s.Ledger.Clear()
}
