package user

import (
	"time"

	"github.com/google/uuid"
)

// Currency is an ISO-4217 style currency code a user keeps their books in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyCHF Currency = "CHF"
	CurrencyINR Currency = "INR"
)

// User owns every other entity. PasswordHash holds a bcrypt hash; the
// plaintext password is never stored and never leaves the auth boundary.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Currency     Currency
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
