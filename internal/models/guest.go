// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// Placeholders substituted when a guest record has gaps.
const (
	DefaultFirstName    = "Guest"
	DefaultLoyaltyLevel = "—"

	// ExpiryUnknown is the sentinel used when the expiry date cannot be derived.
	ExpiryUnknown = "unknown"
)

// GuestRecord is a guest row as stored. Every column except the phone key is
// optional; the table is owned by the loyalty backend and only read here.
type GuestRecord struct {
	FirstName     sql.NullString `db:"first_name"`
	LoyaltyLevel  sql.NullString `db:"loyalty_level"`
	BonusBalances sql.NullString `db:"bonus_balances"`
	LastVisit     sql.NullTime   `db:"last_visit"`
}

// GuestBonus is the presentation-ready value derived from a GuestRecord.
// Built fresh per request and never mutated afterwards.
type GuestBonus struct {
	FirstName    string
	LoyaltyLevel string
	Amount       int64
	ExpireDate   string
}

// UsageLogEntry is a single best-effort usage-stats row.
type UsageLogEntry struct {
	UserID    int64     `db:"user_id"`
	Phone     string    `db:"phone"`
	Command   string    `db:"command"`
	CreatedAt time.Time `db:"created_at"`
}
