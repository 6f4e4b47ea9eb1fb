package session

import (
	"context"
	"time"
)

// Session is the server-side record of a user's current login.
//
// There is at most one row per owner: a new login replaces both SessionID and
// Secret in place, which is what invalidates every previously issued
// credential for that owner.
type Session struct {
	// Username identifies the owner; one session row per owner.
	Username string `gorm:"size:64;primaryKey"`

	// SessionID is a short random identifier, regenerated on every login.
	SessionID string `gorm:"size:64;not null"`

	// Secret is the hex-encoded per-session signing secret, regenerated on
	// every login. Credentials sealed with a replaced secret no longer open.
	Secret string `gorm:"size:64;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the historical table name.
func (Session) TableName() string { return "user_sessions" }

// Store abstracts persistence for session state.
//
// Upsert must replace SessionID and Secret atomically: a failed write may not
// leave a row holding an id from one login and a secret from another.
type Store interface {
	// Upsert inserts the session row for its owner, replacing any prior row.
	Upsert(ctx context.Context, s Session) error

	// GetByOwner loads the current session row for owner.
	// Returns ErrUnknownOwner when the owner has no session.
	GetByOwner(ctx context.Context, owner string) (Session, error)

	// DeleteByOwner removes the session row for owner. Absence is not an error.
	DeleteByOwner(ctx context.Context, owner string) error
}
