package session

import (
	"context"
	"fmt"
	"time"

	"marketplace/cmd/security/token"
)

// Authority implements the high-level session operations.
//
// It mints a credential for a successfully authenticated user, verifies a
// presented credential against the owner's current session row, and revokes
// sessions on logout.
//
// Concurrent logins for the same owner race on the single session row; the
// store's last write wins and the losing caller's credential is immediately
// unverifiable. That is accepted behavior: last login wins.
type Authority struct {
	cfg   Config
	store Store
	codec CredentialCodec
}

// Minted is the result of minting a session.
type Minted struct {
	Credential string
	ExpiresAt  time.Time
	Session    Session
}

// NewAuthority constructs an Authority with the provided configuration, store,
// and credential codec.
func NewAuthority(cfg Config, store Store, codec CredentialCodec) *Authority {
	return &Authority{cfg: cfg, store: store, codec: codec}
}

// Mint creates (or replaces) the session row for owner and returns a fresh
// credential bound to it.
//
// The caller must have verified the owner's password already. Any session the
// owner previously held is overwritten, so its credential stops verifying.
// On a persistence failure no credential is issued.
func (a *Authority) Mint(ctx context.Context, now time.Time, owner, contact string) (Minted, error) {
	id := token.NewSessionID()

	secret, err := token.DeriveSessionSecret(a.cfg.SecretKey, owner, contact)
	if err != nil {
		return Minted{}, err
	}

	sess := Session{
		Username:  owner,
		SessionID: id,
		Secret:    secret,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.store.Upsert(ctx, sess); err != nil {
		return Minted{}, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	credential, exp, err := a.codec.Seal(owner, id, secret, now)
	if err != nil {
		return Minted{}, err
	}

	return Minted{Credential: credential, ExpiresAt: exp, Session: sess}, nil
}

// Verify checks a presented credential against the current session row for the
// claimed owner and returns that row on success.
//
// Failure kinds (ErrUnknownOwner, ErrInvalidSignature, ErrExpired,
// ErrSessionMismatch) are for logs and metrics only; callers must collapse
// them into one uniform unauthorized response.
func (a *Authority) Verify(ctx context.Context, now time.Time, credential, claimedOwner string) (Session, error) {
	sess, err := a.store.GetByOwner(ctx, claimedOwner)
	if err != nil {
		return Session{}, err
	}

	claims, err := a.codec.Open(credential, sess.Secret, now)
	if err != nil {
		return Session{}, err
	}

	// A stale credential from before a relogin opens only if the secret was
	// somehow reused; the embedded id check closes that path too.
	if claims.SessionID != sess.SessionID {
		return Session{}, ErrSessionMismatch
	}
	if claims.Owner != sess.Username {
		return Session{}, ErrSessionMismatch
	}

	return sess, nil
}

// Revoke deletes the session row for owner, if present. Idempotent.
// Afterwards every outstanding credential for owner fails Verify.
func (a *Authority) Revoke(ctx context.Context, owner string) error {
	return a.store.DeleteByOwner(ctx, owner)
}
