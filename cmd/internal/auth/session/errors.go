package session

import "errors"

var (
	// ErrUnknownOwner is returned when the claimed owner has no session row,
	// either because none was ever minted or because it was revoked.
	ErrUnknownOwner = errors.New("unknown session owner")

	// ErrInvalidSignature is returned when a credential does not open under the
	// owner's stored secret, for any reason other than expiry.
	ErrInvalidSignature = errors.New("invalid credential signature")

	// ErrExpired is returned when the credential's embedded expiry has passed.
	ErrExpired = errors.New("credential expired")

	// ErrSessionMismatch is returned when a credential opens but embeds a
	// session id other than the stored one. This is how credentials from a
	// previous login are rejected after a relogin.
	ErrSessionMismatch = errors.New("session id mismatch")

	// ErrSessionPersist is returned when the session row could not be written
	// during mint. No credential is issued in that case.
	ErrSessionPersist = errors.New("session persist failed")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid config")
)

// Kind maps an Authority failure onto a stable label for logs and metrics.
// The distinction never reaches clients; every verify failure is presented
// uniformly as unauthorized.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownOwner):
		return "unknown_owner"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrSessionMismatch):
		return "session_mismatch"
	case errors.Is(err, ErrSessionPersist):
		return "persist_error"
	default:
		return "internal"
	}
}
