// Package token generates session identifiers and derives per-session
// signing secrets.
//
// Session identifiers are short random strings; they are regenerated on every
// login, so a stale identifier is how old credentials are recognized.
//
// Secrets are HMAC-SHA256 derived from the owner identity, a contact value,
// the server-wide secret, and fresh randomness. Only the hex-encoded secret is
// stored server-side; credentials sealed with a replaced secret no longer open.
package token
