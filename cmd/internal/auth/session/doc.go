// Package session is the marketplace's session authority.
//
// It maintains at most one session per user: a row holding the owner, a short
// random session id, and a per-session signing secret, all replaced on every
// login. Credentials are PASETO v4.local tokens sealed with the per-session
// secret, carrying the owner and session id plus an absolute expiry; the
// server keeps no copy of the credential itself.
//
// A relogin invalidates the previous credential twice over: the stored secret
// no longer opens it, and its embedded session id no longer matches. Revoking
// (logout) deletes the row, after which verification fails for every
// outstanding credential of that owner.
package session
