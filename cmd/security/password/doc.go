// Package password provides Argon2id password hashing and verification.
//
// Hashes use a PHC-like encoded string format. During Verify the encoded hash
// is treated as untrusted input: it is strictly parsed and its cost parameters
// are bounded against the configured limits.
package password
