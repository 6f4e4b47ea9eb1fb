package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

const (
	// SessionIDLength is the length of generated session identifiers in hex chars.
	SessionIDLength = 8

	// SecretBytes is the size of derived per-session secrets. 32 bytes matches
	// the symmetric key size of the credential codec.
	SecretBytes = 32

	// secretNonceBytes is the amount of fresh randomness mixed into every
	// derived secret so two logins never share one.
	secretNonceBytes = 16
)

// NewSessionID returns a short random session identifier.
// Short is fine here: an id collision only means one login overwrites another,
// which is the same outcome as a relogin.
func NewSessionID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:SessionIDLength]
}

// DeriveSessionSecret derives a per-session signing secret and returns it hex-encoded.
//
// The secret is HMAC-SHA256 keyed by the server-wide secret over the owner identity,
// a contact value, and a fresh random nonce. The result is one-way and high-entropy;
// given the same inputs plus a new nonce it is always a new secret.
func DeriveSessionSecret(serverSecret []byte, owner, contact string) (string, error) {
	if len(serverSecret) == 0 {
		return "", ErrServerSecretEmpty
	}

	nonce := make([]byte, secretNonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	m := hmac.New(sha256.New, serverSecret)
	_, _ = m.Write([]byte(owner))
	_, _ = m.Write([]byte(contact))
	_, _ = m.Write(nonce)

	return hex.EncodeToString(m.Sum(nil)), nil
}

// SecretKeyBytes decodes a stored hex secret back into raw key material.
// Returns ErrMalformedSecret unless it decodes to exactly SecretBytes bytes.
func SecretKeyBytes(secretHex string) ([]byte, error) {
	b, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, ErrMalformedSecret
	}
	if len(b) != SecretBytes {
		return nil, ErrMalformedSecret
	}
	return b, nil
}
