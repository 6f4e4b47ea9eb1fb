package session

import (
	"errors"
	"testing"
	"time"

	"marketplace/cmd/security/token"
)

func testSecretHex(t *testing.T) string {
	t.Helper()
	secret, err := token.DeriveSessionSecret([]byte("server-secret-for-tests"), "alice", "+628123456789")
	if err != nil {
		t.Fatalf("DeriveSessionSecret: %v", err)
	}
	return secret
}

func TestCodec_SealAndOpen(t *testing.T) {
	cfg := DefaultConfig()
	codec := NewPasetoV4LocalCodec(cfg)
	secret := testSecretHex(t)
	now := time.Now().UTC()

	cred, exp, err := codec.Seal("alice", "deadbeef", secret, now)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !exp.After(now) {
		t.Fatalf("expected exp after now")
	}

	claims, err := codec.Open(cred, secret, now.Add(time.Second))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if claims.Owner != "alice" || claims.SessionID != "deadbeef" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("issuer = %q, want %q", claims.Issuer, cfg.Issuer)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	codec := NewPasetoV4LocalCodec(DefaultConfig())
	now := time.Now().UTC()

	cred, _, err := codec.Seal("alice", "deadbeef", testSecretHex(t), now)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	other := testSecretHex(t) // fresh randomness, different key
	_, err = codec.Open(cred, other, now)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_TamperedCredential(t *testing.T) {
	codec := NewPasetoV4LocalCodec(DefaultConfig())
	secret := testSecretHex(t)
	now := time.Now().UTC()

	cred, _, err := codec.Seal("alice", "deadbeef", secret, now)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	// Flip one byte in the middle of the ciphertext.
	b := []byte(cred)
	b[len(b)/2] ^= 0x01

	_, err = codec.Open(string(b), secret, now)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for tampered credential, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenTTL = time.Minute
	codec := NewPasetoV4LocalCodec(cfg)
	secret := testSecretHex(t)
	now := time.Now().UTC()

	cred, _, err := codec.Seal("alice", "deadbeef", secret, now)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	_, err = codec.Open(cred, secret, now.Add(2*time.Minute))
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_MalformedSecret(t *testing.T) {
	codec := NewPasetoV4LocalCodec(DefaultConfig())
	now := time.Now().UTC()

	if _, _, err := codec.Seal("alice", "deadbeef", "zz", now); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for bad secret, got %v", err)
	}
}
