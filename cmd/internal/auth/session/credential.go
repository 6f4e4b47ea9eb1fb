package session

import (
	"time"

	paseto "aidanwoods.dev/go-paseto"

	"marketplace/cmd/security/token"
)

// Claims is what a credential carries: the owner it was minted for and the
// session id it is bound to.
type Claims struct {
	Owner     string
	SessionID string
	ExpiresAt time.Time
	IssuedAt  time.Time
	Issuer    string
}

// CredentialCodec seals and opens opaque bearer credentials with a
// caller-supplied per-session secret.
type CredentialCodec interface {
	Seal(owner, sessionID, secretHex string, now time.Time) (credential string, exp time.Time, err error)
	Open(credential, secretHex string, now time.Time) (Claims, error)
}

type pasetoV4LocalCodec struct {
	issuer string
	ttl    time.Duration
}

// NewPasetoV4LocalCodec builds a CredentialCodec based on PASETO v4.local.
//
// Each credential is sealed with the session's own 32-byte secret, so any
// tampering, and any credential from a session whose secret has since been
// replaced, fails to open.
func NewPasetoV4LocalCodec(cfg Config) CredentialCodec {
	return &pasetoV4LocalCodec{issuer: cfg.Issuer, ttl: cfg.TokenTTL}
}

func (c *pasetoV4LocalCodec) Seal(owner, sessionID, secretHex string, now time.Time) (string, time.Time, error) {
	key, err := symmetricKey(secretHex)
	if err != nil {
		return "", time.Time{}, err
	}

	exp := now.Add(c.ttl)

	tok := paseto.NewToken()
	tok.SetIssuer(c.issuer)
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(exp)

	// Minimal, explicit claims.
	_ = tok.Set("owner", owner)
	_ = tok.Set("sid", sessionID)

	return tok.V4Encrypt(key, nil), exp, nil
}

func (c *pasetoV4LocalCodec) Open(credential, secretHex string, now time.Time) (Claims, error) {
	key, err := symmetricKey(secretHex)
	if err != nil {
		return Claims{}, err
	}

	// Expiry is checked explicitly below so it can be reported as ErrExpired
	// rather than folded into the generic open failure.
	p := paseto.NewParserWithoutExpiryCheck()
	p.AddRule(paseto.IssuedBy(c.issuer))

	parsed, err := p.ParseV4Local(key, credential, nil)
	if err != nil {
		return Claims{}, ErrInvalidSignature
	}

	exp, err := parsed.GetExpiration()
	if err != nil {
		return Claims{}, ErrInvalidSignature
	}
	if !exp.After(now) {
		return Claims{}, ErrExpired
	}

	iat, _ := parsed.GetIssuedAt()
	iss, _ := parsed.GetIssuer()

	owner, err := parsed.GetString("owner")
	if err != nil || owner == "" {
		return Claims{}, ErrInvalidSignature
	}
	sid, err := parsed.GetString("sid")
	if err != nil || sid == "" {
		return Claims{}, ErrInvalidSignature
	}

	return Claims{
		Owner:     owner,
		SessionID: sid,
		ExpiresAt: exp,
		IssuedAt:  iat,
		Issuer:    iss,
	}, nil
}

func symmetricKey(secretHex string) (paseto.V4SymmetricKey, error) {
	raw, err := token.SecretKeyBytes(secretHex)
	if err != nil {
		return paseto.V4SymmetricKey{}, ErrInvalidSignature
	}
	key, err := paseto.V4SymmetricKeyFromBytes(raw)
	if err != nil {
		return paseto.V4SymmetricKey{}, ErrInvalidSignature
	}
	return key, nil
}
