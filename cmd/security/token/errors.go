package token

import "errors"

// Public, stable errors for callers.
var (
	ErrServerSecretEmpty = errors.New("server secret empty")
	ErrMalformedSecret   = errors.New("malformed session secret")
)
