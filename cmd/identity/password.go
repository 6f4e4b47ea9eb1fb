package identity

import (
	"errors"

	"marketplace/cmd/security/password"
)

// HashPassword returns a PHC-style Argon2id hash string using the env-configured cost.
func HashPassword(plain string) (string, error) {
	cfg := password.FromEnv()
	enc, err := cfg.Hash(plain)
	if err != nil {
		switch {
		case errors.Is(err, password.ErrPasswordTooShort),
			errors.Is(err, password.ErrPasswordTooLong):
			return "", ErrInvalidInput
		default:
			return "", err
		}
	}
	return enc, nil
}

// VerifyPassword checks plain against a stored Argon2id hash.
// A malformed stored hash verifies as false rather than erroring, so a
// corrupted row behaves like a wrong password at the login boundary.
func VerifyPassword(plain, encoded string) bool {
	cfg := password.FromEnv()
	ok, err := cfg.Verify(encoded, plain)
	if err != nil {
		return false
	}
	return ok
}
