package password

import (
	"os"
	"strconv"
)

// Params controls Argon2id hashing cost.
// MemoryKiB is in KiB as required by argon2.IDKey.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Config is the single configuration surface for this package.
// MinLength/MaxLength bound accepted plaintext; they exist to keep argon2
// input sane, not to enforce a password policy.
type Config struct {
	Params    Params
	MinLength int
	MaxLength int
}

// DefaultConfig returns a baseline suitable for interactive logins.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			MemoryKiB:   64 * 1024, // 64 MiB
			Iterations:  3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		MinLength: 8,
		MaxLength: 256,
	}
}

// FromEnv loads config from environment variables, falling back to defaults.
//
// Env surface:
//   - MARKETPLACE_ARGON2_MEMORY_KIB
//   - MARKETPLACE_ARGON2_ITERATIONS
//   - MARKETPLACE_ARGON2_PARALLELISM
//   - MARKETPLACE_PASSWORD_MIN_LEN
//   - MARKETPLACE_PASSWORD_MAX_LEN
func FromEnv() Config {
	cfg := DefaultConfig()

	if n, ok := envUint32("MARKETPLACE_ARGON2_MEMORY_KIB"); ok && n >= 8*1024 {
		cfg.Params.MemoryKiB = n
	}
	if n, ok := envUint32("MARKETPLACE_ARGON2_ITERATIONS"); ok && n >= 1 {
		cfg.Params.Iterations = n
	}
	if n, ok := envUint32("MARKETPLACE_ARGON2_PARALLELISM"); ok && n >= 1 && n <= 8 {
		cfg.Params.Parallelism = uint8(n)
	}
	if n, ok := envUint32("MARKETPLACE_PASSWORD_MIN_LEN"); ok && n >= 1 {
		cfg.MinLength = int(n)
	}
	if n, ok := envUint32("MARKETPLACE_PASSWORD_MAX_LEN"); ok && int(n) >= cfg.MinLength {
		cfg.MaxLength = int(n)
	}

	return cfg
}

func envUint32(key string) (uint32, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
