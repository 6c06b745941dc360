package auth

import (
	"errors"

	"github.com/alexedwards/argon2id"
)

// HashPassword produces an argon2id digest embedding a fresh random salt
// and the fixed default cost parameters.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password must not be empty")
	}
	return argon2id.CreateHash(plain, argon2id.DefaultParams)
}

// VerifyPassword reports whether plain matches the digest. A malformed
// digest verifies as false rather than erroring.
func VerifyPassword(plain, digest string) bool {
	match, err := argon2id.ComparePasswordAndHash(plain, digest)
	if err != nil {
		return false
	}
	return match
}
