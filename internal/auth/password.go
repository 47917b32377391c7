// filepath: internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Changing these invalidates stored hashes, so they
// are fixed; the encoded prefix leaves room for future schemes.
const (
	hashPrefix     = "pbkdf2"
	saltLength     = 16
	hashIterations = 65536
	derivedKeyLen  = 16 // 128-bit derived key
)

// HashPassword derives a PBKDF2-HMAC-SHA1 hash with a fresh random salt
// and encodes it as "pbkdf2:<base64 salt>:<base64 hash>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, hashIterations, derivedKeyLen, sha1.New)

	return fmt.Sprintf("%s:%s:%s",
		hashPrefix,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword re-derives the hash for the candidate password and
// compares it against the stored encoding in constant time.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 || parts[0] != hashPrefix {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, hashIterations, len(stored), sha1.New)
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
