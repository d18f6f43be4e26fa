package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 10000
	hashKeyLength  = 32
)

// PasswordHasher derives deterministic salted password hashes: the same
// plaintext and salt always yield the same hash, so stored credentials can
// be compared without keeping the plaintext around.
type PasswordHasher struct {
	salt []byte
}

func NewPasswordHasher(salt string) *PasswordHasher {
	return &PasswordHasher{salt: []byte(salt)}
}

func (h *PasswordHasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.salt, hashIterations, hashKeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify recomputes the hash and compares it case-insensitively against
// the stored one.
func (h *PasswordHasher) Verify(plaintext, stored string) bool {
	return strings.EqualFold(h.Hash(plaintext), stored)
}
