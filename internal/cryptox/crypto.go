// Package cryptox holds the password digest used by the local credential
// store. Digests are hex encoded SHA-256 over "salt:password".
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// SaltSize is the number of random bytes in a freshly generated salt.
const SaltSize = 16

// NewSalt returns a random hex encoded salt.
func NewSalt() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// HashPassword computes the digest stored for a user:
//
//	hex(sha256(salt + ":" + password))
func HashPassword(password []byte, salt string) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte{':'})
	h.Write(password)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPassword reports whether password, salted with salt, produces hash.
// The comparison runs in constant time.
func VerifyPassword(hash, salt string, password []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(candidate)) == 1
}
