// Package cryptox holds the password digest used by the account store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of password.
//
// The digest is unsalted and computed in a single pass. Stored account
// records depend on this exact construction, so changing it invalidates
// every existing passwordHash.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to digest.
// The comparison runs in constant time with respect to the digest contents.
func VerifyPassword(password, digest string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
