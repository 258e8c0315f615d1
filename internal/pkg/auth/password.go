package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of a plaintext password.
// Login matches the digest against the stored credential row in SQL.
//
// The digest is deterministic and unsalted. This is a known weakness kept for
// compatibility with already stored credentials: changing the scheme would
// make every persisted digest unverifiable.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
