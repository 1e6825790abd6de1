package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Password returns the lowercase hex SHA-256 digest of a plaintext password.
// Digests are unsalted, so the same input always produces the same stored
// value; login compares digests for exact equality.
func Password(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
