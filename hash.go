package linkedin

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashValue returns the lowercase hex SHA-256 digest of the input bytes.
// No normalization is applied.
func HashValue(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
