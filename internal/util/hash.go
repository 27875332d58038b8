package util

import (
	"crypto/sha256"
	"fmt"
)

// GenerateHash creates a SHA256 hash of the given clipboard text, used as
// the dedupe key for conversion records.
func GenerateHash(content string) string {
	hasher := sha256.New()
	hasher.Write([]byte(content))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}
