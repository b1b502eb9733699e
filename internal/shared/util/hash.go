package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// NamespaceKey returns a filesystem-safe directory name for a storage
// namespace. Plain lowercase alphanumeric namespaces pass through; anything
// else is hashed.
func NamespaceKey(s string) string {
	safe := s != ""
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			continue
		}
		safe = false
		break
	}
	if safe {
		return s
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
