package storage

import (
	"crypto/rand"
	"encoding/base64"
)

// NewID generates a random identifier with a type prefix ("b_", "m_").
// Backends call this when assigning identifiers on insert.
func NewID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
