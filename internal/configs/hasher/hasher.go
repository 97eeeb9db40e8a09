package hasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Hasher computes HMAC-SHA256 hashes with a secret key.
type Hasher struct {
	key string
}

// New creates a Hasher with the given key.
func New(key string) *Hasher {
	return &Hasher{key: key}
}

// Hash returns the hex-encoded HMAC-SHA256 of data.
func (h *Hasher) Hash(data []byte) string {
	mac := hmac.New(sha256.New, []byte(h.key))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
