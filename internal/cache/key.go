package cache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Key returns the cache key for a document text: the hex encoded BLAKE3
// digest. Rendering is deterministic, so equal text always maps to the same
// rendered HTML and the digest is a safe key.
func Key(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
