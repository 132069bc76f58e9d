package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const ownerKeyLen = 32

// HashUserKey returns a storage-safe owner prefix for a user ID so that guest
// and account IDs never appear verbatim in object keys. Guest and account IDs
// hash into separate namespaces.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	key := hex.EncodeToString(sum[:])[:ownerKeyLen]
	if strings.HasPrefix(userID, "guest:") {
		return "g-" + key
	}
	return "u-" + key
}
