// Package storagekey derives object-store keys from a logical filename and
// its owner. The derived key keeps files with the same name but different
// owners apart, and the owner can always recover the logical name back from
// the key.
package storagekey

import (
	"fmt"
	"strings"
)

// Encode combines the owner and the logical filename into the derived
// storage key, e.g. ("myfile.txt", "alice") -> "[alice] - myfile.txt".
func Encode(filename, owner string) string {
	return "[" + owner + "] - " + filename
}

// Decode recovers the logical filename from a derived key, given the owner.
// It fails when the key was not produced by Encode for that owner.
func Decode(key, owner string) (string, error) {
	prefix := "[" + owner + "] - "
	if !strings.HasPrefix(key, prefix) {
		return "", fmt.Errorf("key %q does not belong to owner %q", key, owner)
	}
	return key[len(prefix):], nil
}
