package stringmap

import "github.com/cespare/xxhash/v2"

// hashKey computes a 32-bit xxHash of the key's content bytes. Hashing
// covers the full key, so keys of equal length but different content land
// in independent buckets.
func hashKey(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}
