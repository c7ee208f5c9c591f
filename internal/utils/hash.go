package utils

import (
	"fmt"
	"hash/fnv"
)

func HashStringToUint64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// CacheKey namespaces a hashed source identifier, e.g. "dashboard:9f1c...".
func CacheKey(prefix, source string) string {
	return fmt.Sprintf("%s:%016x", prefix, HashStringToUint64(source))
}
