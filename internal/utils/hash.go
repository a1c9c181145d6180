package utils

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// maxHashKeyLength is the longest key BLAKE2b accepts.
const maxHashKeyLength = blake2b.Size

// HashString computes a keyed BLAKE2b digest of data truncated to size bytes
// and returns it hex-encoded. Keys longer than 64 bytes are hashed down
// first. An empty key yields a plain unkeyed digest.
//
// Example usage:
//
//	digest, err := utils.HashString("42", "server-secret", 8) // 16 hex digits
func HashString(data string, hashKey string, size int) (string, error) {
	key := []byte(hashKey)
	if len(key) > maxHashKeyLength {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}

	h, err := blake2b.New(size, key)
	if err != nil {
		return "", fmt.Errorf("error creating hasher: %w", err)
	}
	h.Write([]byte(data))

	return hex.EncodeToString(h.Sum(nil)), nil
}
