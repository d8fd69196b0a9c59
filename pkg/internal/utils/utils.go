package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUniqueHash returns a random component id. Every component gets one
// at construction so log lines and sensor events can be correlated per
// instance.
func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}
