package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand"
	}
	return hex.EncodeToString(bytes)
}

// GenerateGuestItemID mints a locally unique id for a guest cart line:
// millisecond timestamp plus a random suffix. Not assumed unique across
// sessions or devices.
func GenerateGuestItemID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), randomHex(4))
}

// GenerateGuestSessionID mints the id that keys a guest's cart.
func GenerateGuestSessionID() string {
	return "guest_" + randomHex(16)
}
