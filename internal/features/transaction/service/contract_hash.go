package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// contractHash fingerprints a transaction for display in chat replies. It is
// not a commitment: nothing in the system ever recomputes or verifies it.
// The timestamp and nonce keep identical transactions from colliding.
func contractHash(userID uint, amount float64, txType, description, secret string) string {
	payload := fmt.Sprintf("%d|%.2f|%s|%s|%s|%d|%s",
		userID, amount, txType, description, secret,
		time.Now().UnixNano(), uuid.New().String())

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
