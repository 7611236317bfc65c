package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// confirmationTokenBytes is the entropy of a confirmation token (256 bits).
const confirmationTokenBytes = 32

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// generateConfirmationToken returns a hex-encoded, cryptographically random
// single-use token.
func generateConfirmationToken() (string, error) {
	b := make([]byte, confirmationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
