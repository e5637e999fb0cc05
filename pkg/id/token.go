package id

import (
	"crypto/rand"
	"encoding/base64"
)

// GetSecureToken generates a URL-safe random token with n bytes of entropy.
// Used for invite tokens, share tokens and API key secrets; n must be at
// least 16 (128 bits).
func GetSecureToken(n int) string {
	if n < 16 {
		n = 16
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is unrecoverable for credential material
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
