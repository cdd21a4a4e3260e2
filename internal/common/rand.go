package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a random hexadecimal string built from size
// random bytes, so the resulting string is twice as long. It is used for
// refresh tokens and password-reset tokens.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
