// Package auth holds the credential primitives: salted keyed-hash password
// verification and signed session tokens.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const saltBytes = 128

// NewSalt returns a fresh random per-user salt.
func NewSalt() string {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// HashPassword derives the stored credential: HMAC-SHA256 keyed by
// salt "/" password over the deployment secret, hex encoded. The whole
// input is always consumed, so the computation never branches on partial
// matches.
func HashPassword(secret, salt, password string) string {
	mac := hmac.New(sha256.New, []byte(salt+"/"+password))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPassword recomputes the hash for a candidate password and compares
// it against the stored value in constant time.
func VerifyPassword(secret, salt, storedHash, candidate string) bool {
	expected := HashPassword(secret, salt, candidate)
	return hmac.Equal([]byte(expected), []byte(storedHash))
}
