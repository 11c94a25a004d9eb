package tasksrvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeFlag strips surrounding whitespace and embedded line breaks from
// a submitted flag. Copy-pasted flags routinely carry both.
func NormalizeFlag(flag string) string {
	flag = strings.ReplaceAll(flag, "\r", "")
	flag = strings.ReplaceAll(flag, "\n", "")
	return strings.TrimSpace(flag)
}

// HashFlag computes the hex-encoded HMAC-SHA256 of a normalized flag under
// the deployment secret. Tasks store this value instead of the plaintext
// flag, and submissions are compared in hashed form only.
func HashFlag(key []byte, flag string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(NormalizeFlag(flag)))
	return hex.EncodeToString(mac.Sum(nil))
}

// FlagMatches compares a candidate flag against a stored hash in constant
// time.
func FlagMatches(key []byte, candidate, storedHmac string) bool {
	return hmac.Equal(
		[]byte(HashFlag(key, candidate)),
		[]byte(storedHmac),
	)
}
