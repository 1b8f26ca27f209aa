package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// TokenDigest is the HMAC-SHA256 (hex) of a raw access token under the
// signing secret. The blacklist stores digests, never the token itself.
func TokenDigest(raw, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}
