package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const signaturePrefix = "sha256="

// Verify reports whether signature authenticates payload at timestamp under
// secret. It returns false when any input is empty, when timestamp is not a
// plain run of decimal digits, or when the timestamp is further than the
// tolerance from now.
func Verify(payload []byte, signature, timestamp, secret string, opts ...Option) bool {
	if len(payload) == 0 || signature == "" || timestamp == "" || secret == "" {
		return false
	}
	if !isDigits(timestamp) {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	cfg := newConfig(opts)
	drift := cfg.now().Unix() - ts
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(cfg.tolerance.Seconds()) {
		return false
	}

	expected := Sign(payload, timestamp, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign returns the X-Webhook-Signature value for payload sent at timestamp.
func Sign(payload []byte, timestamp, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'.'})
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
