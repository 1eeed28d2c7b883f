package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

func Sign(bytes []byte, secret []byte) string {
	hmac := hmac.New(sha256.New, secret)
	hmac.Write(bytes)
	dataHmac := hmac.Sum(nil)
	hmacHex := hex.EncodeToString(dataHmac)
	return hmacHex
}

// Verify compares an expected hex signature against the HMAC of bytes in
// constant time.
func Verify(bytes []byte, secret []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(bytes, secret)), []byte(signature))
}
