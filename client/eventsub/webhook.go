package eventsub

import (
	"net/http"

	"github.com/google/uuid"

	"twitchtv/signer"
)

const (
	messageIdHeader = "Twitch-Eventsub-Message-Id"
	timestampHeader = "Twitch-Eventsub-Message-Timestamp"
	signatureHeader = "Twitch-Eventsub-Message-Signature"

	signaturePrefix = "sha256="
)

// NewWebhookSecret returns a fresh secret for webhook-transport
// subscriptions.
func NewWebhookSecret() string {
	return uuid.NewString()
}

// VerifyWebhookSignature checks the signature header of a webhook delivery
// against the HMAC of message id + timestamp + body.
func VerifyWebhookSignature(header http.Header, body []byte, secret string) bool {
	sig := header.Get(signatureHeader)
	if len(sig) <= len(signaturePrefix) {
		return false
	}
	payload := append([]byte(header.Get(messageIdHeader)+header.Get(timestampHeader)), body...)
	return signer.Verify(payload, []byte(secret), sig[len(signaturePrefix):])
}
