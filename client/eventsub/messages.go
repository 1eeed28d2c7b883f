package eventsub

import "encoding/json"

const (
	messageTypeWelcome      = "session_welcome"
	messageTypeKeepalive    = "session_keepalive"
	messageTypeNotification = "notification"
	messageTypeReconnect    = "session_reconnect"
	messageTypeRevocation   = "revocation"
)

type message struct {
	Metadata metadata        `json:"metadata"`
	Payload  json.RawMessage `json:"payload"`
}

type metadata struct {
	MessageID        string `json:"message_id"`
	MessageType      string `json:"message_type"`
	MessageTimestamp string `json:"message_timestamp"`
}

type sessionPayload struct {
	Session session `json:"session"`
}

type session struct {
	ID                      string `json:"id"`
	Status                  string `json:"status"`
	KeepaliveTimeoutSeconds int    `json:"keepalive_timeout_seconds"`
	ReconnectURL            string `json:"reconnect_url"`
	ConnectedAt             string `json:"connected_at"`
}

type Subscription struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Cost      int               `json:"cost"`
	Condition map[string]string `json:"condition"`
	CreatedAt string            `json:"created_at"`
}

// Notification is one delivered event. Event is left raw: its shape depends
// on the subscription type and callers decode it themselves.
type Notification struct {
	Subscription Subscription    `json:"subscription"`
	Event        json.RawMessage `json:"event"`
}

type revocationPayload struct {
	Subscription Subscription `json:"subscription"`
}
