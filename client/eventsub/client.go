package eventsub

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"

	"twitchtv/msync"
)

const baseWsUrl = "wss://eventsub.wss.twitch.tv/ws"

// EventSubClient maintains one EventSub WebSocket session. Notifications and
// revocations are delivered on buffered channels; keepalives are consumed
// internally and reconnect messages are followed transparently.
type EventSubClient struct {
	wsConn             *websocket.Conn
	url                string
	sessionId          *msync.Mu[string]
	NotificationStream chan *Notification
	RevocationStream   chan *Subscription
	done               chan struct{}
}

func NewEventSubClient() *EventSubClient {
	return &EventSubClient{
		url:                baseWsUrl,
		sessionId:          msync.NewMu(""),
		NotificationStream: make(chan *Notification, 1024),
		RevocationStream:   make(chan *Subscription, 1024),
		done:               make(chan struct{}),
	}
}

func (e *EventSubClient) Start() error {
	if err := e.wsConnect(e.url); err != nil {
		return err
	}
	go e.readLoop()
	return nil
}

func (e *EventSubClient) Stop() {
	close(e.done)
	if e.wsConn != nil {
		e.wsConn.Close()
	}
}

// SessionId identifies this socket when creating subscriptions with the
// websocket transport. The id changes when the server asks for a reconnect.
func (e *EventSubClient) SessionId() string {
	return e.sessionId.Get()
}

func (e *EventSubClient) wsConnect(url string) error {
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		slog.Error("[EventSubClient] Failed to dial ws", "error", err)
		return err
	}
	// The first frame must be the welcome carrying the session id.
	var msg message
	if err := c.ReadJSON(&msg); err != nil {
		c.Close()
		return err
	}
	if msg.Metadata.MessageType != messageTypeWelcome {
		c.Close()
		return errors.New("expected " + messageTypeWelcome + ", got " + msg.Metadata.MessageType)
	}
	var payload sessionPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.Close()
		return err
	}
	e.wsConn = c
	e.sessionId.Set(payload.Session.ID)
	slog.Debug("[EventSubClient] Session established", "session_id", payload.Session.ID)
	return nil
}

func (e *EventSubClient) readLoop() {
	for {
		_, raw, err := e.wsConn.ReadMessage()
		if err != nil {
			select {
			case <-e.done:
			default:
				slog.Error("[EventSubClient] Failed to read ws message", "error", err)
			}
			close(e.NotificationStream)
			close(e.RevocationStream)
			return
		}
		var msg message
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.Warn("[EventSubClient] Failed to unmarshal ws message", "error", err)
			continue
		}
		switch msg.Metadata.MessageType {
		case messageTypeKeepalive:
			continue
		case messageTypeNotification:
			e.handleNotification(msg.Payload)
		case messageTypeReconnect:
			e.handleReconnect(msg.Payload)
		case messageTypeRevocation:
			e.handleRevocation(msg.Payload)
		default:
			slog.Warn("[EventSubClient] Unknown ws message type. Ignoring.", "type", msg.Metadata.MessageType)
		}
	}
}

func (e *EventSubClient) handleNotification(payload json.RawMessage) {
	var notification Notification
	if err := json.Unmarshal(payload, &notification); err != nil {
		slog.Warn("[EventSubClient] Failed to unmarshal notification", "error", err)
		return
	}
	e.NotificationStream <- &notification
	slog.Debug("[EventSubClient] Notification", "type", notification.Subscription.Type)
}

func (e *EventSubClient) handleRevocation(payload json.RawMessage) {
	var revocation revocationPayload
	if err := json.Unmarshal(payload, &revocation); err != nil {
		slog.Warn("[EventSubClient] Failed to unmarshal revocation", "error", err)
		return
	}
	e.RevocationStream <- &revocation.Subscription
	slog.Warn("[EventSubClient] Subscription revoked",
		"type", revocation.Subscription.Type,
		"status", revocation.Subscription.Status)
}

// handleReconnect follows the server-provided url. The old socket stays open
// until the replacement session is welcomed, so no notifications are lost.
func (e *EventSubClient) handleReconnect(payload json.RawMessage) {
	var reconnect sessionPayload
	if err := json.Unmarshal(payload, &reconnect); err != nil {
		slog.Warn("[EventSubClient] Failed to unmarshal reconnect", "error", err)
		return
	}
	old := e.wsConn
	if err := e.wsConnect(reconnect.Session.ReconnectURL); err != nil {
		slog.Error("[EventSubClient] Failed to reconnect ws", "error", err)
		return
	}
	old.Close()
	slog.Info("[EventSubClient] Reconnected", "session_id", e.SessionId())
}
