// Package monitor polls the streams resource for a fixed set of logins and
// emits change events on a channel.
package monitor

import (
	"log/slog"
	"strings"
	"time"

	"twitchtv/client/helix"
	"twitchtv/msync"
)

type EventType string

const (
	EventOnline      EventType = "online"
	EventOffline     EventType = "offline"
	EventTitleChange EventType = "titleChange"
	EventGameChange  EventType = "gameChange"
)

type Event struct {
	Type      EventType
	UserLogin string
	OldValue  string
	NewValue  string
	// Stream is the current live stream, nil for offline events.
	Stream *helix.Stream
}

type Monitor struct {
	h           *helix.HelixClient
	logins      []string
	interval    time.Duration
	live        *msync.MuMap[string, helix.Stream]
	lastPolled  *msync.Mu[time.Time]
	EventStream chan *Event
	stop        chan struct{}
}

func NewMonitor(h *helix.HelixClient, logins []string, interval time.Duration) *Monitor {
	return &Monitor{
		h:           h,
		logins:      logins,
		interval:    interval,
		live:        msync.NewMuMap[string, helix.Stream](),
		lastPolled:  msync.NewMu(time.Time{}),
		EventStream: make(chan *Event, 1024),
		stop:        make(chan struct{}),
	}
}

// Start seeds the baseline with one poll, then keeps polling on a ticker
// until Stop is called. The seeding poll emits no events.
func (m *Monitor) Start() error {
	if err := m.seed(); err != nil {
		return err
	}
	ticker := time.NewTicker(m.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.poll()
			}
		}
	}()
	slog.Info("[Monitor] Started", "logins", len(m.logins), "interval", m.interval)
	return nil
}

func (m *Monitor) Stop() {
	close(m.stop)
}

// Live reports the last observed stream for a login, if it was live.
func (m *Monitor) Live(login string) (helix.Stream, bool) {
	return m.live.Get(strings.ToLower(login))
}

// LastPolled reports when the streams resource was last fetched.
func (m *Monitor) LastPolled() time.Time {
	return m.lastPolled.Get()
}

func (m *Monitor) seed() error {
	cur, err := m.fetch()
	if err != nil {
		return err
	}
	for login, stream := range cur {
		m.live.Set(login, stream)
	}
	m.lastPolled.Set(time.Now())
	return nil
}

func (m *Monitor) poll() {
	cur, err := m.fetch()
	if err != nil {
		slog.Error("[Monitor] Failed to fetch streams", "error", err)
		return
	}
	m.lastPolled.Set(time.Now())

	events := diffStreams(m.live.Snapshot(), cur)

	for login := range m.live.Snapshot() {
		if _, ok := cur[login]; !ok {
			m.live.Delete(login)
		}
	}
	for login, stream := range cur {
		m.live.Set(login, stream)
	}

	for _, ev := range events {
		m.EventStream <- ev
		slog.Debug("[Monitor] Change detected", "type", ev.Type, "login", ev.UserLogin)
	}
}

// maxLoginsPerRequest is the streams resource page cap; more logins than
// this in one call would silently truncate the answer.
const maxLoginsPerRequest = 100

func (m *Monitor) fetch() (map[string]helix.Stream, error) {
	cur := make(map[string]helix.Stream, len(m.logins))
	for _, chunk := range chunkLogins(m.logins, maxLoginsPerRequest) {
		resp, err := m.h.Streams(&helix.StreamsOptions{
			UserLogin: chunk,
			First:     maxLoginsPerRequest,
		})
		if err != nil {
			return nil, err
		}
		for _, s := range resp.Data {
			cur[strings.ToLower(s.UserLogin)] = s
		}
	}
	return cur, nil
}

func chunkLogins(logins []string, size int) [][]string {
	var chunks [][]string
	for len(logins) > size {
		chunks = append(chunks, logins[:size])
		logins = logins[size:]
	}
	if len(logins) > 0 {
		chunks = append(chunks, logins)
	}
	return chunks
}

// diffStreams compares two live-stream snapshots keyed by lowercase login.
func diffStreams(prev map[string]helix.Stream, cur map[string]helix.Stream) []*Event {
	var events []*Event
	for login, stream := range cur {
		old, wasLive := prev[login]
		if !wasLive {
			events = append(events, &Event{
				Type:      EventOnline,
				UserLogin: stream.UserLogin,
				NewValue:  stream.Title,
				Stream:    &stream,
			})
			continue
		}
		if old.Title != stream.Title {
			events = append(events, &Event{
				Type:      EventTitleChange,
				UserLogin: stream.UserLogin,
				OldValue:  old.Title,
				NewValue:  stream.Title,
				Stream:    &stream,
			})
		}
		if old.GameID != stream.GameID {
			events = append(events, &Event{
				Type:      EventGameChange,
				UserLogin: stream.UserLogin,
				OldValue:  old.GameName,
				NewValue:  stream.GameName,
				Stream:    &stream,
			})
		}
	}
	for login, old := range prev {
		if _, stillLive := cur[login]; !stillLive {
			events = append(events, &Event{
				Type:      EventOffline,
				UserLogin: old.UserLogin,
				OldValue:  old.Title,
			})
		}
	}
	return events
}
