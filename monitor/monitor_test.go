package monitor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitchtv/client/helix"
)

func stream(login string, title string, gameId string, gameName string) helix.Stream {
	return helix.Stream{
		UserLogin: login,
		Title:     title,
		GameID:    gameId,
		GameName:  gameName,
	}
}

func TestDiffStreamsOnline(t *testing.T) {
	prev := map[string]helix.Stream{}
	cur := map[string]helix.Stream{"ninja": stream("ninja", "hi", "1", "Fortnite")}

	events := diffStreams(prev, cur)
	require.Len(t, events, 1)
	assert.Equal(t, EventOnline, events[0].Type)
	assert.Equal(t, "ninja", events[0].UserLogin)
	require.NotNil(t, events[0].Stream)
	assert.Equal(t, "hi", events[0].Stream.Title)
}

func TestDiffStreamsOffline(t *testing.T) {
	prev := map[string]helix.Stream{"ninja": stream("ninja", "hi", "1", "Fortnite")}
	cur := map[string]helix.Stream{}

	events := diffStreams(prev, cur)
	require.Len(t, events, 1)
	assert.Equal(t, EventOffline, events[0].Type)
	assert.Equal(t, "hi", events[0].OldValue)
	assert.Nil(t, events[0].Stream)
}

func TestDiffStreamsTitleChange(t *testing.T) {
	prev := map[string]helix.Stream{"ninja": stream("ninja", "old title", "1", "Fortnite")}
	cur := map[string]helix.Stream{"ninja": stream("ninja", "new title", "1", "Fortnite")}

	events := diffStreams(prev, cur)
	require.Len(t, events, 1)
	assert.Equal(t, EventTitleChange, events[0].Type)
	assert.Equal(t, "old title", events[0].OldValue)
	assert.Equal(t, "new title", events[0].NewValue)
}

func TestDiffStreamsGameChange(t *testing.T) {
	prev := map[string]helix.Stream{"ninja": stream("ninja", "hi", "1", "Fortnite")}
	cur := map[string]helix.Stream{"ninja": stream("ninja", "hi", "2", "Valorant")}

	events := diffStreams(prev, cur)
	require.Len(t, events, 1)
	assert.Equal(t, EventGameChange, events[0].Type)
	assert.Equal(t, "Fortnite", events[0].OldValue)
	assert.Equal(t, "Valorant", events[0].NewValue)
}

func TestDiffStreamsTitleAndGameChange(t *testing.T) {
	prev := map[string]helix.Stream{"ninja": stream("ninja", "old", "1", "Fortnite")}
	cur := map[string]helix.Stream{"ninja": stream("ninja", "new", "2", "Valorant")}

	events := diffStreams(prev, cur)
	require.Len(t, events, 2)
	types := []EventType{events[0].Type, events[1].Type}
	assert.ElementsMatch(t, []EventType{EventTitleChange, EventGameChange}, types)
}

func TestDiffStreamsNoChange(t *testing.T) {
	prev := map[string]helix.Stream{"ninja": stream("ninja", "hi", "1", "Fortnite")}
	cur := map[string]helix.Stream{"ninja": stream("ninja", "hi", "1", "Fortnite")}

	assert.Empty(t, diffStreams(prev, cur))
}

func TestChunkLogins(t *testing.T) {
	logins := make([]string, 250)
	for i := range logins {
		logins[i] = fmt.Sprintf("user%d", i)
	}

	chunks := chunkLogins(logins, 100)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)
	assert.Equal(t, "user0", chunks[0][0])
	assert.Equal(t, "user100", chunks[1][0])
	assert.Equal(t, "user249", chunks[2][49])
}

func TestChunkLoginsSmallSet(t *testing.T) {
	chunks := chunkLogins([]string{"ninja", "shroud"}, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, []string{"ninja", "shroud"}, chunks[0])

	assert.Empty(t, chunkLogins(nil, 100))
}
