package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceMarkOnlineAndOffline(t *testing.T) {
	p := NewPresence()

	p.MarkOnline("A", "Alice", "conn-1")
	assert.True(t, p.IsOnline("A"))

	entry, ok := p.Get("A")
	require.True(t, ok)
	assert.Equal(t, "Alice", entry.UserName)
	assert.Equal(t, "conn-1", entry.ConnId)

	gone, ok := p.MarkOffline("A")
	require.True(t, ok)
	assert.Equal(t, "A", gone.UserId)
	assert.False(t, gone.LastSeen.IsZero())
	assert.False(t, p.IsOnline("A"))
}

func TestPresenceMarkOnlineOverwrites(t *testing.T) {
	p := NewPresence()

	p.MarkOnline("A", "Alice", "conn-1")
	p.MarkOnline("A", "Alice", "conn-2")

	entry, ok := p.Get("A")
	require.True(t, ok)
	assert.Equal(t, "conn-2", entry.ConnId)
	assert.Len(t, p.ListOnline(), 1)
}

func TestPresenceMarkOfflineUnknownUser(t *testing.T) {
	p := NewPresence()

	_, ok := p.MarkOffline("ghost")
	assert.False(t, ok)
}

func TestPresenceListOnline(t *testing.T) {
	p := NewPresence()

	p.MarkOnline("A", "Alice", "conn-1")
	p.MarkOnline("B", "Bob", "conn-2")

	online := p.ListOnline()
	ids := []string{online[0].UserId, online[1].UserId}
	assert.ElementsMatch(t, []string{"A", "B"}, ids)
}
