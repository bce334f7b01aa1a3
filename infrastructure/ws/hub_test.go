package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{
		Id:   newConnId(),
		send: make(chan []byte, 8),
	}
}

func TestHubJoinAndLeave(t *testing.T) {
	hub := NewHub()
	alice := newTestClient()
	bob := newTestClient()

	hub.Join("r1", alice, "A", "Alice")
	hub.Join("r1", bob, "B", "Bob")

	members := hub.Members("r1")
	require.Len(t, members, 2)

	hub.Leave("r1", alice.Id)
	members = hub.Members("r1")
	require.Len(t, members, 1)
	assert.Equal(t, "B", members[0].UserId)

	hub.Leave("r1", bob.Id)
	assert.Empty(t, hub.Members("r1"))
	assert.Empty(t, hub.rooms, "empty room set should be deleted")
}

func TestHubLeaveByConnectionNotUser(t *testing.T) {
	hub := NewHub()
	tab1 := newTestClient()
	tab2 := newTestClient()

	// Same user joined to two different rooms through two connections.
	hub.Join("r1", tab1, "A", "Alice")
	hub.Join("r2", tab2, "A", "Alice")

	hub.Leave("r1", tab1.Id)

	assert.Empty(t, hub.Members("r1"))
	require.Len(t, hub.Members("r2"), 1)
}

func TestHubLeaveAll(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	other := newTestClient()

	hub.Join("r1", client, "A", "Alice")
	hub.Join("r2", client, "A", "Alice")
	hub.Join("r2", other, "B", "Bob")

	left := hub.LeaveAll(client.Id)
	assert.ElementsMatch(t, []string{"r1", "r2"}, left)

	assert.Empty(t, hub.Members("r1"))
	require.Len(t, hub.Members("r2"), 1)
	assert.Equal(t, "B", hub.Members("r2")[0].UserId)
}

func TestHubRoomsOfUser(t *testing.T) {
	hub := NewHub()
	client := newTestClient()

	hub.Join("r1", client, "A", "Alice")
	hub.Join("r3", client, "A", "Alice")

	assert.ElementsMatch(t, []string{"r1", "r3"}, hub.RoomsOfUser("A"))
	assert.Empty(t, hub.RoomsOfUser("B"))
}

func TestHubBroadcastExcludesSender(t *testing.T) {
	hub := NewHub()
	sender := newTestClient()
	receiver := newTestClient()

	hub.Join("r1", sender, "A", "Alice")
	hub.Join("r1", receiver, "B", "Bob")

	hub.BroadcastToRoomExcept("r1", sender.Id, []byte("hello"))

	select {
	case payload := <-receiver.send:
		assert.Equal(t, "hello", string(payload))
	default:
		t.Fatal("receiver should have gotten the payload")
	}

	select {
	case <-sender.send:
		t.Fatal("sender should not receive its own relay")
	default:
	}
}

func TestHubBroadcastToRoomReachesEveryone(t *testing.T) {
	hub := NewHub()
	a := newTestClient()
	b := newTestClient()

	hub.Join("r1", a, "A", "Alice")
	hub.Join("r1", b, "B", "Bob")

	hub.BroadcastToRoom("r1", []byte("proposal"))

	for _, c := range []*Client{a, b} {
		select {
		case payload := <-c.send:
			assert.Equal(t, "proposal", string(payload))
		default:
			t.Fatal("every member should receive a room-wide broadcast")
		}
	}
}
