package ws

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSendAfterClose(t *testing.T) {
	client := newTestClient()

	assert.True(t, client.Send([]byte("one")))
	client.Close()
	assert.False(t, client.Send([]byte("two")))
}

func TestClientCloseIsIdempotent(t *testing.T) {
	client := newTestClient()

	client.Close()
	assert.NotPanics(t, func() { client.Close() })
}

func TestClientConcurrentSendAndClose(t *testing.T) {
	for i := 0; i < 100; i++ {
		client := newTestClient()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				client.Send([]byte("payload"))
			}
		}()
		go func() {
			defer wg.Done()
			client.Close()
		}()
		wg.Wait()
	}
}

func TestHubBroadcastDuringDisconnect(t *testing.T) {
	for i := 0; i < 100; i++ {
		hub := NewHub()
		client := newTestClient()
		hub.Join("r1", client, "A", "Alice")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				hub.BroadcastToRoom("r1", []byte("payload"))
			}
		}()
		go func() {
			defer wg.Done()
			hub.LeaveAll(client.Id)
			client.Close()
		}()
		wg.Wait()
	}
}
