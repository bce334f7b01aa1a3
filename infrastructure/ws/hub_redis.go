package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisHub mirrors room broadcasts across server processes. Membership stays
// local to each process; every broadcast is also published on the room's
// redis channel so peers can deliver to the room members connected to them.
type RedisHub struct {
	local *Hub

	redisClient *redis.Client
	pubsub      *redis.PubSub
	serverId    string
}

type redisRoomMessage struct {
	FromServerId string `json:"fromServerId"`
	RoomId       string `json:"roomId"`
	ExceptConnId string `json:"exceptConnId,omitempty"`
	Payload      []byte `json:"payload"`
}

func NewRedisHub(redisAddr, serverId string) *RedisHub {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	hub := &RedisHub{
		local:       NewHub(),
		redisClient: rdb,
		serverId:    serverId,
	}

	hub.pubsub = rdb.PSubscribe(context.Background(), "room:*")
	go hub.subscribe()

	return hub
}

func (h *RedisHub) subscribe() {
	ch := h.pubsub.Channel()

	log.Printf("[%s] redis room subscriber started", h.serverId)

	for msg := range ch {
		var roomMsg redisRoomMessage
		if err := json.Unmarshal([]byte(msg.Payload), &roomMsg); err != nil {
			log.Printf("unmarshal redis room message: %v", err)
			continue
		}

		// Don't re-deliver what this process already delivered locally.
		if roomMsg.FromServerId == h.serverId {
			continue
		}

		h.local.BroadcastToRoomExcept(roomMsg.RoomId, roomMsg.ExceptConnId, roomMsg.Payload)
	}
}

func (h *RedisHub) publish(roomId, exceptConnId string, payload []byte) {
	msg := redisRoomMessage{
		FromServerId: h.serverId,
		RoomId:       roomId,
		ExceptConnId: exceptConnId,
		Payload:      payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal redis room message: %v", err)
		return
	}

	if err := h.redisClient.Publish(context.Background(), "room:"+roomId, msgBytes).Err(); err != nil {
		log.Printf("publish to redis room %s: %v", roomId, err)
	}
}

func (h *RedisHub) Join(roomId string, client *Client, userId, userName string) {
	h.local.Join(roomId, client, userId, userName)
}

func (h *RedisHub) Leave(roomId, connId string) {
	h.local.Leave(roomId, connId)
}

func (h *RedisHub) LeaveAll(connId string) []string {
	return h.local.LeaveAll(connId)
}

// Members reports only the members connected to this process. Callers that
// need a cluster-wide view should track durable participants instead.
func (h *RedisHub) Members(roomId string) []Member {
	return h.local.Members(roomId)
}

func (h *RedisHub) RoomsOfUser(userId string) []string {
	return h.local.RoomsOfUser(userId)
}

func (h *RedisHub) BroadcastToRoom(roomId string, payload []byte) {
	h.local.BroadcastToRoom(roomId, payload)
	h.publish(roomId, "", payload)
}

func (h *RedisHub) BroadcastToRoomExcept(roomId, exceptConnId string, payload []byte) {
	h.local.BroadcastToRoomExcept(roomId, exceptConnId, payload)
	h.publish(roomId, exceptConnId, payload)
}

func (h *RedisHub) Close() {
	if h.pubsub != nil {
		_ = h.pubsub.Close()
	}
	_ = h.redisClient.Close()
}
