package ws

import (
	"log"
	"sync"

	"vowline/internal/observability"
)

type roomMember struct {
	client   *Client
	userId   string
	userName string
}

// Hub is the in-memory room membership table for a single server process.
// Rooms map connection ids to members; a room's set is deleted when it
// becomes empty.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]roomMember
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[string]roomMember),
	}
}

func (h *Hub) Join(roomId string, client *Client, userId, userName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomId]; !ok {
		h.rooms[roomId] = make(map[string]roomMember)
	}
	h.rooms[roomId][client.Id] = roomMember{
		client:   client,
		userId:   userId,
		userName: userName,
	}
}

// Leave removes the tuple matching the connection handle. Keying by
// connection rather than user means one tab leaving does not evict another
// user holding the same identity elsewhere.
func (h *Hub) Leave(roomId, connId string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(roomId, connId)
}

func (h *Hub) leaveLocked(roomId, connId string) {
	members, ok := h.rooms[roomId]
	if !ok {
		return
	}
	delete(members, connId)
	if len(members) == 0 {
		delete(h.rooms, roomId)
	}
}

// LeaveAll removes the connection from every room and returns the room ids
// it was joined to, so the caller can broadcast departure notices.
func (h *Hub) LeaveAll(connId string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var left []string
	for roomId, members := range h.rooms {
		if _, ok := members[connId]; ok {
			left = append(left, roomId)
			h.leaveLocked(roomId, connId)
		}
	}
	return left
}

func (h *Hub) Members(roomId string) []Member {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members := h.rooms[roomId]
	out := make([]Member, 0, len(members))
	for connId, m := range members {
		out = append(out, Member{
			ConnId:   connId,
			UserId:   m.userId,
			UserName: m.userName,
		})
	}
	return out
}

func (h *Hub) RoomsOfUser(userId string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var rooms []string
	for roomId, members := range h.rooms {
		for _, m := range members {
			if m.userId == userId {
				rooms = append(rooms, roomId)
				break
			}
		}
	}
	return rooms
}

func (h *Hub) BroadcastToRoom(roomId string, payload []byte) {
	h.BroadcastToRoomExcept(roomId, "", payload)
}

// BroadcastToRoomExcept delivers the payload once to every member of the
// room except the named connection. Members whose send buffer is full are
// skipped; the stalled connection's pumps will tear it down.
func (h *Hub) BroadcastToRoomExcept(roomId, exceptConnId string, payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[roomId]))
	for connId, m := range h.rooms[roomId] {
		if connId == exceptConnId {
			continue
		}
		clients = append(clients, m.client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.Send(payload) {
			observability.IncRelayDropped()
			log.Printf("dropping payload for slow connection %s in room %s", client.Id, roomId)
		}
	}
}

func (h *Hub) Close() {}
