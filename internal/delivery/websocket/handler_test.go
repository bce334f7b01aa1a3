package websocket

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vowline/infrastructure/cache"
	"vowline/infrastructure/ws"
	"vowline/internal/entity"
	"vowline/internal/mocks"
	"vowline/internal/usecase"
)

// recordingHub captures every room broadcast so tests can assert on what
// reached the room, without real connections.
type recordingHub struct {
	mu         sync.Mutex
	broadcasts []string
	leaveRooms []string
}

func (h *recordingHub) Join(roomId string, client *ws.Client, userId, userName string) {}
func (h *recordingHub) Leave(roomId, connId string)                                    {}
func (h *recordingHub) LeaveAll(connId string) []string                                { return h.leaveRooms }
func (h *recordingHub) Members(roomId string) []ws.Member                              { return nil }
func (h *recordingHub) RoomsOfUser(userId string) []string                             { return nil }
func (h *recordingHub) Close()                                                         {}

func (h *recordingHub) BroadcastToRoom(roomId string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcasts = append(h.broadcasts, string(payload))
}

func (h *recordingHub) BroadcastToRoomExcept(roomId, exceptConnId string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcasts = append(h.broadcasts, string(payload))
}

func (h *recordingHub) captured() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.broadcasts...)
}

func newTestHandler(hub *recordingHub, messageRepo *mocks.MessageRepositoryMock, presence *ws.Presence) *Handler {
	roomRepo := new(mocks.RoomRepositoryMock)
	users := cache.NewUserCache(time.Minute, time.Minute)
	return NewHandler(
		hub,
		presence,
		usecase.NewChatUsecase(roomRepo, messageRepo),
		usecase.NewMessageUsecase(messageRepo),
		usecase.NewBookingUsecase(messageRepo),
		nil,
		users,
	)
}

func newTestSession(userId, userName string) *session {
	return &session{
		client:   ws.NewClient(nil),
		userId:   userId,
		userName: userName,
	}
}

func TestSendMessageValidationFailureNotRelayed(t *testing.T) {
	hub := &recordingHub{}
	messageRepo := new(mocks.MessageRepositoryMock)
	h := newTestHandler(hub, messageRepo, ws.NewPresence())
	sess := newTestSession("u1", "Ana")

	// Empty content fails validation; the room must hear nothing about it.
	h.dispatch(context.Background(), sess, []byte(`{"event":"sendMessage","data":{"roomId":"r1","sender":"u1","senderName":"Ana","content":""}}`))

	assert.Empty(t, hub.captured())
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMessageProposalTypeNotRelayed(t *testing.T) {
	hub := &recordingHub{}
	messageRepo := new(mocks.MessageRepositoryMock)
	h := newTestHandler(hub, messageRepo, ws.NewPresence())
	sess := newTestSession("off-1", "Pastor Dave")

	h.dispatch(context.Background(), sess, []byte(`{"event":"sendMessage","data":{"roomId":"r1","sender":"off-1","senderName":"Pastor Dave","type":"booking_proposal","content":"offer"}}`))

	assert.Empty(t, hub.captured())
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMessageStorageFailureStillRelays(t *testing.T) {
	hub := &recordingHub{}
	messageRepo := new(mocks.MessageRepositoryMock)
	h := newTestHandler(hub, messageRepo, ws.NewPresence())
	sess := newTestSession("u1", "Ana")

	messageRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ChatMessage{}, assert.AnError).Once()

	h.dispatch(context.Background(), sess, []byte(`{"event":"sendMessage","data":{"roomId":"r1","sender":"u1","senderName":"Ana","content":"hello"}}`))

	captured := hub.captured()
	require.Len(t, captured, 1)
	assert.True(t, strings.Contains(captured[0], EventReceiveMessage))
	messageRepo.AssertExpectations(t)
}

func TestDisconnectOtherConnectionStaysOnline(t *testing.T) {
	hub := &recordingHub{leaveRooms: []string{"r1"}}
	presence := ws.NewPresence()
	h := newTestHandler(hub, new(mocks.MessageRepositoryMock), presence)
	sess := newTestSession("u1", "Ana")

	// The presence entry belongs to another live connection of the same user.
	presence.MarkOnline("u1", "Ana", "other-conn")

	h.disconnect(sess)

	assert.True(t, presence.IsOnline("u1"))
	captured := hub.captured()
	require.Len(t, captured, 1)
	assert.True(t, strings.Contains(captured[0], EventUserLeft))
	for _, payload := range captured {
		assert.False(t, strings.Contains(payload, EventUserStatusChanged),
			"no offline status while another connection keeps the user online")
	}
}

func TestDisconnectOwnerGoesOffline(t *testing.T) {
	hub := &recordingHub{leaveRooms: []string{"r1"}}
	presence := ws.NewPresence()
	h := newTestHandler(hub, new(mocks.MessageRepositoryMock), presence)
	sess := newTestSession("u1", "Ana")

	presence.MarkOnline("u1", "Ana", sess.client.Id)

	h.disconnect(sess)

	assert.False(t, presence.IsOnline("u1"))
	captured := hub.captured()
	require.Len(t, captured, 2)
	assert.True(t, strings.Contains(captured[0], EventUserLeft))
	assert.True(t, strings.Contains(captured[1], EventUserStatusChanged))
}
