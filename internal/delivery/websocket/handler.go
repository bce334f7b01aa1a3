package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"vowline/infrastructure/cache"
	"vowline/infrastructure/ws"
	"vowline/internal/entity"
	"vowline/internal/observability"
	"vowline/internal/usecase"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler coordinates one chat session per websocket connection: presence,
// room membership, message relay and booking proposals. Each connection's
// events are processed by a single goroutine in arrival order.
type Handler struct {
	hub       ws.IHub
	presence  *ws.Presence
	chatUc    usecase.ChatUsecase
	messageUc usecase.MessageUsecase
	bookingUc usecase.BookingUsecase
	userUc    usecase.UserUsecase
	users     *cache.UserCache
}

func NewHandler(
	hub ws.IHub,
	presence *ws.Presence,
	chatUc usecase.ChatUsecase,
	messageUc usecase.MessageUsecase,
	bookingUc usecase.BookingUsecase,
	userUc usecase.UserUsecase,
	users *cache.UserCache,
) *Handler {
	return &Handler{
		hub:       hub,
		presence:  presence,
		chatUc:    chatUc,
		messageUc: messageUc,
		bookingUc: bookingUc,
		userUc:    userUc,
		users:     users,
	}
}

// session is the per-connection state. Identity arrives with the first
// userOnline or joinRoom event; until then the connection is anonymous.
type session struct {
	client   *ws.Client
	userId   string
	userName string
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	client := ws.NewClient(conn)
	sess := &session{client: client}

	observability.IncWSActive()
	defer observability.DecWSActive()

	go client.WritePump()
	client.ReadPump(func(data []byte) {
		h.dispatch(r.Context(), sess, data)
	})

	h.disconnect(sess)
}

func (h *Handler) dispatch(ctx context.Context, sess *session, data []byte) {
	var frame Envelope
	if err := json.Unmarshal(data, &frame); err != nil {
		log.Printf("unreadable frame (conn %s): %v", sess.client.Id, err)
		return
	}
	observability.IncWSEvent(frame.Event)

	switch frame.Event {
	case "userOnline":
		h.handleUserOnline(sess, frame.Data)
	case "userOffline":
		h.handleUserOffline(sess, frame.Data)
	case "joinRoom":
		h.handleJoinRoom(ctx, sess, frame.Data)
	case "leaveRoom":
		h.handleLeaveRoom(ctx, sess, frame.Data)
	case "sendMessage":
		h.handleSendMessage(ctx, sess, frame.Data)
	case "typing":
		h.handleTyping(sess, frame.Data)
	case "addReaction":
		h.handleAddReaction(ctx, sess, frame.Data)
	case "removeReaction":
		h.handleRemoveReaction(ctx, sess, frame.Data)
	case "markAsRead":
		h.handleMarkAsRead(ctx, sess, frame.Data)
	case "send_booking_proposal":
		h.handleBookingProposal(ctx, sess, frame.Data)
	case "booking_proposal_response":
		h.handleBookingResponse(ctx, sess, frame.Data)
	case "getRoomUsers":
		h.handleGetRoomUsers(sess, frame.Data)
	case "getOnlineUsers":
		h.handleGetOnlineUsers(sess)
	default:
		log.Printf("unknown event %q (conn %s)", frame.Event, sess.client.Id)
	}
}

// sendTo delivers an event to a single connection.
func (h *Handler) sendTo(sess *session, event string, data any) {
	payload := envelope(event, data)
	if payload == nil {
		return
	}
	if !sess.client.Send(payload) {
		observability.IncRelayDropped()
	}
}

func (h *Handler) handleUserOnline(sess *session, data json.RawMessage) {
	var req UserStatusRequest
	if err := json.Unmarshal(data, &req); err != nil || req.UserId == "" {
		return
	}

	sess.userId = req.UserId
	sess.userName = h.displayName(context.Background(), req.UserId, req.UserName)
	h.presence.MarkOnline(req.UserId, sess.userName, sess.client.Id)

	h.broadcastStatus(req.UserId, sess.userName, true, "")
}

func (h *Handler) handleUserOffline(sess *session, data json.RawMessage) {
	var req UserStatusRequest
	if err := json.Unmarshal(data, &req); err != nil || req.UserId == "" {
		return
	}

	entry, ok := h.presence.MarkOffline(req.UserId)
	if !ok {
		return
	}
	h.broadcastStatus(req.UserId, entry.UserName, false, "")
}

func (h *Handler) handleJoinRoom(ctx context.Context, sess *session, data json.RawMessage) {
	var req JoinRoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomId == "" || req.UserId == "" {
		h.sendTo(sess, EventJoinError, ErrorResponse{Error: "roomId and userId are required"})
		return
	}

	sess.userId = req.UserId
	sess.userName = h.displayName(ctx, req.UserId, req.UserName)

	h.hub.Join(req.RoomId, sess.client, req.UserId, sess.userName)

	// Durable membership follows live membership. A storage failure is
	// reported to the joiner but does not undo the live join; the connection
	// can still relay transiently.
	_, err := h.chatUc.JoinRoom(ctx, req.RoomId, req.UserId, sess.userName, "")
	if err != nil {
		log.Printf("join room %s for %s: %v", req.RoomId, req.UserId, err)
		h.sendTo(sess, EventJoinError, ErrorResponse{Error: "failed to join room"})
	}

	messages, err := h.chatUc.RecentMessages(ctx, req.RoomId)
	if err != nil {
		log.Printf("replay room %s: %v", req.RoomId, err)
	} else if len(messages) > 0 {
		h.sendTo(sess, EventLoadExistingMessages, LoadExistingMessages{
			RoomId:   req.RoomId,
			Messages: messages,
		})
	}

	h.broadcastExcept(req.RoomId, sess.client.Id, EventUserJoined, UserJoined{
		RoomId:   req.RoomId,
		UserId:   req.UserId,
		UserName: sess.userName,
	})

	members := h.hub.Members(req.RoomId)
	h.sendTo(sess, EventRoomUsers, RoomUsers{RoomId: req.RoomId, Users: members})

	// Tell the joiner which of the other members are online right now.
	for _, member := range members {
		if member.UserId == req.UserId {
			continue
		}
		if entry, ok := h.presence.Get(member.UserId); ok {
			h.sendTo(sess, EventUserStatusChanged, UserStatusChanged{
				UserId:   entry.UserId,
				UserName: entry.UserName,
				IsOnline: true,
				LastSeen: entry.LastSeen,
			})
		}
	}

	if entry, ok := h.presence.Get(req.UserId); ok {
		h.broadcastExcept(req.RoomId, sess.client.Id, EventUserStatusChanged, UserStatusChanged{
			UserId:   entry.UserId,
			UserName: entry.UserName,
			IsOnline: true,
			LastSeen: entry.LastSeen,
		})
	}
}

func (h *Handler) handleLeaveRoom(ctx context.Context, sess *session, data json.RawMessage) {
	var req LeaveRoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomId == "" {
		return
	}

	h.hub.Leave(req.RoomId, sess.client.Id)

	if req.UserId != "" {
		_, err := h.chatUc.LeaveRoom(ctx, req.RoomId, req.UserId)
		if err != nil {
			log.Printf("leave room %s for %s: %v", req.RoomId, req.UserId, err)
		}
	}

	h.broadcast(req.RoomId, EventUserLeft, UserLeft{
		RoomId:   req.RoomId,
		UserId:   req.UserId,
		UserName: h.displayName(ctx, req.UserId, req.UserName),
	})
}

// handleSendMessage persists first, then relays to the other members and
// echoes a confirmation to the sender. On a storage failure the message is
// still relayed transiently and the sender gets a messageError: delivery is
// preferred over durability here, so stored and delivered can diverge. A
// rejected message is a different case: it is reported to the sender only and
// never reaches the room.
func (h *Handler) handleSendMessage(ctx context.Context, sess *session, data json.RawMessage) {
	var req SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: "invalid message payload"})
		return
	}

	message := entity.ChatMessage{
		RoomId:     req.RoomId,
		Sender:     req.Sender,
		SenderName: req.SenderName,
		Type:       req.Type,
		Content:    req.Content,
		FileData:   req.FileData,
		ReplyTo:    req.ReplyTo,
	}

	stored, err := h.messageUc.Send(ctx, message)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingMessageFields) || errors.Is(err, usecase.ErrProposalViaSend) {
			h.sendTo(sess, EventMessageError, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("store message for room %s: %v", req.RoomId, err)

		message.MessageId = entity.NewMessageId()
		now := time.Now()
		message.CreatedAt = now
		message.UpdatedAt = now
		if message.Type == "" {
			message.Type = entity.MessageTypeText
		}
		message.Status = entity.MessageStatusSent

		h.broadcastExcept(req.RoomId, sess.client.Id, EventReceiveMessage, message)
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: "message delivered but not stored"})
		return
	}

	observability.IncMessageStored()
	h.broadcastExcept(req.RoomId, sess.client.Id, EventReceiveMessage, stored)
	h.sendTo(sess, EventMessageConfirmed, stored)
}

func (h *Handler) handleTyping(sess *session, data json.RawMessage) {
	var req TypingRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomId == "" {
		return
	}

	h.broadcastExcept(req.RoomId, sess.client.Id, EventUserTyping, UserTyping{
		RoomId:   req.RoomId,
		UserId:   req.UserId,
		UserName: req.UserName,
		IsTyping: req.IsTyping,
	})
}

func (h *Handler) handleAddReaction(ctx context.Context, sess *session, data json.RawMessage) {
	var req ReactionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: "invalid reaction payload"})
		return
	}

	updated, err := h.messageUc.AddReaction(ctx, req.MessageId, req.Emoji, req.UserId, req.UserName)
	if err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(req.RoomId, EventMessageReaction, updated)
}

func (h *Handler) handleRemoveReaction(ctx context.Context, sess *session, data json.RawMessage) {
	var req ReactionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: "invalid reaction payload"})
		return
	}

	updated, err := h.messageUc.RemoveReaction(ctx, req.MessageId, req.Emoji, req.UserId)
	if err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(req.RoomId, EventMessageReaction, updated)
}

func (h *Handler) handleMarkAsRead(ctx context.Context, sess *session, data json.RawMessage) {
	var req MarkAsReadRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: "invalid markAsRead payload"})
		return
	}

	err := h.messageUc.MarkRead(ctx, req.MessageIds, req.UserId, req.UserName)
	if err != nil {
		h.sendTo(sess, EventMessageError, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.chatUc.TouchSeen(ctx, req.RoomId, req.UserId); err != nil {
		log.Printf("touch lastSeen for %s in %s: %v", req.UserId, req.RoomId, err)
	}

	h.broadcast(req.RoomId, EventMessagesRead, MessagesRead{
		RoomId:     req.RoomId,
		MessageIds: req.MessageIds,
		UserId:     req.UserId,
		UserName:   req.UserName,
	})
}

// handleBookingProposal persists the proposal message and announces it to the
// whole room, sender included, so every participant renders the same pending
// card exactly once.
func (h *Handler) handleBookingProposal(ctx context.Context, sess *session, data json.RawMessage) {
	var req BookingProposalRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventBookingError, ErrorResponse{Error: "invalid proposal payload"})
		return
	}

	sender := req.Sender
	senderName := req.SenderName
	if sender == "" {
		sender = sess.userId
		senderName = sess.userName
	}

	stored, err := h.bookingUc.CreateProposal(ctx, req.RoomId, sender, senderName, req.Message, req.BookingData)
	if err != nil {
		h.sendTo(sess, EventBookingError, ErrorResponse{Error: err.Error()})
		return
	}

	observability.IncMessageStored()
	h.broadcast(req.RoomId, EventBookingReceived, stored)
}

func (h *Handler) handleBookingResponse(ctx context.Context, sess *session, data json.RawMessage) {
	var req BookingResponseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendTo(sess, EventBookingError, ErrorResponse{Error: "invalid response payload"})
		return
	}

	responderId := req.UserId
	responderName := req.UserName
	if responderId == "" {
		responderId = sess.userId
		responderName = sess.userName
	}

	updated, err := h.bookingUc.Respond(ctx, req.MessageId, req.Response, responderId, responderName)
	if err != nil {
		h.sendTo(sess, EventBookingError, ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(req.RoomId, EventBookingResponseReceived, updated)
}

func (h *Handler) handleGetRoomUsers(sess *session, data json.RawMessage) {
	var req RoomUsersRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomId == "" {
		return
	}
	h.sendTo(sess, EventRoomUsers, RoomUsers{
		RoomId: req.RoomId,
		Users:  h.hub.Members(req.RoomId),
	})
}

func (h *Handler) handleGetOnlineUsers(sess *session) {
	h.sendTo(sess, EventOnlineUsersList, OnlineUsersList{
		OnlineUsers: h.presence.ListOnline(),
	})
}

// disconnect runs when the read pump returns: the connection leaves every
// room it joined, drops out of presence if it owns the entry, and the
// affected rooms learn about it.
func (h *Handler) disconnect(sess *session) {
	rooms := h.hub.LeaveAll(sess.client.Id)
	sess.client.Close()

	if sess.userId == "" {
		for _, roomId := range rooms {
			h.broadcast(roomId, EventUserLeft, UserLeft{RoomId: roomId})
		}
		return
	}

	// Only the connection registered in presence may take the user offline.
	// Another live connection keeps the user online, so no offline status is
	// announced for it either.
	wentOffline := false
	lastSeen := time.Now()
	if entry, ok := h.presence.Get(sess.userId); ok && entry.ConnId == sess.client.Id {
		if gone, ok := h.presence.MarkOffline(sess.userId); ok {
			wentOffline = true
			lastSeen = gone.LastSeen
		}
	}

	for _, roomId := range rooms {
		h.broadcast(roomId, EventUserLeft, UserLeft{
			RoomId:   roomId,
			UserId:   sess.userId,
			UserName: sess.userName,
		})
		if wentOffline {
			h.broadcast(roomId, EventUserStatusChanged, UserStatusChanged{
				UserId:   sess.userId,
				UserName: sess.userName,
				IsOnline: false,
				LastSeen: lastSeen,
			})
		}
	}
}

// broadcastStatus fans a presence change out to every room the user is a live
// member of. An optional exceptConnId skips the originating connection.
func (h *Handler) broadcastStatus(userId, userName string, isOnline bool, exceptConnId string) {
	status := UserStatusChanged{
		UserId:   userId,
		UserName: userName,
		IsOnline: isOnline,
		LastSeen: time.Now(),
	}
	for _, roomId := range h.hub.RoomsOfUser(userId) {
		if exceptConnId != "" {
			h.broadcastExcept(roomId, exceptConnId, EventUserStatusChanged, status)
		} else {
			h.broadcast(roomId, EventUserStatusChanged, status)
		}
	}
}

func (h *Handler) broadcast(roomId, event string, data any) {
	payload := envelope(event, data)
	if payload == nil {
		return
	}
	h.hub.BroadcastToRoom(roomId, payload)
}

func (h *Handler) broadcastExcept(roomId, exceptConnId, event string, data any) {
	payload := envelope(event, data)
	if payload == nil {
		return
	}
	h.hub.BroadcastToRoomExcept(roomId, exceptConnId, payload)
}

// displayName resolves a user's display name, preferring what the client
// sent, then the cache, then storage.
func (h *Handler) displayName(ctx context.Context, userId, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if user, ok := h.users.Get(userId); ok {
		return user.Name
	}
	user, err := h.userUc.Get(ctx, userId)
	if err != nil {
		return userId
	}
	h.users.Put(user)
	return user.Name
}
