package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"vowline/infrastructure/storage"
	"vowline/infrastructure/ws"
	wsDelivery "vowline/internal/delivery/websocket"
	"vowline/internal/entity"
	"vowline/internal/usecase"

	"github.com/go-chi/chi/v5"
)

const maxUploadSize = 50 * 1024 * 1024

// ChatHandler is the REST mirror of the realtime chat operations. Both paths
// run against the same usecases, so they produce identical persisted state;
// mutations made here are relayed to connected room members through the hub.
type ChatHandler struct {
	chatUc    usecase.ChatUsecase
	messageUc usecase.MessageUsecase
	bookingUc usecase.BookingUsecase
	userUc    usecase.UserUsecase
	fileStore storage.FileStore
	hub       ws.IHub
}

func NewChatHandler(
	chatUc usecase.ChatUsecase,
	messageUc usecase.MessageUsecase,
	bookingUc usecase.BookingUsecase,
	userUc usecase.UserUsecase,
	fileStore storage.FileStore,
	hub ws.IHub,
) *ChatHandler {
	return &ChatHandler{
		chatUc:    chatUc,
		messageUc: messageUc,
		bookingUc: bookingUc,
		userUc:    userUc,
		fileStore: fileStore,
		hub:       hub,
	}
}

// POST /api/chat/rooms
func (h *ChatHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room entity.ChatRoom
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.chatUc.CreateRoom(r.Context(), room)
	if err != nil {
		log.Printf("Create room error: %v", err)
		respondError(w, statusFromError(err), "failed to create room")
		return
	}

	respond(w, http.StatusCreated, Response{Message: "success", Data: created})
}

// GET /api/chat/rooms/{roomId}
func (h *ChatHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomId := chi.URLParam(r, "roomId")

	room, err := h.chatUc.GetRoom(r.Context(), roomId)
	if err != nil {
		log.Printf("Get room error: %v", err)
		respondError(w, statusFromError(err), "room not found")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: room})
}

// POST /api/chat/rooms/{roomId}/join
func (h *ChatHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	roomId := chi.URLParam(r, "roomId")

	var req struct {
		UserId   string `json:"userId"`
		UserName string `json:"userName"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.chatUc.JoinRoom(r.Context(), roomId, req.UserId, req.UserName, req.Role)
	if err != nil {
		log.Printf("Join room error: %v", err)
		respondError(w, statusFromError(err), "failed to join room")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: room})
}

// POST /api/chat/rooms/{roomId}/leave
func (h *ChatHandler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	roomId := chi.URLParam(r, "roomId")

	var req struct {
		UserId string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.chatUc.LeaveRoom(r.Context(), roomId, req.UserId)
	if err != nil {
		log.Printf("Leave room error: %v", err)
		respondError(w, statusFromError(err), "failed to leave room")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: room})
}

// GET /api/chat/users/{userId}/rooms
func (h *ChatHandler) ListUserRooms(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "userId")

	rooms, err := h.chatUc.ListUserRooms(r.Context(), userId)
	if err != nil {
		log.Printf("List user rooms error: %v", err)
		respondError(w, statusFromError(err), "failed to list rooms")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: rooms})
}

// GET /api/chat/rooms/{roomId}/messages?page=1&limit=50
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomId := chi.URLParam(r, "roomId")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.chatUc.PageMessages(r.Context(), roomId, page, limit)
	if err != nil {
		log.Printf("Get messages error: %v", err)
		respondError(w, statusFromError(err), "failed to load messages")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: result})
}

// POST /api/chat/messages
func (h *ChatHandler) SaveMessage(w http.ResponseWriter, r *http.Request) {
	var message entity.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Booking payloads take the proposal flow so the stored proposal starts
	// pending no matter what the body claims, same as the realtime path.
	if message.Type == entity.MessageTypeBookingProposal || message.Booking != nil {
		if message.Booking == nil {
			respondError(w, http.StatusBadRequest, "booking proposal payload is required")
			return
		}

		stored, err := h.bookingUc.CreateProposal(r.Context(), message.RoomId, message.Sender, message.SenderName, message.Content, *message.Booking)
		if err != nil {
			log.Printf("Save booking proposal error: %v", err)
			respondError(w, statusFromError(err), "failed to save booking proposal")
			return
		}

		wsDelivery.BroadcastEvent(h.hub, stored.RoomId, wsDelivery.EventBookingReceived, stored)
		respond(w, http.StatusCreated, Response{Message: "success", Data: stored})
		return
	}

	stored, err := h.messageUc.Send(r.Context(), message)
	if err != nil {
		log.Printf("Save message error: %v", err)
		respondError(w, statusFromError(err), "failed to save message")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, stored.RoomId, wsDelivery.EventReceiveMessage, stored)
	respond(w, http.StatusCreated, Response{Message: "success", Data: stored})
}

// POST /api/chat/messages/mark-read
func (h *ChatHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomId     string   `json:"roomId"`
		MessageIds []string `json:"messageIds"`
		UserId     string   `json:"userId"`
		UserName   string   `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.messageUc.MarkRead(r.Context(), req.MessageIds, req.UserId, req.UserName)
	if err != nil {
		log.Printf("Mark as read error: %v", err)
		respondError(w, statusFromError(err), "failed to mark messages read")
		return
	}

	if err := h.chatUc.TouchSeen(r.Context(), req.RoomId, req.UserId); err != nil {
		log.Printf("Touch lastSeen error: %v", err)
	}

	wsDelivery.BroadcastEvent(h.hub, req.RoomId, wsDelivery.EventMessagesRead, wsDelivery.MessagesRead{
		RoomId:     req.RoomId,
		MessageIds: req.MessageIds,
		UserId:     req.UserId,
		UserName:   req.UserName,
	})
	respond(w, http.StatusOK, Response{Message: "success"})
}

// POST /api/chat/messages/{messageId}/reactions
func (h *ChatHandler) AddReaction(w http.ResponseWriter, r *http.Request) {
	messageId := chi.URLParam(r, "messageId")

	var req struct {
		RoomId   string `json:"roomId"`
		Emoji    string `json:"emoji"`
		UserId   string `json:"userId"`
		UserName string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.messageUc.AddReaction(r.Context(), messageId, req.Emoji, req.UserId, req.UserName)
	if err != nil {
		log.Printf("Add reaction error: %v", err)
		respondError(w, statusFromError(err), "failed to add reaction")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, updated.RoomId, wsDelivery.EventMessageReaction, updated)
	respond(w, http.StatusOK, Response{Message: "success", Data: updated})
}

// DELETE /api/chat/messages/{messageId}/reactions
func (h *ChatHandler) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	messageId := chi.URLParam(r, "messageId")

	var req struct {
		RoomId string `json:"roomId"`
		Emoji  string `json:"emoji"`
		UserId string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.messageUc.RemoveReaction(r.Context(), messageId, req.Emoji, req.UserId)
	if err != nil {
		log.Printf("Remove reaction error: %v", err)
		respondError(w, statusFromError(err), "failed to remove reaction")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, updated.RoomId, wsDelivery.EventMessageReaction, updated)
	respond(w, http.StatusOK, Response{Message: "success", Data: updated})
}

// PUT /api/chat/messages/{messageId}
func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	messageId := chi.URLParam(r, "messageId")

	var req struct {
		UserId  string `json:"userId"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.messageUc.Edit(r.Context(), messageId, req.UserId, req.Content)
	if err != nil {
		log.Printf("Edit message error: %v", err)
		respondError(w, statusFromError(err), "failed to edit message")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, updated.RoomId, wsDelivery.EventReceiveMessage, updated)
	respond(w, http.StatusOK, Response{Message: "success", Data: updated})
}

// DELETE /api/chat/messages/{messageId}
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageId := chi.URLParam(r, "messageId")

	var req struct {
		UserId string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.messageUc.Delete(r.Context(), messageId, req.UserId)
	if err != nil {
		log.Printf("Delete message error: %v", err)
		respondError(w, statusFromError(err), "failed to delete message")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}

// POST /api/chat/rooms/{roomId}/booking-proposal
func (h *ChatHandler) CreateBookingProposal(w http.ResponseWriter, r *http.Request) {
	roomId := chi.URLParam(r, "roomId")

	var req struct {
		Sender      string                 `json:"sender"`
		SenderName  string                 `json:"senderName"`
		Message     string                 `json:"message"`
		BookingData entity.BookingProposal `json:"bookingData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.bookingUc.CreateProposal(r.Context(), roomId, req.Sender, req.SenderName, req.Message, req.BookingData)
	if err != nil {
		log.Printf("Create booking proposal error: %v", err)
		respondError(w, statusFromError(err), "failed to create booking proposal")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, roomId, wsDelivery.EventBookingReceived, stored)
	respond(w, http.StatusCreated, Response{Message: "success", Data: stored})
}

// POST /api/chat/messages/{messageId}/booking-response
func (h *ChatHandler) RespondBookingProposal(w http.ResponseWriter, r *http.Request) {
	messageId := chi.URLParam(r, "messageId")

	var req struct {
		RoomId   string `json:"roomId"`
		Response string `json:"response"`
		UserId   string `json:"userId"`
		UserName string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.bookingUc.Respond(r.Context(), messageId, req.Response, req.UserId, req.UserName)
	if err != nil {
		log.Printf("Respond booking proposal error: %v", err)
		respondError(w, statusFromError(err), "failed to respond to booking proposal")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, updated.RoomId, wsDelivery.EventBookingResponseReceived, updated)
	respond(w, http.StatusOK, Response{Message: "success", Data: updated})
}

// POST /api/chat/upload  (multipart: file, roomId, sender, senderName, content?)
func (h *ChatHandler) UploadChatFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	fileData, err := h.fileStore.Save(r.Context(), file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Upload file error: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	roomId := r.FormValue("roomId")
	if roomId == "" {
		// Bare upload, no message attached to it.
		respond(w, http.StatusCreated, Response{Message: "success", Data: fileData})
		return
	}

	messageType := entity.MessageTypeFile
	if strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		messageType = entity.MessageTypeImage
	}

	stored, err := h.messageUc.Send(r.Context(), entity.ChatMessage{
		RoomId:     roomId,
		Sender:     r.FormValue("sender"),
		SenderName: r.FormValue("senderName"),
		Type:       messageType,
		Content:    r.FormValue("content"),
		FileData:   &fileData,
	})
	if err != nil {
		log.Printf("Save file message error: %v", err)
		respondError(w, statusFromError(err), "file stored but message failed")
		return
	}

	wsDelivery.BroadcastEvent(h.hub, roomId, wsDelivery.EventReceiveMessage, stored)
	respond(w, http.StatusCreated, Response{Message: "success", Data: stored})
}

// DELETE /api/chat/files/{filename}
func (h *ChatHandler) DeleteChatFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	if err := h.fileStore.Delete(r.Context(), filename); err != nil {
		log.Printf("Delete file error: %v", err)
		respondError(w, http.StatusNotFound, "file not found")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}

// GET /api/chat/officiants
func (h *ChatHandler) ListOfficiants(w http.ResponseWriter, r *http.Request) {
	officiants, err := h.userUc.ListOfficiants(r.Context())
	if err != nil {
		log.Printf("List officiants error: %v", err)
		respondError(w, statusFromError(err), "failed to list officiants")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: officiants})
}

// GET /api/users/{id}
func (h *ChatHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "id")

	user, err := h.userUc.Get(r.Context(), userId)
	if err != nil {
		log.Printf("Get user error: %v", err)
		respondError(w, statusFromError(err), "user not found")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success", Data: user})
}

// PUT /api/users/{id}
func (h *ChatHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "id")

	var user entity.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user.Id = userId

	if err := h.userUc.Update(r.Context(), user); err != nil {
		log.Printf("Update user error: %v", err)
		respondError(w, statusFromError(err), "failed to update user")
		return
	}

	respond(w, http.StatusOK, Response{Message: "success"})
}
