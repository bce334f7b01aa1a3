package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vowline/infrastructure/ws"
	"vowline/internal/entity"
	"vowline/internal/mocks"
	"vowline/internal/repository"
	"vowline/internal/usecase"
)

func setupChatRouter(messageRepo *mocks.MessageRepositoryMock, roomRepo *mocks.RoomRepositoryMock) *chi.Mux {
	chatUc := usecase.NewChatUsecase(roomRepo, messageRepo)
	messageUc := usecase.NewMessageUsecase(messageRepo)
	bookingUc := usecase.NewBookingUsecase(messageRepo)
	handler := NewChatHandler(chatUc, messageUc, bookingUc, nil, nil, ws.NewHub())

	r := chi.NewRouter()
	r.Post("/api/chat/messages", handler.SaveMessage)
	r.Get("/api/chat/rooms/{roomId}/messages", handler.GetMessages)
	r.Post("/api/chat/rooms/{roomId}/booking-proposal", handler.CreateBookingProposal)
	r.Post("/api/chat/messages/{messageId}/booking-response", handler.RespondBookingProposal)
	r.Put("/api/chat/messages/{messageId}", handler.EditMessage)
	return r
}

func TestGetMessagesPage(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	older := entity.ChatMessage{MessageId: "msg-1", RoomId: "room-1", CreatedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	newer := entity.ChatMessage{MessageId: "msg-2", RoomId: "room-1", CreatedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)}
	messageRepo.On("GetByRoom", mock.Anything, "room-1", 1, 2).Return([]entity.ChatMessage{newer, older}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/chat/rooms/room-1/messages?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data entity.MessagePage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data.Messages, 2)
	assert.Equal(t, "msg-1", resp.Data.Messages[0].MessageId)
	assert.True(t, resp.Data.HasMore)
	messageRepo.AssertExpectations(t)
}

func TestSaveMessageForcesProposalPending(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(msg entity.ChatMessage) bool {
		return msg.Type == entity.MessageTypeBookingProposal &&
			msg.Booking != nil &&
			msg.Booking.Status == entity.ProposalStatusPending &&
			msg.Booking.RespondedBy == "" &&
			msg.Booking.RespondedAt == nil
	})).Return(entity.ChatMessage{Id: "m1", RoomId: "room-1"}, nil).Once()

	// The body claims the proposal is already accepted by the sender.
	body := bytes.NewBufferString(`{
		"roomId": "room-1",
		"sender": "off-1",
		"senderName": "Pastor Dave",
		"type": "booking_proposal",
		"content": "offer",
		"booking": {"title": "Garden Ceremony", "price": 1200, "status": "accepted", "respondedBy": "off-1"}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestSaveMessageProposalTypeWithoutPayload(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	body := bytes.NewBufferString(`{"roomId":"room-1","sender":"off-1","senderName":"Pastor Dave","type":"booking_proposal","content":"offer"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingProposalMissingSender(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	body := bytes.NewBufferString(`{"bookingData":{"title":"Beach Wedding"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat/rooms/room-1/booking-proposal", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRespondBookingProposal(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	resolved := entity.ChatMessage{
		Id:      "m1",
		RoomId:  "room-1",
		Booking: &entity.BookingProposal{Status: entity.ProposalStatusAccepted, RespondedBy: "couple-1"},
	}
	messageRepo.On("UpdateBookingStatus", mock.Anything, "m1", entity.ProposalStatusAccepted, "couple-1", "Ana", mock.Anything).
		Return(resolved, nil).Once()

	body := bytes.NewBufferString(`{"roomId":"room-1","response":"accept","userId":"couple-1","userName":"Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages/m1/booking-response", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestRespondBookingProposalTwiceConflicts(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	messageRepo.On("UpdateBookingStatus", mock.Anything, "m1", entity.ProposalStatusDeclined, "couple-2", "Ben", mock.Anything).
		Return(entity.ChatMessage{}, repository.ErrProposalAlreadyResolved).Once()

	body := bytes.NewBufferString(`{"roomId":"room-1","response":"decline","userId":"couple-2","userName":"Ben"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages/m1/booking-response", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestEditMessageByNonSenderForbidden(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	messageRepo.On("Get", mock.Anything, "m1").Return(entity.ChatMessage{Id: "m1", Sender: "u1"}, nil).Once()

	body := bytes.NewBufferString(`{"userId":"u2","content":"changed"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/chat/messages/m1", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestGetMessagesNotFoundRoom(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	router := setupChatRouter(messageRepo, new(mocks.RoomRepositoryMock))

	messageRepo.On("GetByRoom", mock.Anything, "missing", 1, 50).Return(([]entity.ChatMessage)(nil), repository.ErrRoomNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/chat/rooms/missing/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	messageRepo.AssertExpectations(t)
}
