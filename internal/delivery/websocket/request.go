package websocket

import (
	"encoding/json"

	"vowline/internal/entity"
)

// Envelope is the wire frame in both directions: an event name plus an
// event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type UserStatusRequest struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type JoinRoomRequest struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type LeaveRoomRequest struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type SendMessageRequest struct {
	RoomId     string           `json:"roomId"`
	Sender     string           `json:"sender"`
	SenderName string           `json:"senderName"`
	Type       string           `json:"type"`
	Content    string           `json:"content"`
	FileData   *entity.FileData `json:"fileData,omitempty"`
	ReplyTo    *entity.ReplyRef `json:"replyTo,omitempty"`
}

type TypingRequest struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	IsTyping bool   `json:"isTyping"`
}

type ReactionRequest struct {
	MessageId string `json:"messageId"`
	RoomId    string `json:"roomId"`
	Emoji     string `json:"emoji"`
	UserId    string `json:"userId"`
	UserName  string `json:"userName"`
}

type MarkAsReadRequest struct {
	RoomId     string   `json:"roomId"`
	MessageIds []string `json:"messageIds"`
	UserId     string   `json:"userId"`
	UserName   string   `json:"userName"`
}

type BookingProposalRequest struct {
	RoomId      string                 `json:"roomId"`
	BookingData entity.BookingProposal `json:"bookingData"`
	Message     string                 `json:"message"`
	Sender      string                 `json:"sender"`
	SenderName  string                 `json:"senderName"`
}

type BookingResponseRequest struct {
	RoomId    string `json:"roomId"`
	MessageId string `json:"messageId"`
	Response  string `json:"response"`
	UserId    string `json:"userId"`
	UserName  string `json:"userName"`
}

type RoomUsersRequest struct {
	RoomId string `json:"roomId"`
}
