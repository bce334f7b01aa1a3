package websocket

import (
	"encoding/json"
	"log"
	"time"

	"vowline/infrastructure/ws"
	"vowline/internal/entity"
)

// Server-to-client event names.
const (
	EventReceiveMessage          = "receiveMessage"
	EventMessageConfirmed        = "messageConfirmed"
	EventMessageError            = "messageError"
	EventUserJoined              = "userJoined"
	EventUserLeft                = "userLeft"
	EventUserStatusChanged       = "userStatusChanged"
	EventRoomUsers               = "roomUsers"
	EventOnlineUsersList         = "onlineUsersList"
	EventUserTyping              = "userTyping"
	EventMessageReaction         = "messageReaction"
	EventMessagesRead            = "messagesRead"
	EventLoadExistingMessages    = "loadExistingMessages"
	EventJoinError               = "joinError"
	EventBookingReceived         = "booking_proposal_received"
	EventBookingResponseReceived = "booking_proposal_response_received"
	EventBookingError            = "booking_proposal_error"
)

type UserStatusChanged struct {
	UserId   string    `json:"userId"`
	UserName string    `json:"userName"`
	IsOnline bool      `json:"isOnline"`
	LastSeen time.Time `json:"lastSeen"`
}

type RoomUsers struct {
	RoomId string      `json:"roomId"`
	Users  []ws.Member `json:"users"`
}

type OnlineUsersList struct {
	OnlineUsers []ws.PresenceEntry `json:"onlineUsers"`
}

type UserJoined struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type UserLeft struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type UserTyping struct {
	RoomId   string `json:"roomId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	IsTyping bool   `json:"isTyping"`
}

type MessagesRead struct {
	RoomId     string   `json:"roomId"`
	MessageIds []string `json:"messageIds"`
	UserId     string   `json:"userId"`
	UserName   string   `json:"userName"`
}

type LoadExistingMessages struct {
	RoomId   string               `json:"roomId"`
	Messages []entity.ChatMessage `json:"messages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// BroadcastEvent fans one event out to a room on behalf of callers outside
// the websocket loop, e.g. REST handlers mirroring realtime operations.
func BroadcastEvent(hub ws.IHub, roomId, event string, data any) {
	payload := envelope(event, data)
	if payload == nil {
		return
	}
	hub.BroadcastToRoom(roomId, payload)
}

// envelope marshals an event frame. Marshal failures are programming errors;
// they are logged and yield nil, which Send treats as a no-op.
func envelope(event string, data any) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("marshal %s payload: %v", event, err)
		return nil
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		log.Printf("marshal %s envelope: %v", event, err)
		return nil
	}
	return frame
}
