package entity

import "time"

const (
	RoomTypePrivate = "private"
	RoomTypeGroup   = "group"
	RoomTypePublic  = "public"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

type ChatRoom struct {
	Id           string        `bson:"_id" json:"id"`
	RoomId       string        `bson:"roomId" json:"roomId"`
	Name         string        `bson:"name,omitempty" json:"name,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Type         string        `bson:"type" json:"type"`
	Participants []Participant `bson:"participants" json:"participants"`
	Settings     RoomSettings  `bson:"settings" json:"settings"`
	Metadata     RoomMetadata  `bson:"metadata" json:"metadata"`
	IsArchived   bool          `bson:"isArchived" json:"isArchived"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Participant is the durable membership record embedded in a room. It is
// distinct from live connection state, which the ws hub tracks in memory.
type Participant struct {
	UserId     string     `bson:"userId" json:"userId"`
	UserName   string     `bson:"userName" json:"userName"`
	Role       string     `bson:"role" json:"role"`
	JoinedAt   time.Time  `bson:"joinedAt" json:"joinedAt"`
	LastSeenAt *time.Time `bson:"lastSeenAt,omitempty" json:"lastSeenAt,omitempty"`
	IsActive   bool       `bson:"isActive" json:"isActive"`
}

type RoomSettings struct {
	AllowFileUpload  bool     `bson:"allowFileUpload" json:"allowFileUpload"`
	MaxFileSize      int64    `bson:"maxFileSize" json:"maxFileSize"`
	AllowedFileTypes []string `bson:"allowedFileTypes,omitempty" json:"allowedFileTypes,omitempty"`
	IsPublic         bool     `bson:"isPublic" json:"isPublic"`
	RequireApproval  bool     `bson:"requireApproval" json:"requireApproval"`
}

type RoomMetadata struct {
	TotalMessages int64        `bson:"totalMessages" json:"totalMessages"`
	LastMessage   *LastMessage `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	CreatedBy     *CreatedBy   `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

type LastMessage struct {
	Content    string    `bson:"content" json:"content"`
	SenderName string    `bson:"senderName" json:"senderName"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type CreatedBy struct {
	UserId   string `bson:"userId" json:"userId"`
	UserName string `bson:"userName" json:"userName"`
}

// DefaultRoomSettings is what new rooms get when the creator does not supply
// any settings.
func DefaultRoomSettings() RoomSettings {
	return RoomSettings{
		AllowFileUpload: true,
		MaxFileSize:     50 * 1024 * 1024,
	}
}

// RoomMember is the live-membership view returned to clients: who is joined
// through an open connection right now.
type RoomMember struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}
