package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	MessageTypeText            = "text"
	MessageTypeImage           = "image"
	MessageTypeFile            = "file"
	MessageTypeDocument        = "document"
	MessageTypeSystem          = "system"
	MessageTypeLink            = "link"
	MessageTypeBookingProposal = "booking_proposal"
)

const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

// ChatMessage is the one ordered log entry per room. Heterogeneous content is
// a tagged variant: Type selects which optional arm (FileData, Booking) is
// populated alongside the shared envelope.
type ChatMessage struct {
	Id         string           `bson:"_id" json:"id"`
	MessageId  string           `bson:"messageId" json:"messageId"`
	RoomId     string           `bson:"roomId" json:"roomId"`
	Sender     string           `bson:"sender" json:"sender"`
	SenderName string           `bson:"senderName" json:"senderName"`
	Type       string           `bson:"type" json:"type"`
	Content    string           `bson:"content" json:"content"`
	FileData   *FileData        `bson:"fileData,omitempty" json:"fileData,omitempty"`
	Booking    *BookingProposal `bson:"booking,omitempty" json:"booking,omitempty"`
	Status     string           `bson:"status" json:"status"`
	Reactions  []Reaction       `bson:"reactions" json:"reactions"`
	ReadBy     []ReadReceipt    `bson:"readBy" json:"readBy"`
	EditHistory []EditEntry     `bson:"editHistory,omitempty" json:"editHistory,omitempty"`
	IsEdited   bool             `bson:"isEdited" json:"isEdited"`
	IsDeleted  bool             `bson:"isDeleted" json:"isDeleted"`
	DeletedAt  *time.Time       `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	ReplyTo    *ReplyRef        `bson:"replyTo,omitempty" json:"replyTo,omitempty"`
	CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt" json:"updatedAt"`
}

type FileData struct {
	OriginalName string `bson:"originalName" json:"originalName"`
	Filename     string `bson:"filename" json:"filename"`
	FileUrl      string `bson:"fileUrl" json:"fileUrl"`
	FileSize     int64  `bson:"fileSize" json:"fileSize"`
	MimeType     string `bson:"mimeType" json:"mimeType"`
}

type Reaction struct {
	Emoji     string    `bson:"emoji" json:"emoji"`
	UserId    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	ReactedAt time.Time `bson:"reactedAt" json:"reactedAt"`
}

type ReadReceipt struct {
	UserId   string    `bson:"userId" json:"userId"`
	UserName string    `bson:"userName" json:"userName"`
	ReadAt   time.Time `bson:"readAt" json:"readAt"`
}

type EditEntry struct {
	PreviousContent string    `bson:"previousContent" json:"previousContent"`
	EditedAt        time.Time `bson:"editedAt" json:"editedAt"`
}

// ReplyRef snapshots the replied-to message for display, so deleting or
// editing the target does not break rendering.
type ReplyRef struct {
	MessageId  string `bson:"messageId" json:"messageId"`
	Content    string `bson:"content" json:"content"`
	SenderName string `bson:"senderName" json:"senderName"`
}

type MessagePage struct {
	Messages []ChatMessage `json:"messages"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
	HasMore  bool          `json:"hasMore"`
}

// NewMessageId generates the protocol-level message id clients address
// messages by, distinct from the storage id.
func NewMessageId() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("msg_%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("msg_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
