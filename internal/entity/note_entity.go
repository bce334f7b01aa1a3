package entity

import "time"

// Note is a short message left for another account outside of chat, e.g. an
// officiant's preparation note for a couple.
type Note struct {
	Id           string    `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Message      string    `bson:"message" json:"message"`
	FromUserId   string    `bson:"fromUserId" json:"fromUserId"`
	FromUserName string    `bson:"fromUserName" json:"fromUserName"`
	ToUserId     string    `bson:"toUserId" json:"toUserId"`
	RelatedTo    string    `bson:"relatedTo,omitempty" json:"relatedTo,omitempty"`
	IsRead       bool      `bson:"isRead" json:"isRead"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
