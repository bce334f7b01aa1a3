package entity

import "time"

type Notification struct {
	Id        string    `bson:"_id" json:"id"`
	UserId    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
