package entity

import "time"

type Review struct {
	Id                string    `bson:"_id" json:"id"`
	UserId            string    `bson:"userId" json:"userId"`
	UserName          string    `bson:"userName" json:"userName"`
	UserImageUrl      string    `bson:"userImageUrl,omitempty" json:"userImageUrl,omitempty"`
	OfficiantId       string    `bson:"officiantId" json:"officiantId"`
	EventId           string    `bson:"eventId" json:"eventId"`
	EventName         string    `bson:"eventName" json:"eventName"`
	Rating            int       `bson:"rating" json:"rating"`
	RatingDescription string    `bson:"ratingDescription,omitempty" json:"ratingDescription,omitempty"`
	IsVisible         bool      `bson:"isVisible" json:"isVisible"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}
