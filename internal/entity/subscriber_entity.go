package entity

import "time"

// Subscriber is a newsletter signup collected from the public landing page.
// It is not tied to a registered account.
type Subscriber struct {
	Id          string    `bson:"_id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}
