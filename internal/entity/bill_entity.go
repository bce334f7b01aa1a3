package entity

import "time"

const (
	BillStatusPaid   = "paid"
	BillStatusUnpaid = "unpaid"
)

// Bill is a billing record for a booked ceremony. Actual payment collection
// happens with an external provider; only the resulting state lives here.
type Bill struct {
	Id            string     `bson:"_id" json:"id"`
	UserId        string     `bson:"userId" json:"userId"`
	UserName      string     `bson:"userName" json:"userName"`
	EventId       string     `bson:"eventId" json:"eventId"`
	EventName     string     `bson:"eventName" json:"eventName"`
	EventType     string     `bson:"eventType" json:"eventType"`
	EventDate     time.Time  `bson:"eventDate" json:"eventDate"`
	OfficiantId   string     `bson:"officiantId" json:"officiantId"`
	OfficiantName string     `bson:"officiantName" json:"officiantName"`
	Amount        float64    `bson:"amount" json:"amount"`
	Status        string     `bson:"status" json:"status"`
	IssuedAt      time.Time  `bson:"issuedAt" json:"issuedAt"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}
