package entity

import "time"

const (
	ScheduleStatusPending  = "pending"
	ScheduleStatusApproved = "approved"
	ScheduleStatusRejected = "rejected"
)

// Schedule is a couple's request for an officiant's time, awaiting approval.
type Schedule struct {
	Id               string     `bson:"_id" json:"id"`
	FromUserId       string     `bson:"fromUserId" json:"fromUserId"`
	FromUserName     string     `bson:"fromUserName" json:"fromUserName"`
	EventId          string     `bson:"eventId,omitempty" json:"eventId,omitempty"`
	EventName        string     `bson:"eventName,omitempty" json:"eventName,omitempty"`
	ScheduleDate     *time.Time `bson:"scheduleDate,omitempty" json:"scheduleDate,omitempty"`
	ScheduleDateTime string     `bson:"scheduleDateTime,omitempty" json:"scheduleDateTime,omitempty"`
	OfficiantId      string     `bson:"officiantId" json:"officiantId"`
	OfficiantName    string     `bson:"officiantName" json:"officiantName"`
	OfficiantImage   string     `bson:"officiantImage,omitempty" json:"officiantImage,omitempty"`
	Message          string     `bson:"message,omitempty" json:"message,omitempty"`
	PackageName      string     `bson:"packageName,omitempty" json:"packageName,omitempty"`
	ApprovedStatus   string     `bson:"approvedStatus" json:"approvedStatus"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt" json:"updatedAt"`
}
