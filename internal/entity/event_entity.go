package entity

import "time"

const (
	EventStatusPlanned   = "planned"
	EventStatusSubmitted = "submitted"
	EventStatusApproved  = "approved"
	EventStatusCompleted = "completed"
	EventStatusCanceled  = "canceled"
)

// Event is a couple's ceremony plan, optionally assigned to an officiant.
type Event struct {
	Id                 string     `bson:"_id" json:"id"`
	Title              string     `bson:"title" json:"title"`
	Description        string     `bson:"description" json:"description"`
	CeremonyType       string     `bson:"ceremonyType" json:"ceremonyType"`
	VowsType           string     `bson:"vowsType,omitempty" json:"vowsType,omitempty"`
	Language           string     `bson:"language,omitempty" json:"language,omitempty"`
	VowDescription     string     `bson:"vowDescription,omitempty" json:"vowDescription,omitempty"`
	Rituals            string     `bson:"rituals,omitempty" json:"rituals,omitempty"`
	RitualsDescription string     `bson:"ritualsDescription,omitempty" json:"ritualsDescription,omitempty"`
	MusicCues          string     `bson:"musicCues,omitempty" json:"musicCues,omitempty"`
	EventDate          *time.Time `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	RehearsalDate      *time.Time `bson:"rehearsalDate,omitempty" json:"rehearsalDate,omitempty"`
	Location           string     `bson:"location,omitempty" json:"location,omitempty"`
	UserId             string     `bson:"userId" json:"userId"`
	OfficiantId        string     `bson:"officiantId,omitempty" json:"officiantId,omitempty"`
	OfficiantName      string     `bson:"officiantName,omitempty" json:"officiantName,omitempty"`
	Status             string     `bson:"status" json:"status"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}
