package entity

import (
	"fmt"
	"time"
)

const (
	ProposalStatusPending  = "pending"
	ProposalStatusAccepted = "accepted"
	ProposalStatusDeclined = "declined"
)

// BookingProposal is the structured offer an officiant embeds in a chat
// message. Its status moves pending -> accepted|declined exactly once.
type BookingProposal struct {
	ProposalId      string     `bson:"proposalId" json:"proposalId"`
	Title           string     `bson:"title" json:"title"`
	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64    `bson:"price" json:"price"`
	Currency        string     `bson:"currency" json:"currency"`
	Features        []string   `bson:"features,omitempty" json:"features,omitempty"`
	EventDate       *time.Time `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	Location        string     `bson:"location,omitempty" json:"location,omitempty"`
	Duration        string     `bson:"duration,omitempty" json:"duration,omitempty"`
	PackageId       string     `bson:"packageId,omitempty" json:"packageId,omitempty"`
	ValidUntil      *time.Time `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
	Status          string     `bson:"status" json:"status"`
	RespondedBy     string     `bson:"respondedBy,omitempty" json:"respondedBy,omitempty"`
	RespondedByName string     `bson:"respondedByName,omitempty" json:"respondedByName,omitempty"`
	RespondedAt     *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

func NewProposalId() string {
	return fmt.Sprintf("proposal_%d", time.Now().UnixMilli())
}

// ResolveAction maps a client response action onto a terminal status.
// Anything other than an explicit accept declines the offer.
func ResolveAction(action string) string {
	if action == "accept" {
		return ProposalStatusAccepted
	}
	return ProposalStatusDeclined
}
