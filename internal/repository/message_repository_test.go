package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"vowline/internal/entity"
)

func TestMarkAsReadFilterGuardsExistingReaders(t *testing.T) {
	filter := markAsReadFilter([]string{"m1", "m2"}, "u1")

	// A message already carrying u1's receipt must not match again.
	guard, ok := filter["readBy.userId"].(bson.M)
	require.True(t, ok, "filter must guard on readBy.userId")
	assert.Equal(t, bson.M{"$ne": "u1"}, guard)

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"_id": bson.M{"$in": []string{"m1", "m2"}}}, or[0])
	assert.Equal(t, bson.M{"messageId": bson.M{"$in": []string{"m1", "m2"}}}, or[1])
}

func TestMarkAsReadUpdateAppendsReceipt(t *testing.T) {
	readAt := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)
	update := markAsReadUpdate("u1", "Ana", readAt)

	addToSet, ok := update["$addToSet"].(bson.M)
	require.True(t, ok, "update must use $addToSet, not $push")
	receipt, ok := addToSet["readBy"].(entity.ReadReceipt)
	require.True(t, ok)
	assert.Equal(t, "u1", receipt.UserId)
	assert.Equal(t, "Ana", receipt.UserName)
	assert.Equal(t, readAt, receipt.ReadAt)
}

func TestReactionUpdatesShareTheSameKey(t *testing.T) {
	pull := pullReactionUpdate("🎉", "u1")
	push := pushReactionUpdate("🎉", "u1", "Ana", time.Now())

	// The pull removes exactly the (emoji, userId) pair the push re-adds, so
	// re-reacting refreshes one entry instead of accumulating duplicates.
	pulled, ok := pull["$pull"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"emoji": "🎉", "userId": "u1"}, pulled["reactions"])

	pushed, ok := push["$push"].(bson.M)
	require.True(t, ok)
	reaction, ok := pushed["reactions"].(entity.Reaction)
	require.True(t, ok)
	assert.Equal(t, "🎉", reaction.Emoji)
	assert.Equal(t, "u1", reaction.UserId)
	assert.Equal(t, "Ana", reaction.UserName)
}

func TestRemoveReactionLeavesOtherUsersAlone(t *testing.T) {
	pull := pullReactionUpdate("🎉", "u1")

	pulled := pull["$pull"].(bson.M)["reactions"].(bson.M)
	assert.Equal(t, "u1", pulled["userId"], "pull must be scoped to the removing user")
}

func TestResolveProposalFilterRequiresPending(t *testing.T) {
	filter := resolveProposalFilter("m1")

	assert.Equal(t, entity.MessageTypeBookingProposal, filter["type"])
	assert.Equal(t, entity.ProposalStatusPending, filter["booking.status"],
		"a resolved proposal must not match a second response")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Contains(t, or, bson.M{"_id": "m1"})
	assert.Contains(t, or, bson.M{"messageId": "m1"})
}
