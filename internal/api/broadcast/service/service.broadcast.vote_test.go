// Package broadcastsvc - test cho vote flow.
package broadcastsvc

import (
	"context"
	"testing"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeNotificationReader trả về notification theo id từ map in-memory
type fakeNotificationReader struct {
	byID map[primitive.ObjectID]broadcastmodels.Notification
}

func (f *fakeNotificationReader) FindOneById(ctx context.Context, id primitive.ObjectID) (broadcastmodels.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return broadcastmodels.Notification{}, common.ErrNotFound
	}
	return n, nil
}

func (f *fakeNotificationReader) PrepareForRender(n *broadcastmodels.Notification) {}

// fakeVoteStore ghi nhớ lần MarkVoted gần nhất
type fakeVoteStore struct {
	lastNotificationID primitive.ObjectID
	lastRecipientID    string
	lastChoices        string
}

func (f *fakeVoteStore) MarkVoted(ctx context.Context, notificationID primitive.ObjectID, recipientID string, selectedChoices string) (broadcastmodels.SentRecipient, error) {
	f.lastNotificationID = notificationID
	f.lastRecipientID = recipientID
	f.lastChoices = selectedChoices
	return broadcastmodels.SentRecipient{
		NotificationID:  notificationID,
		RecipientID:     recipientID,
		HasVoted:        true,
		SelectedChoices: selectedChoices,
	}, nil
}

func TestSubmitVote_RendersVotedCard(t *testing.T) {
	id := primitive.NewObjectID()
	reader := &fakeNotificationReader{byID: map[primitive.ObjectID]broadcastmodels.Notification{
		id: {
			ID:              id,
			Title:           "Quiz tháng 8",
			PollOptions:     []string{"A", "B"},
			PollQuizAnswers: []string{"0"},
		},
	}}
	store := &fakeVoteStore{}
	flow := NewVoteFlow(reader, store)

	card, err := flow.SubmitVote(context.Background(), "user-1", &broadcastdto.VotePayload{
		NotificationID: id.Hex(),
		PollChoices:    "0",
	})
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, id, store.lastNotificationID)
	assert.Equal(t, "user-1", store.lastRecipientID)
	assert.Equal(t, "0", store.lastChoices)

	// Card đã vote: không còn action submit
	for _, raw := range card.Actions {
		_, isSubmit := raw.(*broadcastdto.SubmitAction)
		assert.False(t, isSubmit, "card đã vote không được có action submit")
	}

	// Choice set đã pre-set lựa chọn và lộ đáp án
	var choiceSet *broadcastdto.ChoiceSetInput
	for _, block := range card.Body {
		if cs, ok := block.(*broadcastdto.ChoiceSetInput); ok {
			choiceSet = cs
		}
	}
	require.NotNil(t, choiceSet)
	assert.Equal(t, "0", choiceSet.Value)
	assert.Equal(t, "A (correct)", choiceSet.Choices[0].Title)
}

func TestSubmitVote_InvalidNotificationID(t *testing.T) {
	flow := NewVoteFlow(&fakeNotificationReader{byID: map[primitive.ObjectID]broadcastmodels.Notification{}}, &fakeVoteStore{})

	_, err := flow.SubmitVote(context.Background(), "user-1", &broadcastdto.VotePayload{
		NotificationID: "not-hex",
		PollChoices:    "0",
	})
	assert.Error(t, err)
}

func TestSubmitVote_NotificationWithoutPoll(t *testing.T) {
	id := primitive.NewObjectID()
	reader := &fakeNotificationReader{byID: map[primitive.ObjectID]broadcastmodels.Notification{
		id: {ID: id, Title: "Không có poll"},
	}}
	flow := NewVoteFlow(reader, &fakeVoteStore{})

	_, err := flow.SubmitVote(context.Background(), "user-1", &broadcastdto.VotePayload{
		NotificationID: id.Hex(),
		PollChoices:    "0",
	})
	assert.Error(t, err)
}
