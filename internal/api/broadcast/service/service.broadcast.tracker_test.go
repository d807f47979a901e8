// Package broadcastsvc - test cho click/read/reaction tracker và vote flow,
// dùng fake store in-memory thay cho MongoDB.
package broadcastsvc

import (
	"context"
	"errors"
	"testing"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeMarker giả lập write-once flag: lần đầu theo khóa trả true, các lần sau false
type fakeMarker struct {
	marked map[string]bool
	err    error
}

func newFakeMarker() *fakeMarker {
	return &fakeMarker{marked: map[string]bool{}}
}

func (f *fakeMarker) mark(id primitive.ObjectID, recipientID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := id.Hex() + "/" + recipientID
	if f.marked[key] {
		return false, nil
	}
	f.marked[key] = true
	return true, nil
}

func (f *fakeMarker) MarkClicked(ctx context.Context, id primitive.ObjectID, recipientID string) (bool, error) {
	return f.mark(id, recipientID)
}

func (f *fakeMarker) MarkRead(ctx context.Context, id primitive.ObjectID, recipientID string) (bool, error) {
	return f.mark(id, recipientID)
}

// fakeCounter đếm số lần increment từng counter
type fakeCounter struct {
	clicks    int
	reactions int
	reads     int
}

func (f *fakeCounter) IncrementClickCount(ctx context.Context, id primitive.ObjectID) error {
	f.clicks++
	return nil
}

func (f *fakeCounter) IncrementReactionCount(ctx context.Context, id primitive.ObjectID) error {
	f.reactions++
	return nil
}

func (f *fakeCounter) IncrementReadCount(ctx context.Context, id primitive.ObjectID) error {
	f.reads++
	return nil
}

func validRedirectParams() *broadcastdto.RedirectParams {
	return &broadcastdto.RedirectParams{
		URL:            "https://example.com/news",
		NotificationID: primitive.NewObjectID().Hex(),
		UserID:         "user-7",
	}
}

func TestRecordClick_FirstClickIncrements(t *testing.T) {
	marker := newFakeMarker()
	counter := &fakeCounter{}
	tracker := NewClickTracker(marker, counter)

	params := validRedirectParams()
	target, err := tracker.RecordClick(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params.URL, target)
	assert.Equal(t, 1, counter.clicks)
}

func TestRecordClick_Idempotent(t *testing.T) {
	marker := newFakeMarker()
	counter := &fakeCounter{}
	tracker := NewClickTracker(marker, counter)

	params := validRedirectParams()
	for i := 0; i < 3; i++ {
		target, err := tracker.RecordClick(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, params.URL, target)
	}
	// Chỉ lần click đầu cộng counter
	assert.Equal(t, 1, counter.clicks)
}

func TestRecordClick_MissingParams(t *testing.T) {
	tracker := NewClickTracker(newFakeMarker(), &fakeCounter{})

	for _, params := range []*broadcastdto.RedirectParams{
		{NotificationID: "abc", UserID: "u"},
		{URL: "https://x", UserID: "u"},
		{URL: "https://x", NotificationID: "abc"},
	} {
		_, err := tracker.RecordClick(context.Background(), params)
		assert.Error(t, err)
	}
}

func TestRecordClick_AlwaysRedirects(t *testing.T) {
	// Store lỗi: vẫn trả URL, không trả error
	marker := newFakeMarker()
	marker.err = errors.New("db down")
	counter := &fakeCounter{}
	tracker := NewClickTracker(marker, counter)

	params := validRedirectParams()
	target, err := tracker.RecordClick(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params.URL, target)
	assert.Equal(t, 0, counter.clicks)

	// Id không phải ObjectID: vẫn redirect, không ghi nhận
	params = validRedirectParams()
	params.NotificationID = "not-an-object-id"
	target, err = tracker.RecordClick(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params.URL, target)
	assert.Equal(t, 0, counter.clicks)
}

func TestRecordRead_Idempotent(t *testing.T) {
	marker := newFakeMarker()
	counter := &fakeCounter{}
	tracker := NewReadTracker(marker, counter)

	id := primitive.NewObjectID().Hex()
	tracker.RecordRead(context.Background(), id, "user-1")
	tracker.RecordRead(context.Background(), id, "user-1")
	tracker.RecordRead(context.Background(), id, "user-2")

	assert.Equal(t, 2, counter.reads)
}

// fakeReactionStore lưu reaction theo khóa (messageId, userId)
type fakeReactionStore struct {
	saved map[string]broadcastmodels.Reaction
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{saved: map[string]broadcastmodels.Reaction{}}
}

func (f *fakeReactionStore) Save(ctx context.Context, r *broadcastmodels.Reaction) (broadcastmodels.Reaction, error) {
	f.saved[r.MessageID+"/"+r.UserID] = *r
	return *r, nil
}

func (f *fakeReactionStore) Remove(ctx context.Context, messageID string, userID string) error {
	delete(f.saved, messageID+"/"+userID)
	return nil
}

// fakeRecipientLookup map messageId về bản ghi người nhận
type fakeRecipientLookup struct {
	byMessage map[string]broadcastmodels.SentRecipient
}

func (f *fakeRecipientLookup) GetByMessageID(ctx context.Context, messageID string) (broadcastmodels.SentRecipient, error) {
	r, ok := f.byMessage[messageID]
	if !ok {
		return broadcastmodels.SentRecipient{}, common.ErrNotFound
	}
	return r, nil
}

func reactionActivity(messageID string, userID string) *broadcastdto.Activity {
	return &broadcastdto.Activity{
		ReplyToID:    messageID,
		From:         &broadcastdto.ChannelAccount{ID: userID, Name: "Người dùng"},
		Conversation: &broadcastdto.ConversationAccount{ID: "conv-1"},
	}
}

func TestResolveReaction(t *testing.T) {
	assert.Nil(t, ResolveReaction("like", nil))

	r := ResolveReaction("heart", reactionActivity("msg-1", "user-1"))
	require.NotNil(t, r)
	assert.Equal(t, "msg-1", r.MessageID)
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, "conv-1", r.ConversationID)
	assert.Equal(t, "heart", r.ReactionLabel)
}

func TestRecordReactionAdded_NotIdempotent(t *testing.T) {
	store := newFakeReactionStore()
	notificationID := primitive.NewObjectID()
	lookup := &fakeRecipientLookup{byMessage: map[string]broadcastmodels.SentRecipient{
		"msg-1": {NotificationID: notificationID, RecipientID: "user-1", MessageID: "msg-1"},
	}}
	counter := &fakeCounter{}
	tracker := NewReactionTracker(store, lookup, counter)

	// Cùng người, cùng message, hai lần add: bản ghi upsert còn một,
	// nhưng counter cộng mỗi sự kiện
	require.NoError(t, tracker.RecordReactionAdded(context.Background(), "like", reactionActivity("msg-1", "user-1")))
	require.NoError(t, tracker.RecordReactionAdded(context.Background(), "heart", reactionActivity("msg-1", "user-1")))

	assert.Equal(t, 2, counter.reactions)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, "heart", store.saved["msg-1/user-1"].ReactionLabel)
}

func TestRecordReactionAdded_NilActivity(t *testing.T) {
	tracker := NewReactionTracker(newFakeReactionStore(), &fakeRecipientLookup{byMessage: map[string]broadcastmodels.SentRecipient{}}, &fakeCounter{})

	err := tracker.RecordReactionAdded(context.Background(), "like", nil)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeBusinessState.Code, customErr.Code.Code)
}

func TestRecordReactionAdded_UnknownMessage(t *testing.T) {
	counter := &fakeCounter{}
	tracker := NewReactionTracker(newFakeReactionStore(), &fakeRecipientLookup{byMessage: map[string]broadcastmodels.SentRecipient{}}, counter)

	// Reaction trên message không thuộc broadcast nào: benign miss
	err := tracker.RecordReactionAdded(context.Background(), "like", reactionActivity("msg-x", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, 0, counter.reactions)
}

func TestRecordReactionRemoved_DoesNotTouchCounter(t *testing.T) {
	store := newFakeReactionStore()
	notificationID := primitive.NewObjectID()
	lookup := &fakeRecipientLookup{byMessage: map[string]broadcastmodels.SentRecipient{
		"msg-1": {NotificationID: notificationID, RecipientID: "user-1", MessageID: "msg-1"},
	}}
	counter := &fakeCounter{}
	tracker := NewReactionTracker(store, lookup, counter)

	require.NoError(t, tracker.RecordReactionAdded(context.Background(), "like", reactionActivity("msg-1", "user-1")))
	require.NoError(t, tracker.RecordReactionRemoved(context.Background(), "like", reactionActivity("msg-1", "user-1")))

	assert.Empty(t, store.saved)
	// Remove không giảm counter: reactionCount là tổng sự kiện add
	assert.Equal(t, 1, counter.reactions)

	err := tracker.RecordReactionRemoved(context.Background(), "like", nil)
	assert.Error(t, err)
}
