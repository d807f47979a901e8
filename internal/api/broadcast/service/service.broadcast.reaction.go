// Package broadcastsvc - ReactionService và ReactionTracker.
// File: service.broadcast.reaction.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "broadcast_hub/internal/api/base/service"
	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/global"
	"broadcast_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveReaction dựng bản ghi reaction từ activity của bot event.
// Hàm thuần: activity nil trả về nil — caller quyết định đó có phải lỗi không.
func ResolveReaction(label string, activity *broadcastdto.Activity) *broadcastmodels.Reaction {
	if activity == nil {
		return nil
	}

	r := &broadcastmodels.Reaction{
		MessageID:     activity.ReplyToID,
		ReactionLabel: label,
	}
	if activity.From != nil {
		r.UserID = activity.From.ID
		r.UserName = activity.From.Name
	}
	if activity.Conversation != nil {
		r.ConversationID = activity.Conversation.ID
	}
	return r
}

// ReactionService quản lý bản ghi reaction thô (mỗi (messageId, userId) một dòng).
type ReactionService struct {
	*basesvc.BaseServiceMongoImpl[broadcastmodels.Reaction]
}

// NewReactionService tạo mới ReactionService
func NewReactionService() (*ReactionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BroadcastReactions)
	if !exist {
		return nil, fmt.Errorf("failed to get broadcast_reactions collection: %v", common.ErrNotFound)
	}

	return &ReactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[broadcastmodels.Reaction](collection),
	}, nil
}

// Save upsert reaction theo khóa (messageId, userId): cùng người reaction lại
// cùng message thì ghi đè nhãn, không tạo dòng mới.
func (s *ReactionService) Save(ctx context.Context, r *broadcastmodels.Reaction) (broadcastmodels.Reaction, error) {
	filter := bson.M{
		"messageId": r.MessageID,
		"userId":    r.UserID,
	}
	return s.Upsert(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"conversationId": r.ConversationID,
			"userName":       r.UserName,
			"reactionLabel":  r.ReactionLabel,
		},
		SetOnInsert: map[string]interface{}{
			"messageId": r.MessageID,
			"userId":    r.UserID,
		},
	})
}

// Remove xóa bản ghi reaction của (messageId, userId). Không tồn tại cũng coi là xong.
func (s *ReactionService) Remove(ctx context.Context, messageID string, userID string) error {
	err := s.DeleteOne(ctx, bson.M{
		"messageId": messageID,
		"userId":    userID,
	})
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

// ReactionStore lưu/xóa bản ghi reaction thô.
type ReactionStore interface {
	Save(ctx context.Context, r *broadcastmodels.Reaction) (broadcastmodels.Reaction, error)
	Remove(ctx context.Context, messageID string, userID string) error
}

// RecipientLookup tra cứu bản ghi người nhận theo id message đã gửi.
type RecipientLookup interface {
	GetByMessageID(ctx context.Context, messageID string) (broadcastmodels.SentRecipient, error)
}

// ReactionCounter tăng reactionCount trên notification aggregate.
type ReactionCounter interface {
	IncrementReactionCount(ctx context.Context, id primitive.ObjectID) error
}

// ReactionTracker xử lý protocol reaction-add / reaction-remove của bot event.
// Add ghi bản ghi rồi cộng dồn counter; remove chỉ xóa bản ghi, counter giữ nguyên
// nên reactionCount là tổng số sự kiện add từ trước đến nay.
type ReactionTracker struct {
	reactions     ReactionStore
	recipients    RecipientLookup
	notifications ReactionCounter
}

// NewReactionTracker tạo mới ReactionTracker
func NewReactionTracker(reactions ReactionStore, recipients RecipientLookup, notifications ReactionCounter) *ReactionTracker {
	return &ReactionTracker{
		reactions:     reactions,
		recipients:    recipients,
		notifications: notifications,
	}
}

// errNilActivity báo hiệu event đến từ upstream bị thiếu activity — đây là
// vi phạm hợp đồng của nguồn event, phải nổi lên thay vì nuốt im lặng.
func errNilActivity() error {
	return common.NewError(
		common.ErrCodeBusinessState,
		"Bot event thiếu activity: không thể resolve reaction",
		common.StatusInternalServerError,
		nil,
	)
}

// RecordReactionAdded ghi nhận một reaction mới: lưu bản ghi, tra cứu người nhận
// theo messageId rồi cộng reactionCount của notification tương ứng.
// Message không map được về notification nào là benign miss (reaction trên
// message ngoài hệ thống), chỉ bỏ qua bước cộng counter.
func (t *ReactionTracker) RecordReactionAdded(ctx context.Context, label string, activity *broadcastdto.Activity) error {
	reaction := ResolveReaction(label, activity)
	if reaction == nil {
		return errNilActivity()
	}

	if _, err := t.reactions.Save(ctx, reaction); err != nil {
		return err
	}

	recipient, err := t.recipients.GetByMessageID(ctx, reaction.MessageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := t.notifications.IncrementReactionCount(ctx, recipient.NotificationID); err != nil {
		return err
	}

	logger.LogEngagement("reaction_added", recipient.NotificationID.Hex(), reaction.UserID, map[string]interface{}{
		"message_id": reaction.MessageID,
		"label":      reaction.ReactionLabel,
	})
	return nil
}

// RecordReactionRemoved ghi nhận gỡ reaction: chỉ xóa bản ghi thô.
// Counter không giảm — xem doc của ReactionTracker.
func (t *ReactionTracker) RecordReactionRemoved(ctx context.Context, label string, activity *broadcastdto.Activity) error {
	reaction := ResolveReaction(label, activity)
	if reaction == nil {
		return errNilActivity()
	}

	if err := t.reactions.Remove(ctx, reaction.MessageID, reaction.UserID); err != nil {
		return err
	}

	logger.LogEngagement("reaction_removed", "", reaction.UserID, map[string]interface{}{
		"message_id": reaction.MessageID,
		"label":      reaction.ReactionLabel,
	})
	return nil
}
