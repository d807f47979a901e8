// Package broadcastsvc - RecipientService (xem service.broadcast.strings.go cho package doc).
// File: service.broadcast.recipient.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "broadcast_hub/internal/api/base/service"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipientService quản lý bản ghi trạng thái từng người nhận của một notification.
type RecipientService struct {
	*basesvc.BaseServiceMongoImpl[broadcastmodels.SentRecipient]
}

// NewRecipientService tạo mới RecipientService
func NewRecipientService() (*RecipientService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BroadcastRecipients)
	if !exist {
		return nil, fmt.Errorf("failed to get broadcast_recipients collection: %v", common.ErrNotFound)
	}

	return &RecipientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[broadcastmodels.SentRecipient](collection),
	}, nil
}

// markOnce chuyển một flag write-once false→true trong một FindOneAndUpdate có điều kiện.
// Filter loại trừ bản ghi đã true nên hai request đồng thời chỉ có một request thắng.
// Trả về (true, nil) khi chính request này thực hiện chuyển trạng thái,
// (false, nil) khi bản ghi không tồn tại hoặc đã được đánh dấu trước đó.
func (s *RecipientService) markOnce(ctx context.Context, notificationID primitive.ObjectID, recipientID string, statusField string, timeField string) (bool, error) {
	now := time.Now().UnixMilli()
	filter := bson.M{
		"notificationId": notificationID,
		"recipientId":    recipientID,
		statusField:      bson.M{"$ne": true},
	}
	_, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{
			statusField: true,
			timeField:   now,
		},
	}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không có bản ghi khớp: người nhận không tồn tại hoặc đã đánh dấu rồi
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MarkClicked đánh dấu người nhận đã click (write-once)
func (s *RecipientService) MarkClicked(ctx context.Context, notificationID primitive.ObjectID, recipientID string) (bool, error) {
	return s.markOnce(ctx, notificationID, recipientID, "clickStatus", "clickedAt")
}

// MarkRead đánh dấu người nhận đã mở card (write-once, từ tracking pixel)
func (s *RecipientService) MarkRead(ctx context.Context, notificationID primitive.ObjectID, recipientID string) (bool, error) {
	return s.markOnce(ctx, notificationID, recipientID, "readStatus", "readAt")
}

// MarkVoted lưu trạng thái vote của người nhận (upsert: vote lại ghi đè lựa chọn cũ)
func (s *RecipientService) MarkVoted(ctx context.Context, notificationID primitive.ObjectID, recipientID string, selectedChoices string) (broadcastmodels.SentRecipient, error) {
	filter := bson.M{
		"notificationId": notificationID,
		"recipientId":    recipientID,
	}
	return s.Upsert(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"hasVoted":        true,
			"selectedChoices": selectedChoices,
		},
		SetOnInsert: map[string]interface{}{
			"notificationId": notificationID,
			"recipientId":    recipientID,
		},
	})
}

// GetByMessageID tra cứu bản ghi người nhận theo id message đã gửi
// (khóa tra cứu khi reaction event về).
func (s *RecipientService) GetByMessageID(ctx context.Context, messageID string) (broadcastmodels.SentRecipient, error) {
	return s.FindOne(ctx, bson.M{"messageId": messageID}, nil)
}

// GetByRecipient tra cứu bản ghi theo (notificationId, recipientId)
func (s *RecipientService) GetByRecipient(ctx context.Context, notificationID primitive.ObjectID, recipientID string) (broadcastmodels.SentRecipient, error) {
	return s.FindOne(ctx, bson.M{
		"notificationId": notificationID,
		"recipientId":    recipientID,
	}, nil)
}
