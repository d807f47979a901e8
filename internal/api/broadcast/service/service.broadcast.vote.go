// Package broadcastsvc - VoteFlow.
// File: service.broadcast.vote.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VoteRecipientStore lưu trạng thái vote của người nhận.
type VoteRecipientStore interface {
	MarkVoted(ctx context.Context, notificationID primitive.ObjectID, recipientID string, selectedChoices string) (broadcastmodels.SentRecipient, error)
}

// NotificationReader đọc notification và resolve các field dẫn xuất trước render.
type NotificationReader interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (broadcastmodels.Notification, error)
	PrepareForRender(n *broadcastmodels.Notification)
}

// VoteFlow xử lý submit vote từ card: giải mã payload, lưu lựa chọn rồi
// render lại card ở trạng thái đã-vote để bot thay thế message gốc.
type VoteFlow struct {
	notifications NotificationReader
	recipients    VoteRecipientStore
}

// NewVoteFlow tạo mới VoteFlow
func NewVoteFlow(notifications NotificationReader, recipients VoteRecipientStore) *VoteFlow {
	return &VoteFlow{
		notifications: notifications,
		recipients:    recipients,
	}
}

// SubmitVote lưu lựa chọn của người vote và trả về card đã render lại.
// Payload hỏng hoặc thiếu field là lỗi validation — không bao giờ lưu vote
// suy diễn từ payload không đầy đủ.
func (f *VoteFlow) SubmitVote(ctx context.Context, recipientID string, payload *broadcastdto.VotePayload) (*broadcastdto.AdaptiveCard, error) {
	notificationID, err := primitive.ObjectIDFromHex(payload.NotificationID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Vote payload mang notification id không hợp lệ",
			common.StatusBadRequest,
			err,
		)
	}

	notification, err := f.notifications.FindOneById(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if !notification.HasPoll() {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Notification không có poll, không nhận vote",
			common.StatusBadRequest,
			nil,
		)
	}

	if _, err := f.recipients.MarkVoted(ctx, notificationID, recipientID, payload.PollChoices); err != nil {
		return nil, err
	}

	details := map[string]interface{}{"choices": payload.PollChoices}
	if notification.IsQuiz() {
		details["correct"] = GradeQuiz(notification.PollQuizAnswers, payload.PollChoices)
	}
	logger.LogEngagement("vote", payload.NotificationID, recipientID, details)

	f.notifications.PrepareForRender(&notification)
	return BuildCard(&notification, broadcastdto.ViewerState{
		HasVoted:        true,
		SelectedChoices: payload.PollChoices,
	})
}
