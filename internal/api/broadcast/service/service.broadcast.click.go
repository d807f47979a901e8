// Package broadcastsvc - ClickTracker.
// File: service.broadcast.click.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	"broadcast_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClickMarker chuyển flag đã-click của người nhận (write-once).
type ClickMarker interface {
	MarkClicked(ctx context.Context, notificationID primitive.ObjectID, recipientID string) (bool, error)
}

// ClickCounter tăng clickCount trên notification aggregate.
type ClickCounter interface {
	IncrementClickCount(ctx context.Context, id primitive.ObjectID) error
}

// ClickTracker xử lý protocol click-through: ghi nhận click rồi trả URL đích
// để handler redirect. Tracking không bao giờ chặn người dùng — sau khi params
// hợp lệ, mọi lỗi ghi nhận chỉ được log, URL đích vẫn được trả về.
type ClickTracker struct {
	recipients    ClickMarker
	notifications ClickCounter
}

// NewClickTracker tạo mới ClickTracker
func NewClickTracker(recipients ClickMarker, notifications ClickCounter) *ClickTracker {
	return &ClickTracker{
		recipients:    recipients,
		notifications: notifications,
	}
}

// RecordClick ghi nhận một lần click và trả về URL đích.
// Chỉ lần click đầu của mỗi người nhận đánh dấu trạng thái và cộng counter;
// các lần sau chỉ redirect. Lỗi duy nhất trả về là params không hợp lệ.
func (t *ClickTracker) RecordClick(ctx context.Context, params *broadcastdto.RedirectParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	notificationID, err := primitive.ObjectIDFromHex(params.NotificationID)
	if err != nil {
		// Id không phải ObjectID hợp lệ: không ghi nhận được nhưng vẫn redirect
		logger.GetErrorLogger().WithField("notification_id", params.NotificationID).
			Warn("Click tracking bỏ qua: notification id không hợp lệ")
		return params.URL, nil
	}

	firstClick, err := t.recipients.MarkClicked(ctx, notificationID, params.UserID)
	if err != nil {
		logger.GetErrorLogger().WithError(err).
			WithField("notification_id", params.NotificationID).
			Error("Không đánh dấu được trạng thái click")
		return params.URL, nil
	}

	if firstClick {
		if err := t.notifications.IncrementClickCount(ctx, notificationID); err != nil {
			logger.GetErrorLogger().WithError(err).
				WithField("notification_id", params.NotificationID).
				Error("Không cộng được clickCount")
		}
		logger.LogEngagement("click", params.NotificationID, params.UserID, map[string]interface{}{
			"url": params.URL,
		})
	}

	return params.URL, nil
}
