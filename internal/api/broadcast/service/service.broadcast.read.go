// Package broadcastsvc - ReadTracker.
// File: service.broadcast.read.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"

	"broadcast_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadMarker chuyển flag đã-đọc của người nhận (write-once).
type ReadMarker interface {
	MarkRead(ctx context.Context, notificationID primitive.ObjectID, recipientID string) (bool, error)
}

// ReadCounter tăng readCount trên notification aggregate.
type ReadCounter interface {
	IncrementReadCount(ctx context.Context, id primitive.ObjectID) error
}

// ReadTracker ghi nhận tracking pixel: card được mở lần đầu bởi mỗi người nhận
// thì đánh dấu trạng thái và cộng readCount. Giống click tracking, pixel không
// bao giờ fail về phía người dùng — lỗi ghi nhận chỉ được log.
type ReadTracker struct {
	recipients    ReadMarker
	notifications ReadCounter
}

// NewReadTracker tạo mới ReadTracker
func NewReadTracker(recipients ReadMarker, notifications ReadCounter) *ReadTracker {
	return &ReadTracker{
		recipients:    recipients,
		notifications: notifications,
	}
}

// RecordRead ghi nhận một lần mở card. Không bao giờ trả lỗi — handler luôn
// trả ảnh pixel bất kể kết quả ghi nhận.
func (t *ReadTracker) RecordRead(ctx context.Context, notificationID string, recipientID string) {
	id, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		logger.GetErrorLogger().WithField("notification_id", notificationID).
			Warn("Read tracking bỏ qua: notification id không hợp lệ")
		return
	}

	firstRead, err := t.recipients.MarkRead(ctx, id, recipientID)
	if err != nil {
		logger.GetErrorLogger().WithError(err).
			WithField("notification_id", notificationID).
			Error("Không đánh dấu được trạng thái đã đọc")
		return
	}

	if firstRead {
		if err := t.notifications.IncrementReadCount(ctx, id); err != nil {
			logger.GetErrorLogger().WithError(err).
				WithField("notification_id", notificationID).
				Error("Không cộng được readCount")
		}
		logger.LogEngagement("read", notificationID, recipientID, nil)
	}
}
