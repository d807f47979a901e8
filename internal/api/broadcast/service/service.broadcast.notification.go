// Package broadcastsvc - NotificationService (xem service.broadcast.strings.go cho package doc).
// File: service.broadcast.notification.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basesvc "broadcast_hub/internal/api/base/service"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService quản lý notification aggregate (nội dung card + counter engagement).
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[broadcastmodels.Notification]
	blobBaseURL string
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BroadcastNotifications)
	if !exist {
		return nil, fmt.Errorf("failed to get broadcast_notifications collection: %v", common.ErrNotFound)
	}

	blobBaseURL := ""
	if global.MongoDB_ServerConfig != nil {
		blobBaseURL = global.MongoDB_ServerConfig.BlobBaseURL
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[broadcastmodels.Notification](collection),
		blobBaseURL:          blobBaseURL,
	}, nil
}

// incrementCounter tăng một counter engagement bằng $inc atomic.
// Không bao giờ read-modify-write: increment đồng thời từ nhiều recipient không bị mất.
func (s *NotificationService) incrementCounter(ctx context.Context, id primitive.ObjectID, field string) error {
	_, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id}, &basesvc.UpdateData{
		Inc: map[string]interface{}{field: int64(1)},
	}, nil)
	if err != nil {
		// Aggregate không tồn tại là benign miss: sự kiện engagement về muộn
		// hơn vòng đời notification thì bỏ qua, không phải lỗi
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// IncrementClickCount tăng clickCount lên 1 (atomic)
func (s *NotificationService) IncrementClickCount(ctx context.Context, id primitive.ObjectID) error {
	return s.incrementCounter(ctx, id, "clickCount")
}

// IncrementReactionCount tăng reactionCount lên 1 (atomic)
func (s *NotificationService) IncrementReactionCount(ctx context.Context, id primitive.ObjectID) error {
	return s.incrementCounter(ctx, id, "reactionCount")
}

// IncrementReadCount tăng readCount lên 1 (atomic)
func (s *NotificationService) IncrementReadCount(ctx context.Context, id primitive.ObjectID) error {
	return s.incrementCounter(ctx, id, "readCount")
}

// GetImage resolve URL ảnh từ link trực tiếp hoặc tên blob.
// Link trực tiếp được ưu tiên; blob được ghép với base URL của blob storage.
func (s *NotificationService) GetImage(link string, blobName string) string {
	if strings.TrimSpace(link) != "" {
		return link
	}
	if strings.TrimSpace(blobName) == "" || s.blobBaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.blobBaseURL, "/") + "/" + blobName
}

// PrepareForRender resolve các field dẫn xuất trước khi render card
// (hiện tại: imageBlobName → imageLink).
func (s *NotificationService) PrepareForRender(n *broadcastmodels.Notification) {
	if strings.TrimSpace(n.ImageLink) == "" && strings.TrimSpace(n.ImageBlob) != "" {
		n.ImageLink = s.GetImage("", n.ImageBlob)
	}
}
