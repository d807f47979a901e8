// Package broadcasthdl - TrackingHandler.
// File: handler.broadcast.tracking.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package broadcasthdl

import (
	basehdl "broadcast_hub/internal/api/base/handler"
	broadcastsvc "broadcast_hub/internal/api/broadcast/service"

	"github.com/gofiber/fiber/v3"
)

// trackingPixel là ảnh PNG trong suốt 1x1 trả về cho mọi request pixel
var trackingPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// TrackingHandler xử lý tracking pixel nhúng trong card
type TrackingHandler struct {
	readTracker *broadcastsvc.ReadTracker
}

// NewTrackingHandler tạo mới TrackingHandler
func NewTrackingHandler() (*TrackingHandler, error) {
	notificationService, err := broadcastsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	recipientService, err := broadcastsvc.NewRecipientService()
	if err != nil {
		return nil, err
	}

	return &TrackingHandler{
		readTracker: broadcastsvc.NewReadTracker(recipientService, notificationService),
	}, nil
}

// HandleTrackingPixel ghi nhận lượt mở card và trả về ảnh pixel.
// GET /broadcast/track?id=<notificationId>&key=<recipientId>
// Luôn trả 200 kèm ảnh — pixel không được phép hiện lỗi trên card người dùng.
func (h *TrackingHandler) HandleTrackingPixel(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		notificationID := c.Query("id")
		recipientID := c.Query("key")
		if notificationID != "" && recipientID != "" {
			h.readTracker.RecordRead(c.Context(), notificationID, recipientID)
		}

		c.Set("Content-Type", "image/png")
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		return c.Status(fiber.StatusOK).Send(trackingPixel)
	})
}
