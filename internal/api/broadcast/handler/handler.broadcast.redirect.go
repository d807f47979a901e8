// Package broadcasthdl - RedirectHandler.
// File: handler.broadcast.redirect.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package broadcasthdl

import (
	basehdl "broadcast_hub/internal/api/base/handler"
	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastsvc "broadcast_hub/internal/api/broadcast/service"

	"github.com/gofiber/fiber/v3"
)

// RedirectHandler xử lý endpoint click-through: ghi nhận click rồi
// chuyển hướng người dùng đến URL đích.
type RedirectHandler struct {
	clickTracker *broadcastsvc.ClickTracker
}

// NewRedirectHandler tạo mới RedirectHandler
func NewRedirectHandler() (*RedirectHandler, error) {
	notificationService, err := broadcastsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	recipientService, err := broadcastsvc.NewRecipientService()
	if err != nil {
		return nil, err
	}

	return &RedirectHandler{
		clickTracker: broadcastsvc.NewClickTracker(recipientService, notificationService),
	}, nil
}

// HandleRedirect ghi nhận click và redirect về URL đích.
// GET /broadcast/redirect?url=<đích>&id=<notificationId>&userId=<recipientId>
// Thiếu param nào là 400; params đủ thì luôn 302 về đích, kể cả khi ghi nhận thất bại.
func (h *RedirectHandler) HandleRedirect(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		params := &broadcastdto.RedirectParams{
			URL:            c.Query("url"),
			NotificationID: c.Query("id"),
			UserID:         c.Query("userId"),
		}

		target, err := h.clickTracker.RecordClick(c.Context(), params)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		return c.Redirect().Status(fiber.StatusFound).To(target)
	})
}
