// Package broadcasthdl - các handler HTTP thuộc domain Broadcast.
// File: handler.broadcast.notification.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package broadcasthdl

import (
	"fmt"

	basehdl "broadcast_hub/internal/api/base/handler"
	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	broadcastsvc "broadcast_hub/internal/api/broadcast/service"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectIDParam lấy và validate ObjectID từ URI params
func parseObjectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// NotificationHandler xử lý CRUD notification và render card preview
type NotificationHandler struct {
	*basehdl.BaseHandler[broadcastmodels.Notification, *broadcastdto.NotificationCreateInput, *broadcastdto.NotificationUpdateInput]
	notificationService *broadcastsvc.NotificationService
	recipientService    *broadcastsvc.RecipientService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := broadcastsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	recipientService, err := broadcastsvc.NewRecipientService()
	if err != nil {
		return nil, err
	}

	return &NotificationHandler{
		BaseHandler: basehdl.NewBaseHandler[broadcastmodels.Notification, *broadcastdto.NotificationCreateInput, *broadcastdto.NotificationUpdateInput](
			notificationService,
		),
		notificationService: notificationService,
		recipientService:    recipientService,
	}, nil
}

// HandleRenderCard render adaptive card của một notification.
// GET /broadcast/notifications/:id/card
// Query params:
//   - preview: "true" thì render ở chế độ preview (không rewrite click-URL)
//   - viewerId: render theo trạng thái vote của người nhận này (nếu có)
func (h *NotificationHandler) HandleRenderCard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		notification, err := h.notificationService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.notificationService.PrepareForRender(&notification)

		viewer := broadcastdto.ViewerState{
			IsPreview: c.Query("preview") == "true",
		}
		if viewerID := c.Query("viewerId"); viewerID != "" {
			recipient, err := h.recipientService.GetByRecipient(c.Context(), id, viewerID)
			if err == nil && recipient.HasVoted {
				viewer.HasVoted = true
				viewer.SelectedChoices = recipient.SelectedChoices
			}
		}

		card, err := broadcastsvc.BuildCard(&notification, viewer)
		h.HandleResponse(c, card, err)
		return nil
	})
}
