// Package broadcasthdl - EventHandler.
// File: handler.broadcast.events.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package broadcasthdl

import (
	"fmt"

	basehdl "broadcast_hub/internal/api/base/handler"
	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastsvc "broadcast_hub/internal/api/broadcast/service"
	"broadcast_hub/internal/common"
	"broadcast_hub/internal/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// EventHandler nhận bot event từ transport: reaction thêm/gỡ và submit vote
type EventHandler struct {
	reactionTracker *broadcastsvc.ReactionTracker
	voteFlow        *broadcastsvc.VoteFlow
}

// NewEventHandler tạo mới EventHandler
func NewEventHandler() (*EventHandler, error) {
	notificationService, err := broadcastsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	recipientService, err := broadcastsvc.NewRecipientService()
	if err != nil {
		return nil, err
	}
	reactionService, err := broadcastsvc.NewReactionService()
	if err != nil {
		return nil, err
	}

	return &EventHandler{
		reactionTracker: broadcastsvc.NewReactionTracker(reactionService, recipientService, notificationService),
		voteFlow:        broadcastsvc.NewVoteFlow(notificationService, recipientService),
	}, nil
}

// HandleBotEvent xử lý một bot event.
// POST /broadcast/events
// reactionAdded/reactionRemoved trả về status thành công;
// voteSubmitted trả về card đã render lại ở trạng thái đã-vote.
func (h *EventHandler) HandleBotEvent(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input broadcastdto.BotEventInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Bot event không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := validateBotEvent(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		switch input.Type {
		case broadcastdto.EventReactionAdded:
			err := h.reactionTracker.RecordReactionAdded(c.Context(), input.ReactionLabel, input.Activity)
			basehdl.HandleResponse(c, nil, err)

		case broadcastdto.EventReactionRemoved:
			err := h.reactionTracker.RecordReactionRemoved(c.Context(), input.ReactionLabel, input.Activity)
			basehdl.HandleResponse(c, nil, err)

		case broadcastdto.EventVoteSubmitted:
			card, err := h.handleVote(c, &input)
			basehdl.HandleResponse(c, card, err)
		}
		return nil
	})
}

func (h *EventHandler) handleVote(c fiber.Ctx, input *broadcastdto.BotEventInput) (*broadcastdto.AdaptiveCard, error) {
	if input.Activity == nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Sự kiện vote thiếu activity",
			common.StatusBadRequest,
			nil,
		)
	}

	recipientID := input.RecipientID
	if recipientID == "" && input.Activity.From != nil {
		recipientID = input.Activity.From.ID
	}
	if recipientID == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Sự kiện vote không xác định được người vote",
			common.StatusBadRequest,
			nil,
		)
	}

	payload, err := broadcastdto.DecodeVotePayload(input.Activity.Value)
	if err != nil {
		return nil, err
	}

	return h.voteFlow.SubmitVote(c.Context(), recipientID, payload)
}

// validateBotEvent validate input theo struct tag
func validateBotEvent(input *broadcastdto.BotEventInput) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Bot event không hợp lệ: %v", err),
				common.StatusBadRequest,
				err,
			)
		}
		return common.ErrInvalidInput
	}
	return nil
}
