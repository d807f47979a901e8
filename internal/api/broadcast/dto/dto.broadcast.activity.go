// Package broadcastdto - Activity/VotePayload cho webhook bot events.
// File: dto.broadcast.activity.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package broadcastdto

import (
	"encoding/json"
	"strings"

	"broadcast_hub/internal/common"
)

// Các loại bot event nhận qua POST /events
const (
	EventReactionAdded   = "reactionAdded"
	EventReactionRemoved = "reactionRemoved"
	EventVoteSubmitted   = "voteSubmitted"
)

// ChannelAccount là danh tính user trong activity
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConversationAccount là hội thoại chứa message gốc
type ConversationAccount struct {
	ID string `json:"id"`
}

// Activity là sự kiện inbound từ bot transport.
// ReplyToID là id message gốc (khóa partition của reaction record),
// From.ID là khóa sub-key. Value chứa payload submit (vote).
type Activity struct {
	ReplyToID    string               `json:"replyToId"`
	From         *ChannelAccount      `json:"from"`
	Conversation *ConversationAccount `json:"conversation"`
	Value        json.RawMessage      `json:"value"`
}

// BotEventInput là body của POST /events
type BotEventInput struct {
	Type          string    `json:"type" validate:"required,oneof=reactionAdded reactionRemoved voteSubmitted"`
	ReactionLabel string    `json:"reactionLabel"`
	RecipientID   string    `json:"recipientId"` // Người nhận đang vote (dùng cho voteSubmitted)
	Activity      *Activity `json:"activity"`
}

// VotePayload là payload submit của action votePoll.
// Decode fail-closed: thiếu notificationId hoặc PollChoices là lỗi,
// không null-propagate như dictionary lookup.
type VotePayload struct {
	NotificationID string `json:"notificationId"`
	PollChoices    string `json:"PollChoices"` // CSV index do choice set submit
}

// DecodeVotePayload decode activity.Value thành VotePayload, fail-closed trên shape lạ
func DecodeVotePayload(raw json.RawMessage) (*VotePayload, error) {
	if len(raw) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Vote payload rỗng",
			common.StatusBadRequest,
			nil,
		)
	}

	var payload VotePayload
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	if err := decoder.Decode(&payload); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Vote payload không đúng định dạng JSON",
			common.StatusBadRequest,
			err,
		)
	}

	if strings.TrimSpace(payload.NotificationID) == "" {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Vote payload thiếu notificationId",
			common.StatusBadRequest,
			nil,
		)
	}
	if strings.TrimSpace(payload.PollChoices) == "" {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Vote payload thiếu PollChoices",
			common.StatusBadRequest,
			nil,
		)
	}

	return &payload, nil
}
