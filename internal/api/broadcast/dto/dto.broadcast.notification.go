// Package broadcastdto - NotificationCreateInput/NotificationUpdateInput.
// File: dto.broadcast.notification.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package broadcastdto

import (
	"encoding/json"
	"strings"

	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
)

// StringList nhận cả hai dạng đầu vào cho các field danh sách:
// mảng JSON (["A","B"]) hoặc chuỗi chứa mảng JSON ("[\"A\",\"B\"]").
// Chuỗi rỗng và sentinel "[]" đều cho ra nil — sentinel chỉ được dịch
// một lần ở đây, phần render không bao giờ kiểm tra lại.
type StringList []string

// UnmarshalJSON parse StringList từ mảng hoặc chuỗi-chứa-mảng
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	// Dạng chuỗi: "" hoặc "[]" là sentinel rỗng, còn lại phải là mảng JSON bên trong
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		inner = strings.TrimSpace(inner)
		if inner == "" || inner == "[]" {
			*l = nil
			return nil
		}
		var items []string
		if err := json.Unmarshal([]byte(inner), &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	// Dạng mảng trực tiếp
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// NotificationCreateInput là body tạo mới notification
type NotificationCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Subtitle    string `json:"subtitle" validate:"omitempty,no_xss"`
	ImageLink   string `json:"imageLink" validate:"omitempty,url"`
	ImageBlob   string `json:"imageBlobName"`
	Summary     string `json:"summary" validate:"omitempty,no_xss"`
	Author      string `json:"author" validate:"omitempty,no_xss"`
	ButtonTitle string `json:"buttonTitle" validate:"omitempty,no_xss"`
	ButtonLink  string `json:"buttonLink" validate:"omitempty,url"`
	Buttons     string `json:"buttons"` // JSON list nút, parse khi render (case-insensitive)

	PollOptions          StringList `json:"pollOptions"`
	PollQuizAnswers      StringList `json:"pollQuizAnswers"`
	IsPollMultipleChoice bool       `json:"isPollMultipleChoice"`

	TeamTargets StringList `json:"teamTargets"`

	TrackingURL  string `json:"trackingUrl" validate:"omitempty,url"`
	ClickRateURL string `json:"clickRateUrl" validate:"omitempty,url"`
}

// ToModel convert DTO sang model. Title chỉ chứa whitespace bị từ chối —
// blank và absent là một ở mọi field khác.
func (input NotificationCreateInput) ToModel() (*broadcastmodels.Notification, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Tiêu đề notification không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	// Đáp án quiz mà không có option là dữ liệu không nhất quán
	if len(input.PollQuizAnswers) > 0 && len(input.PollOptions) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"pollQuizAnswers yêu cầu pollOptions không rỗng",
			common.StatusBadRequest,
			nil,
		)
	}

	return &broadcastmodels.Notification{
		Title:                input.Title,
		Subtitle:             input.Subtitle,
		ImageLink:            input.ImageLink,
		ImageBlob:            input.ImageBlob,
		Summary:              input.Summary,
		Author:               input.Author,
		ButtonTitle:          input.ButtonTitle,
		ButtonLink:           input.ButtonLink,
		Buttons:              input.Buttons,
		PollOptions:          input.PollOptions,
		PollQuizAnswers:      input.PollQuizAnswers,
		IsPollMultipleChoice: input.IsPollMultipleChoice,
		TeamTargets:          input.TeamTargets,
		TrackingURL:          input.TrackingURL,
		ClickRateURL:         input.ClickRateURL,
	}, nil
}

// NotificationUpdateInput là body cập nhật notification (partial update).
// Field nil = không cập nhật. Counter không cập nhật qua endpoint này.
type NotificationUpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,no_xss"`
	Subtitle    *string `json:"subtitle" validate:"omitempty,no_xss"`
	ImageLink   *string `json:"imageLink" validate:"omitempty,url"`
	ImageBlob   *string `json:"imageBlobName"`
	Summary     *string `json:"summary" validate:"omitempty,no_xss"`
	Author      *string `json:"author" validate:"omitempty,no_xss"`
	ButtonTitle *string `json:"buttonTitle" validate:"omitempty,no_xss"`
	ButtonLink  *string `json:"buttonLink" validate:"omitempty,url"`
	Buttons     *string `json:"buttons"`

	PollOptions          *StringList `json:"pollOptions"`
	PollQuizAnswers      *StringList `json:"pollQuizAnswers"`
	IsPollMultipleChoice *bool       `json:"isPollMultipleChoice"`

	TeamTargets *StringList `json:"teamTargets"`

	TrackingURL  *string `json:"trackingUrl" validate:"omitempty,url"`
	ClickRateURL *string `json:"clickRateUrl" validate:"omitempty,url"`
}

// ToSet trả về map các field cần $set (chỉ field có mặt trong body)
func (input NotificationUpdateInput) ToSet() (map[string]interface{}, error) {
	set := make(map[string]interface{})

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tiêu đề notification không được để trống",
				common.StatusBadRequest,
				nil,
			)
		}
		set["title"] = *input.Title
	}
	if input.Subtitle != nil {
		set["subtitle"] = *input.Subtitle
	}
	if input.ImageLink != nil {
		set["imageLink"] = *input.ImageLink
	}
	if input.ImageBlob != nil {
		set["imageBlobName"] = *input.ImageBlob
	}
	if input.Summary != nil {
		set["summary"] = *input.Summary
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}
	if input.ButtonTitle != nil {
		set["buttonTitle"] = *input.ButtonTitle
	}
	if input.ButtonLink != nil {
		set["buttonLink"] = *input.ButtonLink
	}
	if input.Buttons != nil {
		set["buttons"] = *input.Buttons
	}
	if input.PollOptions != nil {
		set["pollOptions"] = []string(*input.PollOptions)
	}
	if input.PollQuizAnswers != nil {
		set["pollQuizAnswers"] = []string(*input.PollQuizAnswers)
	}
	if input.IsPollMultipleChoice != nil {
		set["isPollMultipleChoice"] = *input.IsPollMultipleChoice
	}
	if input.TeamTargets != nil {
		set["teamTargets"] = []string(*input.TeamTargets)
	}
	if input.TrackingURL != nil {
		set["trackingUrl"] = *input.TrackingURL
	}
	if input.ClickRateURL != nil {
		set["clickRateUrl"] = *input.ClickRateURL
	}

	return set, nil
}
