// Package broadcastsvc - CardBuilder (xem service.broadcast.strings.go cho package doc).
// File: service.broadcast.card.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"encoding/json"
	"strings"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"
	"broadcast_hub/internal/common"
)

// Placeholder literal trong URL tracking — delivery layer thay thế khi gửi,
// card builder không bao giờ resolve.
const (
	PlaceholderNotificationID = "[NotificationID]"
	PlaceholderUserID         = "[UserID]"
	PlaceholderTrackingID     = "[ID]"
	PlaceholderTrackingKey    = "[KEY]"
)

// BuildCard render notification thành adaptive card theo thứ tự block cố định:
// title, subtitle, image (cho phép phóng to), summary, author, poll,
// nút đơn, danh sách nút, rewrite click-URL, tracking pixel, full-width.
// Hàm thuần và deterministic — cùng input luôn cho cùng card.
// Blank và absent là một: field chỉ chứa whitespace bị bỏ qua, chỉ title bắt buộc.
func BuildCard(n *broadcastmodels.Notification, viewer broadcastdto.ViewerState) (*broadcastdto.AdaptiveCard, error) {
	if n == nil || strings.TrimSpace(n.Title) == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Không thể render card: thiếu tiêu đề notification",
			common.StatusBadRequest,
			nil,
		)
	}

	card := broadcastdto.NewAdaptiveCard()

	// 1. Title — block duy nhất luôn có mặt
	card.Body = append(card.Body, broadcastdto.TextBlock{
		Type:   "TextBlock",
		Text:   n.Title,
		Size:   broadcastdto.TextSizeExtraLarge,
		Weight: broadcastdto.TextWeightBolder,
		Wrap:   true,
	})

	// 2. Subtitle
	if strings.TrimSpace(n.Subtitle) != "" {
		card.Body = append(card.Body, broadcastdto.TextBlock{
			Type: "TextBlock",
			Text: n.Subtitle,
			Size: broadcastdto.TextSizeLarge,
			Wrap: true,
		})
	}

	// 3. Image — kèm hint cho phép client phóng to
	if strings.TrimSpace(n.ImageLink) != "" {
		card.Body = append(card.Body, broadcastdto.Image{
			Type:    "Image",
			URL:     n.ImageLink,
			Spacing: broadcastdto.SpacingDefault,
			Size:    broadcastdto.ImageSizeStretch,
			AltText: "",
			MSTeams: map[string]interface{}{"AllowExpand": true},
		})
	}

	// 4. Summary
	if strings.TrimSpace(n.Summary) != "" {
		card.Body = append(card.Body, broadcastdto.TextBlock{
			Type: "TextBlock",
			Text: n.Summary,
			Wrap: true,
		})
	}

	// 5. Author
	if strings.TrimSpace(n.Author) != "" {
		card.Body = append(card.Body, broadcastdto.TextBlock{
			Type:   "TextBlock",
			Text:   n.Author,
			Size:   broadcastdto.TextSizeSmall,
			Weight: broadcastdto.TextWeightLighter,
			Wrap:   true,
		})
	}

	// 6. Poll — slice rỗng nghĩa là không có poll (sentinel đã dịch ở DTO boundary)
	if n.HasPoll() {
		poll := RenderPoll(n.PollOptions, n.PollQuizAnswers, n.IsPollMultipleChoice, viewer, n.ID.Hex())
		card.Body = append(card.Body, poll.ChoiceSet)
		if poll.Submit != nil {
			card.Actions = append(card.Actions, poll.Submit)
		}
		for _, fb := range poll.Feedback {
			card.Body = append(card.Body, fb)
		}
	}

	// 7. Nút đơn — chỉ khi không có danh sách nút
	if strings.TrimSpace(n.ButtonTitle) != "" &&
		strings.TrimSpace(n.ButtonLink) != "" &&
		strings.TrimSpace(n.Buttons) == "" {
		card.Actions = append(card.Actions, &broadcastdto.OpenURLAction{
			Type:  "Action.OpenUrl",
			Title: n.ButtonTitle,
			URL:   n.ButtonLink,
		})
	}

	// 8. Danh sách nút — JSON list, match field case-insensitive
	if strings.TrimSpace(n.Buttons) != "" {
		buttons, err := parseButtons(n.Buttons)
		if err != nil {
			return nil, err
		}
		for _, b := range buttons {
			card.Actions = append(card.Actions, b)
		}
	}

	// 9. Click-URL rewrite — chỉ khi không preview và broadcast không nhắm team cụ thể
	if !viewer.IsPreview && n.IsUntargeted() && strings.TrimSpace(n.ClickRateURL) != "" {
		for _, action := range card.Actions {
			if open, ok := action.(*broadcastdto.OpenURLAction); ok {
				open.URL = n.ClickRateURL + "/?url=" + open.URL +
					"&id=" + PlaceholderNotificationID + "&userId=" + PlaceholderUserID
			}
		}
	}

	// 10. Tracking pixel — ảnh ẩn, URL mang placeholder [ID]/[KEY]
	if strings.TrimSpace(n.TrackingURL) != "" {
		invisible := false
		card.Body = append(card.Body, broadcastdto.Image{
			Type:      "Image",
			URL:       n.TrackingURL + "/?id=" + PlaceholderTrackingID + "&key=" + PlaceholderTrackingKey,
			Spacing:   broadcastdto.SpacingSmall,
			Size:      broadcastdto.ImageSizeSmall,
			AltText:   "",
			IsVisible: &invisible,
		})
	}

	// 11. Full-width hint
	card.MSTeams = map[string]interface{}{"width": "full"}

	return card, nil
}

// parseButtons parse chuỗi JSON danh sách nút thành các OpenURLAction.
// encoding/json match field không phân biệt hoa thường nên "Title"/"title",
// "Url"/"url" đều nhận được.
func parseButtons(buttons string) ([]*broadcastdto.OpenURLAction, error) {
	var parsed []*broadcastdto.OpenURLAction
	if err := json.Unmarshal([]byte(buttons), &parsed); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Danh sách nút không đúng định dạng JSON",
			common.StatusBadRequest,
			err,
		)
	}
	for _, b := range parsed {
		b.Type = "Action.OpenUrl"
	}
	return parsed, nil
}
