// Package broadcastdto - RedirectParams cho endpoint đếm click.
// File: dto.broadcast.redirect.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package broadcastdto

import (
	"strings"

	"broadcast_hub/internal/common"
)

// RedirectParams là params từ URL khi client bấm nút đã rewrite
// Endpoint: GET /api/v1/broadcast/redirect?url=...&id=...&userId=...
type RedirectParams struct {
	URL            string // URL đích gốc
	NotificationID string // ID notification
	UserID         string // ID người nhận
}

// Validate kiểm tra cả ba param đều non-blank.
// Đây là validation error duy nhất của flow click — thiếu record phía sau là benign miss.
func (p *RedirectParams) Validate() error {
	if strings.TrimSpace(p.URL) == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu param url",
			common.StatusBadRequest,
			nil,
		)
	}
	if strings.TrimSpace(p.NotificationID) == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu param id",
			common.StatusBadRequest,
			nil,
		)
	}
	if strings.TrimSpace(p.UserID) == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu param userId",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
