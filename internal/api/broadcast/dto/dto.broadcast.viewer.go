// Package broadcastdto - ViewerState (xem dto.broadcast.card.go cho package doc).
// File: dto.broadcast.viewer.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package broadcastdto

// ViewerState là ngữ cảnh render theo từng viewer.
// IsPreview tắt click-URL rewrite; HasVoted + SelectedChoices điều khiển
// nhánh render poll (pre-set lựa chọn, suffix đúng/sai, feedback block).
type ViewerState struct {
	IsPreview bool
	HasVoted  bool
	// SelectedChoices là CSV các index đã chọn ("0,2"), rỗng nếu chưa vote
	SelectedChoices string
}
