// Package models - các model thuộc domain Broadcast.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification - Một bản tin broadcast: nội dung card + định nghĩa poll + các counter engagement.
// Counter (clickCount, reactionCount, readCount) chỉ được cập nhật qua $inc atomic,
// không bao giờ read-modify-write từ phía application.
type Notification struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Nội dung card
	Title       string `json:"title" bson:"title"`
	Subtitle    string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ImageLink   string `json:"imageLink,omitempty" bson:"imageLink,omitempty"`
	ImageBlob   string `json:"imageBlobName,omitempty" bson:"imageBlobName,omitempty"` // Tên blob, resolve sang URL trước khi render
	Summary     string `json:"summary,omitempty" bson:"summary,omitempty"`
	Author      string `json:"author,omitempty" bson:"author,omitempty"`
	ButtonTitle string `json:"buttonTitle,omitempty" bson:"buttonTitle,omitempty"`
	ButtonLink  string `json:"buttonLink,omitempty" bson:"buttonLink,omitempty"`
	Buttons     string `json:"buttons,omitempty" bson:"buttons,omitempty"` // Danh sách nút dạng JSON (nhiều nút), parse khi render

	// Định nghĩa poll. Slice rỗng/nil = không có poll (sentinel "[]" được dịch ở DTO boundary).
	// QuizAnswers chứa index đúng dưới dạng chuỗi ("0", "2", ...); option i đúng khi "i" có mặt.
	PollOptions          []string `json:"pollOptions,omitempty" bson:"pollOptions,omitempty"`
	PollQuizAnswers      []string `json:"pollQuizAnswers,omitempty" bson:"pollQuizAnswers,omitempty"`
	IsPollMultipleChoice bool     `json:"isPollMultipleChoice" bson:"isPollMultipleChoice"`

	// Phạm vi gửi: danh sách team ID. Rỗng = broadcast không nhắm team cụ thể
	// (khi đó click-URL rewrite được áp dụng lúc render).
	TeamTargets []string `json:"teamTargets,omitempty" bson:"teamTargets,omitempty"`

	// URL tracking (base URL, placeholder [ID]/[KEY]/[NotificationID]/[UserID] do delivery layer thay thế)
	TrackingURL  string `json:"trackingUrl,omitempty" bson:"trackingUrl,omitempty"`
	ClickRateURL string `json:"clickRateUrl,omitempty" bson:"clickRateUrl,omitempty"`

	// Counter engagement (aggregate dùng chung, nhiều recipient ghi đồng thời)
	ClickCount    int64 `json:"clickCount" bson:"clickCount"`
	ReactionCount int64 `json:"reactionCount" bson:"reactionCount"`
	ReadCount     int64 `json:"readCount" bson:"readCount"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty" index:"single,order:-1"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// HasPoll kiểm tra notification có poll hay không
func (n *Notification) HasPoll() bool {
	return len(n.PollOptions) > 0
}

// IsQuiz kiểm tra poll có ở chế độ quiz (có đáp án đúng) hay không
func (n *Notification) IsQuiz() bool {
	return len(n.PollQuizAnswers) > 0
}

// IsUntargeted kiểm tra broadcast có nhắm team cụ thể không.
// Không nhắm team = click-URL rewrite được áp dụng.
func (n *Notification) IsUntargeted() bool {
	return len(n.TeamTargets) == 0
}
