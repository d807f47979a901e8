package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentRecipient - Trạng thái gửi/tương tác của một người nhận cho một notification.
// Mỗi cặp (notificationId, recipientId) có đúng một bản ghi (compound unique index).
// ClickStatus là write-once: false → true đúng một lần, chuyển trạng thái qua
// FindOneAndUpdate có điều kiện để click đồng thời không đếm trùng.
type SentRecipient struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NotificationID primitive.ObjectID `json:"notificationId" bson:"notificationId" index:"compound:notification_recipient_unique"`
	RecipientID    string             `json:"recipientId" bson:"recipientId" index:"compound:notification_recipient_unique"`

	// MessageID là id message đã gửi cho người nhận — khóa tra cứu khi reaction event về
	MessageID      string `json:"messageId,omitempty" bson:"messageId,omitempty" index:"single:1"`
	ConversationID string `json:"conversationId,omitempty" bson:"conversationId,omitempty"`

	// Trạng thái gửi (sent, failed)
	DeliveryStatus string `json:"deliveryStatus,omitempty" bson:"deliveryStatus,omitempty"`

	// Click tracking (write-once)
	ClickStatus bool   `json:"clickStatus" bson:"clickStatus"`
	ClickedAt   *int64 `json:"clickedAt,omitempty" bson:"clickedAt,omitempty"`

	// Open tracking (pixel GET /track) - cũng write-once
	ReadStatus bool   `json:"readStatus" bson:"readStatus"`
	ReadAt     *int64 `json:"readAt,omitempty" bson:"readAt,omitempty"`

	// Trạng thái vote poll của người nhận (CSV index đã chọn, rỗng = chưa vote)
	HasVoted        bool   `json:"hasVoted" bson:"hasVoted"`
	SelectedChoices string `json:"selectedChoices,omitempty" bson:"selectedChoices,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
