package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reaction - Một reaction của user trên message đã gửi.
// Khóa theo (messageId, userId): add là upsert, remove là delete bản ghi.
// Bản ghi chỉ lưu trạng thái hiện tại; reactionCount trên Notification đếm
// số sự kiện add từng xảy ra và không giảm khi remove.
type Reaction struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MessageID string             `json:"messageId" bson:"messageId" index:"compound:message_user_unique"`
	UserID    string             `json:"userId" bson:"userId" index:"compound:message_user_unique"`

	ConversationID string `json:"conversationId,omitempty" bson:"conversationId,omitempty"`
	UserName       string `json:"userName,omitempty" bson:"userName,omitempty"`
	ReactionLabel  string `json:"reactionLabel" bson:"reactionLabel"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
