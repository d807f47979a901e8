package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LogEngagement ghi một dòng audit cho sự kiện engagement (click, reaction, vote).
// Các handler tracking gọi hàm này sau khi mutation thành công để có vết kiểm tra
// độc lập với app log.
func LogEngagement(action string, notificationID string, userID string, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":          action,
		"notification_id": notificationID,
		"user_id":         userID,
		"details":         details,
		"timestamp":       time.Now().UnixMilli(),
	}).Info("Engagement event")
}
