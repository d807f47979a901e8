package global

import (
	"broadcast_hub/config"
	"broadcast_hub/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Broadcast Module Collections (prefix "broadcast_")
	BroadcastNotifications string // Tên collection cho notification (aggregate + nội dung card)
	BroadcastRecipients    string // Tên collection cho sent recipient record (trạng thái từng người nhận)
	BroadcastReactions     string // Tên collection cho reaction record
}

// Các biến toàn cục
var (
	MongoDB_ServerConfig *config.Configuration  // Cấu hình server
	MongoDB_Session      *mongo.Client          // Session kết nối MongoDB
	MongoDB_ColNames     MongoDB_CollectionName // Tên các collection

	// RegistryCollections quản lý các collection đã đăng ký theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// Validate là validator instance dùng chung toàn ứng dụng
	Validate *validator.Validate
)
