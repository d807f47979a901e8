package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển chuỗi hex sang ObjectID. Trả về NilObjectID nếu chuỗi không hợp lệ
// (caller phải validate bằng primitive.IsValidObjectID trước khi gọi).
func String2ObjectID(id string) primitive.ObjectID {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// ObjectID2String chuyển ObjectID sang chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
