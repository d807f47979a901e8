// Package utility chứa các helper dùng chung (convert dữ liệu sang map, bson).
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct (hoặc map) thành map[string]interface{} qua bson marshal/unmarshal.
// Dùng bson thay vì json để tôn trọng bson tag của model (omitempty, tên field).
func ToMap(s interface{}) (map[string]interface{}, error) {
	if m, ok := s.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("không thể marshal dữ liệu sang bson: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("không thể unmarshal bson sang map: %w", err)
	}

	return result, nil
}
