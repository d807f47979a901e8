// Package broadcastdto - các DTO thuộc domain Broadcast.
// File: dto.broadcast.card.go - cấu trúc adaptive card trả về cho client renderer.
package broadcastdto

// Schema version cố định của card — client renderer match chính xác theo shape này.
const CardSchemaVersion = "1.0"

// Các giá trị hiển thị dùng trong card document
const (
	TextSizeSmall      = "small"
	TextSizeMedium     = "medium"
	TextSizeLarge      = "large"
	TextSizeExtraLarge = "extraLarge"

	TextWeightBolder  = "bolder"
	TextWeightLighter = "lighter"

	TextColorGood    = "good"
	TextColorWarning = "warning"

	SpacingSmall   = "small"
	SpacingDefault = "default"

	ImageSizeStretch = "stretch"
	ImageSizeSmall   = "small"

	ChoiceStyleExpanded = "expanded"
)

// AdaptiveCard là card document hoàn chỉnh: body là danh sách block có thứ tự,
// actions là danh sách action có thứ tự. MSTeams là vendor-extension (full width).
type AdaptiveCard struct {
	Type    string                 `json:"type"`
	Version string                 `json:"version"`
	Body    []interface{}          `json:"body"`
	Actions []interface{}          `json:"actions"`
	MSTeams map[string]interface{} `json:"msteams,omitempty"`
}

// NewAdaptiveCard tạo card rỗng với schema version cố định
func NewAdaptiveCard() *AdaptiveCard {
	return &AdaptiveCard{
		Type:    "AdaptiveCard",
		Version: CardSchemaVersion,
		Body:    []interface{}{},
		Actions: []interface{}{},
	}
}

// TextBlock là block văn bản trong body
type TextBlock struct {
	Type   string `json:"type"` // "TextBlock"
	Text   string `json:"text"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

// Image là block ảnh trong body. IsVisible dùng pointer để phân biệt
// "không set" (mặc định hiển thị) và false tường minh (tracking pixel).
type Image struct {
	Type      string                 `json:"type"` // "Image"
	URL       string                 `json:"url"`
	Spacing   string                 `json:"spacing,omitempty"`
	Size      string                 `json:"size,omitempty"`
	AltText   string                 `json:"altText"`
	IsVisible *bool                  `json:"isVisible,omitempty"`
	MSTeams   map[string]interface{} `json:"msteams,omitempty"`
}

// Choice là một lựa chọn trong choice set
type Choice struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ChoiceSetInput là input widget cho poll
type ChoiceSetInput struct {
	Type          string   `json:"type"` // "Input.ChoiceSet"
	ID            string   `json:"id"`
	IsRequired    bool     `json:"isRequired"`
	ErrorMessage  string   `json:"errorMessage,omitempty"`
	Style         string   `json:"style"`
	IsMultiSelect bool     `json:"isMultiSelect"`
	Value         string   `json:"value,omitempty"`
	Choices       []Choice `json:"choices"`
}

// OpenURLAction là action mở URL (nút bấm)
type OpenURLAction struct {
	Type  string `json:"type"` // "Action.OpenUrl"
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SubmitAction là action submit (vote poll). Data mang notificationId
// để flow vote-submission xác định notification đích.
type SubmitAction struct {
	Type  string                 `json:"type"` // "Action.Submit"
	Title string                 `json:"title"`
	ID    string                 `json:"id"`
	Data  map[string]interface{} `json:"data,omitempty"`
}
