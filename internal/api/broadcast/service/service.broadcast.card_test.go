// Package broadcastsvc - test cho card builder.
package broadcastsvc

import (
	"testing"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
	broadcastmodels "broadcast_hub/internal/api/broadcast/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func baseNotification() *broadcastmodels.Notification {
	return &broadcastmodels.Notification{
		ID:    primitive.NewObjectID(),
		Title: "Thông báo quý 3",
	}
}

func TestBuildCard_TitleOnly(t *testing.T) {
	card, err := BuildCard(baseNotification(), broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, "AdaptiveCard", card.Type)
	assert.Equal(t, broadcastdto.CardSchemaVersion, card.Version)
	require.Len(t, card.Body, 1)
	assert.Empty(t, card.Actions)

	title, ok := card.Body[0].(broadcastdto.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "Thông báo quý 3", title.Text)
	assert.Equal(t, broadcastdto.TextSizeExtraLarge, title.Size)
	assert.Equal(t, broadcastdto.TextWeightBolder, title.Weight)
	assert.True(t, title.Wrap)

	assert.Equal(t, map[string]interface{}{"width": "full"}, card.MSTeams)
}

func TestBuildCard_MissingTitle(t *testing.T) {
	n := baseNotification()
	n.Title = "   "
	_, err := BuildCard(n, broadcastdto.ViewerState{})
	assert.Error(t, err)

	_, err = BuildCard(nil, broadcastdto.ViewerState{})
	assert.Error(t, err)
}

func TestBuildCard_BlankFieldsSkipped(t *testing.T) {
	n := baseNotification()
	n.Subtitle = "  "
	n.Summary = "\t"
	n.Author = ""

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	assert.Len(t, card.Body, 1)
}

func TestBuildCard_FullBodyOrder(t *testing.T) {
	n := baseNotification()
	n.Subtitle = "Bản tin nội bộ"
	n.ImageLink = "https://cdn.example.com/banner.png"
	n.Summary = "Tóm tắt nội dung"
	n.Author = "Phòng truyền thông"
	n.TrackingURL = "https://hub.example.com/api/v1/broadcast/track"

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.Len(t, card.Body, 6)

	_, ok := card.Body[0].(broadcastdto.TextBlock)
	assert.True(t, ok, "block 0 phải là title")
	subtitle, ok := card.Body[1].(broadcastdto.TextBlock)
	require.True(t, ok)
	assert.Equal(t, broadcastdto.TextSizeLarge, subtitle.Size)

	image, ok := card.Body[2].(broadcastdto.Image)
	require.True(t, ok)
	assert.Equal(t, broadcastdto.ImageSizeStretch, image.Size)
	assert.Equal(t, map[string]interface{}{"AllowExpand": true}, image.MSTeams)

	summary, ok := card.Body[3].(broadcastdto.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "Tóm tắt nội dung", summary.Text)

	author, ok := card.Body[4].(broadcastdto.TextBlock)
	require.True(t, ok)
	assert.Equal(t, broadcastdto.TextSizeSmall, author.Size)
	assert.Equal(t, broadcastdto.TextWeightLighter, author.Weight)

	// Pixel luôn là block cuối
	pixel, ok := card.Body[5].(broadcastdto.Image)
	require.True(t, ok)
	assert.Equal(t, "https://hub.example.com/api/v1/broadcast/track/?id=[ID]&key=[KEY]", pixel.URL)
	assert.Equal(t, broadcastdto.ImageSizeSmall, pixel.Size)
	require.NotNil(t, pixel.IsVisible)
	assert.False(t, *pixel.IsVisible)
}

func TestBuildCard_SingleButton(t *testing.T) {
	n := baseNotification()
	n.ButtonTitle = "Xem chi tiết"
	n.ButtonLink = "https://example.com/news"

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.Len(t, card.Actions, 1)

	action, ok := card.Actions[0].(*broadcastdto.OpenURLAction)
	require.True(t, ok)
	assert.Equal(t, "Action.OpenUrl", action.Type)
	assert.Equal(t, "Xem chi tiết", action.Title)
}

func TestBuildCard_ButtonsListSuppressesSingleButton(t *testing.T) {
	n := baseNotification()
	n.ButtonTitle = "Nút đơn"
	n.ButtonLink = "https://example.com/one"
	n.Buttons = `[{"title":"A","url":"https://a"},{"Title":"B","Url":"https://b"}]`

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.Len(t, card.Actions, 2)

	first := card.Actions[0].(*broadcastdto.OpenURLAction)
	second := card.Actions[1].(*broadcastdto.OpenURLAction)
	assert.Equal(t, "A", first.Title)
	// Field match không phân biệt hoa thường
	assert.Equal(t, "B", second.Title)
	assert.Equal(t, "https://b", second.URL)
}

func TestBuildCard_MalformedButtonsJSON(t *testing.T) {
	n := baseNotification()
	n.Buttons = `{"not":"a list"}`

	_, err := BuildCard(n, broadcastdto.ViewerState{})
	assert.Error(t, err)
}

func TestBuildCard_ClickURLRewrite(t *testing.T) {
	n := baseNotification()
	n.ButtonTitle = "Đọc thêm"
	n.ButtonLink = "https://x"
	n.ClickRateURL = "https://t"

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.Len(t, card.Actions, 1)

	action := card.Actions[0].(*broadcastdto.OpenURLAction)
	assert.Equal(t, "https://t/?url=https://x&id=[NotificationID]&userId=[UserID]", action.URL)
}

func TestBuildCard_PreviewSkipsRewrite(t *testing.T) {
	n := baseNotification()
	n.ButtonTitle = "Đọc thêm"
	n.ButtonLink = "https://x"
	n.ClickRateURL = "https://t"

	card, err := BuildCard(n, broadcastdto.ViewerState{IsPreview: true})
	require.NoError(t, err)

	action := card.Actions[0].(*broadcastdto.OpenURLAction)
	assert.Equal(t, "https://x", action.URL)
}

func TestBuildCard_TargetedSkipsRewrite(t *testing.T) {
	n := baseNotification()
	n.ButtonTitle = "Đọc thêm"
	n.ButtonLink = "https://x"
	n.ClickRateURL = "https://t"
	n.TeamTargets = []string{"team-19"}

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)

	action := card.Actions[0].(*broadcastdto.OpenURLAction)
	assert.Equal(t, "https://x", action.URL)
}

func TestBuildCard_RewriteAppliesToAllButtons(t *testing.T) {
	n := baseNotification()
	n.Buttons = `[{"title":"A","url":"https://a"},{"title":"B","url":"https://b"}]`
	n.ClickRateURL = "https://t"

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)
	require.Len(t, card.Actions, 2)

	for i, raw := range card.Actions {
		action := raw.(*broadcastdto.OpenURLAction)
		assert.Contains(t, action.URL, "https://t/?url=", "action %d chưa được rewrite", i)
		assert.Contains(t, action.URL, "&id=[NotificationID]&userId=[UserID]")
	}
}

func TestBuildCard_PollWithSubmit(t *testing.T) {
	n := baseNotification()
	n.PollOptions = []string{"Hà Nội", "Đà Nẵng", "Sài Gòn"}

	card, err := BuildCard(n, broadcastdto.ViewerState{})
	require.NoError(t, err)

	require.Len(t, card.Body, 2)
	choiceSet, ok := card.Body[1].(*broadcastdto.ChoiceSetInput)
	require.True(t, ok)
	assert.Equal(t, PollChoiceSetID, choiceSet.ID)
	assert.Len(t, choiceSet.Choices, 3)

	require.Len(t, card.Actions, 1)
	submit, ok := card.Actions[0].(*broadcastdto.SubmitAction)
	require.True(t, ok)
	assert.Equal(t, PollSubmitActionID, submit.ID)
	assert.Equal(t, n.ID.Hex(), submit.Data["notificationId"])
}
