// Package broadcastdto - test parse StringList và các DTO boundary.
package broadcastdto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Unmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"mảng trực tiếp", `["A","B"]`, []string{"A", "B"}},
		{"mảng rỗng", `[]`, nil},
		{"chuỗi chứa mảng", `"[\"A\",\"B\"]"`, []string{"A", "B"}},
		{"sentinel chuỗi rỗng", `""`, nil},
		{"sentinel mảng rỗng dạng chuỗi", `"[]"`, nil},
		{"null", `null`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, json.Unmarshal([]byte(tc.input), &l))
			assert.Equal(t, tc.want, []string(l))
		})
	}
}

func TestStringList_UnmarshalRejectsGarbage(t *testing.T) {
	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`"not a json list"`), &l))
	assert.Error(t, json.Unmarshal([]byte(`123`), &l))
}

func TestNotificationCreateInput_ToModel(t *testing.T) {
	input := NotificationCreateInput{
		Title:           "Khảo sát",
		PollOptions:     StringList{"A", "B"},
		PollQuizAnswers: StringList{"1"},
	}
	model, err := input.ToModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, model.PollOptions)
	assert.Equal(t, []string{"1"}, model.PollQuizAnswers)
}

func TestNotificationCreateInput_ToModelRejectsBlankTitle(t *testing.T) {
	input := NotificationCreateInput{Title: "   "}
	_, err := input.ToModel()
	assert.Error(t, err)
}

func TestNotificationCreateInput_ToModelRejectsAnswersWithoutOptions(t *testing.T) {
	input := NotificationCreateInput{
		Title:           "Quiz",
		PollQuizAnswers: StringList{"0"},
	}
	_, err := input.ToModel()
	assert.Error(t, err)
}

func TestNotificationUpdateInput_ToSetPartial(t *testing.T) {
	title := "Tiêu đề mới"
	options := StringList{"A"}
	input := NotificationUpdateInput{
		Title:       &title,
		PollOptions: &options,
	}

	set, err := input.ToSet()
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Equal(t, "Tiêu đề mới", set["title"])
	assert.Equal(t, []string{"A"}, set["pollOptions"])
}

func TestNotificationUpdateInput_ToSetRejectsBlankTitle(t *testing.T) {
	blank := " "
	input := NotificationUpdateInput{Title: &blank}
	_, err := input.ToSet()
	assert.Error(t, err)
}
