// Package broadcastsvc - test cho poll engine.
package broadcastsvc

import (
	"testing"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPoll_NotVoted(t *testing.T) {
	poll := RenderPoll([]string{"A", "B"}, nil, false, broadcastdto.ViewerState{}, "abc123")

	require.NotNil(t, poll.ChoiceSet)
	assert.True(t, poll.ChoiceSet.IsRequired)
	assert.Equal(t, broadcastdto.ChoiceStyleExpanded, poll.ChoiceSet.Style)
	assert.False(t, poll.ChoiceSet.IsMultiSelect)
	require.Len(t, poll.ChoiceSet.Choices, 2)
	assert.Equal(t, "A", poll.ChoiceSet.Choices[0].Title)
	assert.Equal(t, "0", poll.ChoiceSet.Choices[0].Value)
	assert.Equal(t, "1", poll.ChoiceSet.Choices[1].Value)

	require.NotNil(t, poll.Submit)
	assert.Equal(t, "abc123", poll.Submit.Data["notificationId"])
	assert.Empty(t, poll.Feedback)
}

func TestRenderPoll_VotedHasNoSubmit(t *testing.T) {
	viewer := broadcastdto.ViewerState{HasVoted: true, SelectedChoices: "1"}
	poll := RenderPoll([]string{"A", "B"}, nil, false, viewer, "abc123")

	assert.Nil(t, poll.Submit)
	assert.Equal(t, "1", poll.ChoiceSet.Value)

	// Poll thường: feedback cảm ơn
	require.Len(t, poll.Feedback, 1)
	assert.Equal(t, CardString(StrPollThanks), poll.Feedback[0].Text)
	assert.Equal(t, broadcastdto.TextColorGood, poll.Feedback[0].Color)
}

func TestRenderPoll_VotedQuizOptionSuffixes(t *testing.T) {
	viewer := broadcastdto.ViewerState{HasVoted: true, SelectedChoices: "0"}
	poll := RenderPoll([]string{"A", "B"}, []string{"0"}, false, viewer, "abc123")

	assert.Equal(t, "A (correct)", poll.ChoiceSet.Choices[0].Title)
	assert.Equal(t, "B (incorrect)", poll.ChoiceSet.Choices[1].Title)
}

func TestRenderPoll_NotVotedQuizHidesAnswers(t *testing.T) {
	poll := RenderPoll([]string{"A", "B"}, []string{"0"}, false, broadcastdto.ViewerState{}, "abc123")

	assert.Equal(t, "A", poll.ChoiceSet.Choices[0].Title)
	assert.Equal(t, "B", poll.ChoiceSet.Choices[1].Title)
}

func TestRenderPoll_QuizFeedback(t *testing.T) {
	quiz := []string{"0", "2"}

	right := RenderPoll([]string{"A", "B", "C"}, quiz, true,
		broadcastdto.ViewerState{HasVoted: true, SelectedChoices: "2,0"}, "abc123")
	require.Len(t, right.Feedback, 1)
	assert.Equal(t, CardString(StrPollQuizCorrect), right.Feedback[0].Text)
	assert.Equal(t, broadcastdto.TextColorGood, right.Feedback[0].Color)

	wrong := RenderPoll([]string{"A", "B", "C"}, quiz, true,
		broadcastdto.ViewerState{HasVoted: true, SelectedChoices: "0,1"}, "abc123")
	require.Len(t, wrong.Feedback, 1)
	assert.Equal(t, CardString(StrPollQuizWrong), wrong.Feedback[0].Text)
	assert.Equal(t, broadcastdto.TextColorWarning, wrong.Feedback[0].Color)
}

func TestGradeQuiz_SetEquality(t *testing.T) {
	quiz := []string{"0", "2"}

	assert.True(t, GradeQuiz(quiz, "0,2"))
	// Thứ tự không quan trọng
	assert.True(t, GradeQuiz(quiz, "2,0"))
	// Thiếu đáp án là sai
	assert.False(t, GradeQuiz(quiz, "0"))
	// Chọn thừa cũng sai, kể cả khi chứa đủ đáp án đúng
	assert.False(t, GradeQuiz(quiz, "0,1,2"))
	assert.False(t, GradeQuiz(quiz, "1"))
	assert.False(t, GradeQuiz(quiz, ""))
}

func TestGradeQuiz_SingleAnswer(t *testing.T) {
	assert.True(t, GradeQuiz([]string{"1"}, "1"))
	assert.False(t, GradeQuiz([]string{"1"}, "0"))
}
