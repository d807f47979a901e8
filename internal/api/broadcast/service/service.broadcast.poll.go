// Package broadcastsvc - PollEngine (xem service.broadcast.strings.go cho package doc).
// File: service.broadcast.poll.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package broadcastsvc

import (
	"strconv"
	"strings"

	broadcastdto "broadcast_hub/internal/api/broadcast/dto"
)

// ID cố định của các widget poll trong card — flow vote-submission
// nhận diện submit theo các id này.
const (
	PollChoiceSetID    = "PollChoices"
	PollSubmitActionID = "votePoll"
)

// PollRender là kết quả render poll: widget chọn, action submit (nil khi đã vote)
// và các block feedback sau vote.
type PollRender struct {
	ChoiceSet *broadcastdto.ChoiceSetInput
	Submit    *broadcastdto.SubmitAction
	Feedback  []broadcastdto.TextBlock
}

// RenderPoll render phần poll của card theo trạng thái viewer.
// options[i] đúng khi chuỗi strconv.Itoa(i) có mặt trong quizAnswers.
// Hàm thuần: không I/O, không mutation.
func RenderPoll(options []string, quizAnswers []string, isMultipleChoice bool, viewer broadcastdto.ViewerState, notificationID string) PollRender {
	isQuiz := len(quizAnswers) > 0

	answerSet := make(map[string]struct{}, len(quizAnswers))
	for _, a := range quizAnswers {
		answerSet[a] = struct{}{}
	}

	choices := make([]broadcastdto.Choice, 0, len(options))
	for i, option := range options {
		title := option
		if viewer.HasVoted && isQuiz {
			// Sau khi vote, card quiz lộ đáp án: mỗi option gắn suffix đúng/sai
			if _, correct := answerSet[strconv.Itoa(i)]; correct {
				title = title + " " + CardString(StrPollQuizCorrectAnswer)
			} else {
				title = title + " " + CardString(StrPollQuizWrongAnswer)
			}
		}
		choices = append(choices, broadcastdto.Choice{
			Title: title,
			Value: strconv.Itoa(i),
		})
	}

	choiceSet := &broadcastdto.ChoiceSetInput{
		Type:          "Input.ChoiceSet",
		ID:            PollChoiceSetID,
		IsRequired:    true,
		ErrorMessage:  CardString(StrPollSelectOption),
		Style:         broadcastdto.ChoiceStyleExpanded,
		IsMultiSelect: isMultipleChoice,
		Choices:       choices,
	}

	result := PollRender{ChoiceSet: choiceSet}

	if !viewer.HasVoted {
		// Chưa vote: một action submit duy nhất mang notificationId
		result.Submit = &broadcastdto.SubmitAction{
			Type:  "Action.Submit",
			Title: CardString(StrPollSubmitVote),
			ID:    PollSubmitActionID,
			Data:  map[string]interface{}{"notificationId": notificationID},
		}
		return result
	}

	// Đã vote: pre-set lựa chọn của viewer, không cho submit lại
	choiceSet.Value = viewer.SelectedChoices

	if isQuiz && strings.TrimSpace(viewer.SelectedChoices) != "" {
		if GradeQuiz(quizAnswers, viewer.SelectedChoices) {
			result.Feedback = append(result.Feedback, broadcastdto.TextBlock{
				Type:   "TextBlock",
				Text:   CardString(StrPollQuizCorrect),
				Size:   broadcastdto.TextSizeMedium,
				Weight: broadcastdto.TextWeightBolder,
				Color:  broadcastdto.TextColorGood,
				Wrap:   true,
			})
		} else {
			result.Feedback = append(result.Feedback, broadcastdto.TextBlock{
				Type:   "TextBlock",
				Text:   CardString(StrPollQuizWrong),
				Size:   broadcastdto.TextSizeMedium,
				Weight: broadcastdto.TextWeightBolder,
				Color:  broadcastdto.TextColorWarning,
				Wrap:   true,
			})
		}
	} else {
		result.Feedback = append(result.Feedback, broadcastdto.TextBlock{
			Type:   "TextBlock",
			Text:   CardString(StrPollThanks),
			Size:   broadcastdto.TextSizeMedium,
			Weight: broadcastdto.TextWeightBolder,
			Color:  broadcastdto.TextColorGood,
			Wrap:   true,
		})
	}

	return result
}

// GradeQuiz chấm điểm quiz bằng set equality: tập lựa chọn của viewer phải
// trùng khớp chính xác tập đáp án — không tính điểm một phần, chọn thừa cũng sai.
func GradeQuiz(quizAnswers []string, selectedChoices string) bool {
	correct := make(map[string]struct{}, len(quizAnswers))
	for _, a := range quizAnswers {
		correct[a] = struct{}{}
	}

	selected := make(map[string]struct{})
	for _, s := range strings.Split(selectedChoices, ",") {
		selected[s] = struct{}{}
	}

	if len(correct) != len(selected) {
		return false
	}
	for s := range selected {
		if _, ok := correct[s]; !ok {
			return false
		}
	}
	return true
}
