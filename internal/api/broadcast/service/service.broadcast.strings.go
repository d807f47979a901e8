// Package broadcastsvc - các service thuộc domain Broadcast.
// File: service.broadcast.strings.go - bảng string hiển thị trên card.
package broadcastsvc

// Khóa tra cứu string hiển thị. Card builder và poll engine chỉ tra cứu
// theo khóa, không quan tâm nội dung — thay provider là đổi được ngôn ngữ.
const (
	StrPollQuizCorrectAnswer = "PollQuizCorrectAnswer" // Suffix cho option đúng
	StrPollQuizWrongAnswer   = "PollQuizWrongAnswer"   // Suffix cho option sai
	StrPollQuizCorrect       = "PollQuizCorrect"       // Feedback khi trả lời đúng hết
	StrPollQuizWrong         = "PollQuizWrong"         // Feedback khi có câu sai
	StrPollThanks            = "PollThanks"            // Cảm ơn đã vote (poll thường)
	StrPollSubmitVote        = "PollSubmitVote"        // Nhãn nút submit vote
	StrPollSelectOption      = "PollSelectOption"      // Error message khi chưa chọn option
)

var cardStrings = map[string]string{
	StrPollQuizCorrectAnswer: "(correct)",
	StrPollQuizWrongAnswer:   "(incorrect)",
	StrPollQuizCorrect:       "All answers are correct!",
	StrPollQuizWrong:         "Some answers are incorrect!",
	StrPollThanks:            "Thanks for voting!",
	StrPollSubmitVote:        "Submit vote",
	StrPollSelectOption:      "Please select at least one option",
}

// CardString tra cứu string hiển thị theo khóa. Khóa lạ trả về chính khóa đó
// để lỗi thiếu string hiện rõ trên card thay vì render rỗng.
func CardString(key string) string {
	if s, ok := cardStrings[key]; ok {
		return s
	}
	return key
}
