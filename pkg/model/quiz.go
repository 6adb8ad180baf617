package model

import (
	"errors"
	"strings"
	"time"
)

var ErrQuizTitleEmpty = errors.New("quiz title must not be empty")
var ErrQuestionFieldsMissing = errors.New("question requires text and all four options")
var ErrCorrectAnswerInvalid = errors.New("correct answer must be A, B, C, or D")

// Quiz is the metadata of a multiple-choice quiz.
type Quiz struct {
	ID               int64     `json:"id"`
	Title            string    `json:"name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Difficulty       string    `json:"difficulty"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	PassingScore     int       `json:"passing_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks the fields required before a quiz draft may be submitted.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrQuizTitleEmpty
	}
	return nil
}

// Question is one multiple-choice question belonging to a quiz.
type Question struct {
	ID            int64  `json:"id,omitempty"`
	Text          string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Key is the natural key for dedup: the backend has historically returned the
// same question twice under different ids, so identity is the question text.
func (q Question) Key() string {
	return q.Text
}

// Validate checks the fields required before the question may join a draft.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" ||
		q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" {
		return ErrQuestionFieldsMissing
	}
	switch q.CorrectAnswer {
	case "A", "B", "C", "D":
		return nil
	default:
		return ErrCorrectAnswerInvalid
	}
}

// QuizPayload is the single request body submitted by the quiz wizard. The
// backend's request shape differs from its response shape: submissions use
// title and time_limit where responses say name and time_limit_minutes, and
// carry no id or created_at.
type QuizPayload struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Difficulty       string     `json:"difficulty"`
	TimeLimitMinutes int        `json:"time_limit"`
	PassingScore     int        `json:"passing_score"`
	Questions        []Question `json:"questions"`
}

// QuizDetail is the detail response envelope for one quiz.
type QuizDetail struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}
