package screen

import "github.com/rashidq/quranadmin/pkg/model"

// TopicDraft accumulates the topic wizard's state across steps.
type TopicDraft struct {
	Info   model.Topic
	Ayahs  *KeyedList[model.AyahRef]
	Hadith *KeyedList[model.Hadith]
}

// NewTopicDraft creates an empty draft for the create flow.
func NewTopicDraft() *TopicDraft {
	return &TopicDraft{
		Ayahs:  NewKeyedList[model.AyahRef](),
		Hadith: NewKeyedList[model.Hadith](),
	}
}

// MergeServer folds an existing topic into the draft for the edit flow.
// Duplicate ayahs and hadith returned by the backend collapse to their first
// occurrence.
func (d *TopicDraft) MergeServer(payload *model.TopicPayload) {
	d.Info = payload.Topic
	d.Ayahs.Merge(payload.Ayahs)
	d.Hadith.Merge(payload.Hadith)
}

// Payload serializes the draft as the single submission body.
func (d *TopicDraft) Payload() *model.TopicPayload {
	return &model.TopicPayload{
		Topic:  d.Info,
		Ayahs:  d.Ayahs.Items(),
		Hadith: d.Hadith.Items(),
	}
}

// QuizDraft accumulates the quiz wizard's state across steps.
type QuizDraft struct {
	Info      model.Quiz
	Questions *KeyedList[model.Question]
}

// NewQuizDraft creates an empty draft for the create flow.
func NewQuizDraft() *QuizDraft {
	return &QuizDraft{Questions: NewKeyedList[model.Question]()}
}

// MergeServer folds an existing quiz into the draft for the edit flow,
// collapsing questions that share the same text.
func (d *QuizDraft) MergeServer(detail *model.QuizDetail) {
	d.Info = detail.Quiz
	d.Questions.Merge(detail.Questions)
}

// Payload serializes the draft as the single submission body, translating
// the response-shaped Info into the backend's request shape.
func (d *QuizDraft) Payload() *model.QuizPayload {
	return &model.QuizPayload{
		Title:            d.Info.Title,
		Description:      d.Info.Description,
		Category:         d.Info.Category,
		Difficulty:       d.Info.Difficulty,
		TimeLimitMinutes: d.Info.TimeLimitMinutes,
		PassingScore:     d.Info.PassingScore,
		Questions:        d.Questions.Items(),
	}
}
