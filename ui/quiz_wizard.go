package ui

import (
	"errors"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/screen"
)

var quizDifficulties = []string{"easy", "medium", "hard"}

// quizWizardPage drives the three-step create/edit flow for quizzes.
type quizWizardPage struct {
	owner    *quizzesScreen
	wiz      *screen.Wizard
	draft    *screen.QuizDraft
	existing *model.QuizDetail // nil for the create flow

	title      *widget.Entry
	desc       *widget.Entry
	category   *widget.Select
	difficulty *widget.Select
	timeLimit  *widget.Entry
	passScore  *widget.Entry

	qText       *widget.Entry
	qOptions    [4]*widget.Entry
	qCorrect    *widget.Select
	qExplain    *widget.Entry
	questionBox *fyne.Container

	stepBody  *fyne.Container
	stepLabel *widget.Label
	backBtn   *widget.Button
	nextBtn   *widget.Button
}

func newQuizWizardPage(owner *quizzesScreen, wiz *screen.Wizard, draft *screen.QuizDraft, existing *model.QuizDetail) *quizWizardPage {
	return &quizWizardPage{owner: owner, wiz: wiz, draft: draft, existing: existing}
}

func (p *quizWizardPage) view() fyne.CanvasObject {
	info := p.draft.Info
	p.title = widget.NewEntry()
	p.title.SetText(info.Title)
	p.desc = widget.NewMultiLineEntry()
	p.desc.SetText(info.Description)
	p.category = widget.NewSelect(topicCategories, nil)
	if info.Category != "" {
		p.category.SetSelected(info.Category)
	} else {
		p.category.SetSelected("general")
	}
	p.difficulty = widget.NewSelect(quizDifficulties, nil)
	if info.Difficulty != "" {
		p.difficulty.SetSelected(info.Difficulty)
	} else {
		p.difficulty.SetSelected("medium")
	}
	p.timeLimit = widget.NewEntry()
	p.timeLimit.SetText(strconv.Itoa(orDefault(info.TimeLimitMinutes, 15)))
	p.passScore = widget.NewEntry()
	p.passScore.SetText(strconv.Itoa(orDefault(info.PassingScore, 70)))

	p.qText = widget.NewMultiLineEntry()
	p.qText.SetPlaceHolder("Question text")
	for i := range p.qOptions {
		p.qOptions[i] = widget.NewEntry()
		p.qOptions[i].SetPlaceHolder("Option " + string(rune('A'+i)))
	}
	p.qCorrect = widget.NewSelect([]string{"A", "B", "C", "D"}, nil)
	p.qCorrect.SetSelected("A")
	p.qExplain = widget.NewEntry()
	p.qExplain.SetPlaceHolder("Explanation (optional)")
	p.questionBox = container.NewVBox()

	p.stepLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.stepBody = container.NewStack()
	p.backBtn = widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), p.back)
	p.nextBtn = widget.NewButton("Next", p.next)
	p.nextBtn.Importance = widget.HighImportance

	p.refreshQuestions()
	p.renderStep()

	footer := container.NewHBox(p.backBtn, layout.NewSpacer(), p.nextBtn)
	return container.NewBorder(p.stepLabel, footer, nil, nil, p.stepBody)
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func (p *quizWizardPage) heading() string {
	if p.existing != nil {
		return "Edit Quiz"
	}
	return "New Quiz"
}

func (p *quizWizardPage) renderStep() {
	var body fyne.CanvasObject
	switch p.wiz.Step() {
	case screen.StepInfo:
		p.stepLabel.SetText(p.heading() + " — 1/3 Info")
		p.nextBtn.SetText("Next")
		body = widget.NewForm(
			widget.NewFormItem("Title", p.title),
			widget.NewFormItem("Description", p.desc),
			widget.NewFormItem("Category", p.category),
			widget.NewFormItem("Difficulty", p.difficulty),
			widget.NewFormItem("Time limit (min)", p.timeLimit),
			widget.NewFormItem("Passing score (%)", p.passScore),
		)
	case screen.StepItems:
		p.stepLabel.SetText(p.heading() + " — 2/3 Questions")
		p.nextBtn.SetText("Next")
		body = p.questionsStep()
	case screen.StepReview:
		p.stepLabel.SetText(p.heading() + " — 3/3 Review")
		p.nextBtn.SetText("Save Quiz")
		payload := p.draft.Payload()
		body = container.NewVBox(
			widget.NewLabelWithStyle(payload.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(payload.Description),
			widget.NewLabel(fmt.Sprintf("%s / %s — %d question(s)",
				payload.Category, payload.Difficulty, len(payload.Questions))),
		)
	}
	p.stepBody.Objects = []fyne.CanvasObject{container.NewVScroll(body)}
	p.stepBody.Refresh()
}

func (p *quizWizardPage) questionsStep() fyne.CanvasObject {
	addBtn := widget.NewButtonWithIcon("Add Question", theme.ContentAddIcon(), p.addQuestion)
	return container.NewVBox(
		p.qText,
		container.NewGridWithColumns(2, p.qOptions[0], p.qOptions[1]),
		container.NewGridWithColumns(2, p.qOptions[2], p.qOptions[3]),
		container.NewHBox(widget.NewLabel("Correct answer:"), p.qCorrect),
		p.qExplain,
		addBtn,
		widget.NewSeparator(),
		p.questionBox,
	)
}

// addQuestion admits a question into the draft; incomplete fields or a
// duplicate question text stop the add with a warning.
func (p *quizWizardPage) addQuestion() {
	q := model.Question{
		Text:          p.qText.Text,
		OptionA:       p.qOptions[0].Text,
		OptionB:       p.qOptions[1].Text,
		OptionC:       p.qOptions[2].Text,
		OptionD:       p.qOptions[3].Text,
		CorrectAnswer: p.qCorrect.Selected,
		Explanation:   p.qExplain.Text,
	}
	if err := p.draft.Questions.Add(q); err != nil {
		if errors.Is(err, screen.ErrDuplicateItem) {
			p.warn("This question already exists")
		} else {
			p.warn(err.Error())
		}
		return
	}
	p.qText.SetText("")
	for i := range p.qOptions {
		p.qOptions[i].SetText("")
	}
	p.qExplain.SetText("")
	p.refreshQuestions()
}

func (p *quizWizardPage) refreshQuestions() {
	p.questionBox.Objects = nil
	for i, q := range p.draft.Questions.Items() {
		key := q.Key()
		lbl := widget.NewLabel(fmt.Sprintf("%d. %s (%s)", i+1, q.Text, q.CorrectAnswer))
		lbl.Wrapping = fyne.TextWrapWord
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			p.draft.Questions.Remove(key)
			p.refreshQuestions()
		})
		remove.Importance = widget.LowImportance
		p.questionBox.Add(container.NewBorder(nil, nil, nil, remove, lbl))
	}
	p.questionBox.Refresh()
}

func (p *quizWizardPage) back() {
	if _, ok := p.wiz.Back(); !ok {
		p.owner.popPage()
		return
	}
	p.renderStep()
}

func (p *quizWizardPage) next() {
	p.captureInfo()
	switch p.wiz.Step() {
	case screen.StepInfo:
		if err := p.draft.Info.Validate(); err != nil {
			p.warn(err.Error())
			return
		}
		p.wiz.Next()
		p.renderStep()
	case screen.StepItems:
		p.wiz.Next()
		p.renderStep()
	case screen.StepReview:
		p.submit()
	}
}

func (p *quizWizardPage) captureInfo() {
	p.draft.Info.Title = p.title.Text
	p.draft.Info.Description = p.desc.Text
	p.draft.Info.Category = p.category.Selected
	p.draft.Info.Difficulty = p.difficulty.Selected
	if n := parsePositiveInt(p.timeLimit.Text); n > 0 {
		p.draft.Info.TimeLimitMinutes = n
	}
	if n := parsePositiveInt(p.passScore.Text); n > 0 {
		p.draft.Info.PassingScore = n
	}
}

func (p *quizWizardPage) submit() {
	if p.draft.Questions.Len() == 0 {
		p.warn("Add at least one question before saving")
		return
	}
	if !p.wiz.BeginSubmit() {
		return
	}
	p.nextBtn.Disable()

	payload := p.draft.Payload()
	go func() {
		ctx := contextForScreen()
		var err error
		if p.existing != nil {
			err = p.owner.app.client.UpdateQuiz(ctx, p.existing.Quiz.ID, payload)
		} else {
			err = p.owner.app.client.CreateQuiz(ctx, payload)
		}
		p.wiz.EndSubmit()

		fyne.Do(func() {
			p.nextBtn.Enable()
			if err != nil {
				dialog.ShowError(err, p.owner.app.window)
				return
			}
			p.owner.popPage()
			p.owner.reload()
		})
	}()
}

func (p *quizWizardPage) warn(msg string) {
	dialog.ShowInformation("Check your input", msg, p.owner.app.window)
}
