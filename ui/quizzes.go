package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/rbac"
	"github.com/rashidq/quranadmin/pkg/screen"
)

type quizzesScreen struct {
	app  *App
	list *screen.List[model.Quiz]

	items  []model.Quiz
	table  *widget.List
	banner *widget.Label
	body   *fyne.Container
	gone   bool
}

func newQuizzesScreen(a *App) *quizzesScreen {
	return &quizzesScreen{
		app:  a,
		list: screen.NewList(a.client.ListQuizzes),
	}
}

func (s *quizzesScreen) view() fyne.CanvasObject {
	s.banner = widget.NewLabel("")
	s.banner.Importance = widget.DangerImportance
	s.banner.Hide()

	s.table = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("Quiz placeholder")
			viewBtn := widget.NewButtonWithIcon("", theme.VisibilityIcon(), nil)
			editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
			delBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			delBtn.Importance = widget.DangerImportance
			return container.NewHBox(title, layout.NewSpacer(), viewBtn, editBtn, delBtn)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			s.updateRow(id, obj)
		},
	)

	newBtn := widget.NewButtonWithIcon("New Quiz", theme.ContentAddIcon(), func() {
		s.showWizard(nil)
	})
	newBtn.Importance = widget.HighImportance
	if !rbac.HasPermission(s.app.session.Role(), rbac.PermEditContent) {
		newBtn.Hide()
	}

	header := container.NewHBox(
		widget.NewLabelWithStyle("Quizzes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		newBtn,
	)

	listPage := container.NewBorder(container.NewVBox(header, s.banner), nil, nil, nil, s.table)
	s.body = container.NewStack(listPage)
	s.reload()
	return s.body
}

func (s *quizzesScreen) reload() {
	go func() {
		s.list.Load(contextForScreen())
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.items = s.list.Items()
			s.table.Refresh()
			errMsg := s.list.Error()
			if errMsg != "" {
				errMsg = "Failed to load quizzes: " + errMsg
			}
			updateListBanner(s.banner, errMsg, "No quizzes yet. Create the first one.", s.list.Empty())
		})
	}()
}

func (s *quizzesScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(s.items) {
		return
	}
	quiz := s.items[id]
	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	viewBtn := row.Objects[2].(*widget.Button)
	editBtn := row.Objects[3].(*widget.Button)
	delBtn := row.Objects[4].(*widget.Button)

	label.SetText(fmt.Sprintf("%s  [%s / %s]", quiz.Title, quiz.Category, quiz.Difficulty))
	viewBtn.OnTapped = func() { s.showDetail(quiz.ID) }
	editBtn.OnTapped = func() { s.loadIntoWizard(quiz.ID) }
	delBtn.OnTapped = func() { s.confirmDelete(quiz) }
	if rbac.HasPermission(s.app.session.Role(), rbac.PermEditContent) {
		editBtn.Show()
		delBtn.Show()
	} else {
		editBtn.Hide()
		delBtn.Hide()
	}
}

func (s *quizzesScreen) confirmDelete(quiz model.Quiz) {
	dialog.ShowConfirm("Delete Quiz",
		fmt.Sprintf("Delete quiz %q? This cannot be undone.", quiz.Title),
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				err := s.list.Delete(contextForScreen(),
					func(ctx context.Context) error { return s.app.client.DeleteQuiz(ctx, quiz.ID) },
					func(q model.Quiz) bool { return q.ID == quiz.ID })
				if err != nil {
					s.app.showError(err)
					return
				}
				fyne.Do(func() {
					if s.gone {
						return
					}
					s.items = s.list.Items()
					s.table.Refresh()
				})
			}()
		}, s.app.window)
}

func (s *quizzesScreen) showDetail(id int64) {
	go func() {
		detail, err := s.app.client.GetQuiz(contextForScreen(), id)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.pushPage(s.detailPage(detail))
		})
	}()
}

func (s *quizzesScreen) detailPage(detail *model.QuizDetail) fyne.CanvasObject {
	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		s.popPage()
	})

	q := detail.Quiz
	info := container.NewVBox(
		widget.NewLabelWithStyle(q.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(q.Description),
		widget.NewLabel(fmt.Sprintf("%s / %s — %d min, pass at %d%%",
			q.Category, q.Difficulty, q.TimeLimitMinutes, q.PassingScore)),
	)

	questions := container.NewVBox()
	for i, question := range detail.Questions {
		lbl := widget.NewLabel(fmt.Sprintf("%d. %s (answer: %s)", i+1, question.Text, question.CorrectAnswer))
		lbl.Wrapping = fyne.TextWrapWord
		questions.Add(lbl)
	}

	return container.NewBorder(
		container.NewHBox(back),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(info, widget.NewSeparator(), questions)),
	)
}

func (s *quizzesScreen) loadIntoWizard(id int64) {
	go func() {
		detail, err := s.app.client.GetQuiz(contextForScreen(), id)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.showWizard(detail)
		})
	}()
}

func (s *quizzesScreen) showWizard(existing *model.QuizDetail) {
	draft := screen.NewQuizDraft()
	if existing != nil {
		draft.MergeServer(existing)
	}
	page := newQuizWizardPage(s, screen.NewWizard(), draft, existing)
	s.pushPage(page.view())
}

func (s *quizzesScreen) pushPage(obj fyne.CanvasObject) {
	s.body.Objects = append(s.body.Objects, obj)
	s.body.Refresh()
}

func (s *quizzesScreen) popPage() {
	if len(s.body.Objects) > 1 {
		s.body.Objects = s.body.Objects[:len(s.body.Objects)-1]
		s.body.Refresh()
	}
}
