package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

type topicsScreen struct {
	app  *App
	list *screen.List[model.Topic]

	items  []model.Topic
	table  *widget.List
	banner *widget.Label
	body   *fyne.Container

	// set when the screen is torn down; in-flight responses check it before
	// touching widgets
	gone bool
}

func newTopicsScreen(a *App) *topicsScreen {
	return &topicsScreen{
		app:  a,
		list: screen.NewList(a.client.ListTopics),
	}
}

func (s *topicsScreen) view() fyne.CanvasObject {
	s.banner = widget.NewLabel("")
	s.banner.Importance = widget.DangerImportance
	s.banner.Hide()

	s.table = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("Topic placeholder")
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

	newBtn := widget.NewButtonWithIcon("New Topic", theme.ContentAddIcon(), func() {
		s.showWizard(nil)
	})
	newBtn.Importance = widget.HighImportance
	if !s.canEdit() {
		newBtn.Hide()
	}

	header := container.NewHBox(
		widget.NewLabelWithStyle("Topics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		newBtn,
	)

	listPage := container.NewBorder(container.NewVBox(header, s.banner), nil, nil, nil, s.table)
	s.body = container.NewStack(listPage)
	s.reload()
	return s.body
}

func (s *topicsScreen) canEdit() bool {
	return rbac.HasPermission(s.app.session.Role(), rbac.PermEditContent)
}

func (s *topicsScreen) reload() {
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
				errMsg = "Failed to load topics: " + errMsg
			}
			updateListBanner(s.banner, errMsg, "No topics yet. Create the first one.", s.list.Empty())
		})
	}()
}

func (s *topicsScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(s.items) {
		return
	}
	topic := s.items[id]
	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	viewBtn := row.Objects[2].(*widget.Button)
	editBtn := row.Objects[3].(*widget.Button)
	delBtn := row.Objects[4].(*widget.Button)

	text := topic.Title
	if topic.Category != "" {
		text += "  [" + topic.Category + "]"
	}
	label.SetText(text)

	viewBtn.OnTapped = func() { s.showDetail(topic.ID) }
	editBtn.OnTapped = func() { s.loadIntoWizard(topic.ID) }
	delBtn.OnTapped = func() { s.confirmDelete(topic) }
	if s.canEdit() {
		editBtn.Show()
		delBtn.Show()
	} else {
		editBtn.Hide()
		delBtn.Hide()
	}
}

// confirmDelete shows the explicit confirmation step; only an accept issues
// the request, and success removes the row locally without a re-fetch.
func (s *topicsScreen) confirmDelete(topic model.Topic) {
	dialog.ShowConfirm("Delete Topic",
		fmt.Sprintf("Delete topic %q? This cannot be undone.", topic.Title),
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				err := s.list.Delete(contextForScreen(),
					func(ctx context.Context) error { return s.app.client.DeleteTopic(ctx, topic.ID) },
					func(t model.Topic) bool { return t.ID == topic.ID })
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

func (s *topicsScreen) showDetail(id int64) {
	go func() {
		payload, err := s.app.client.GetTopic(contextForScreen(), id)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.pushPage(s.detailPage(payload))
		})
	}()
}

func (s *topicsScreen) detailPage(payload *model.TopicPayload) fyne.CanvasObject {
	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		s.popPage()
	})

	info := container.NewVBox(
		widget.NewLabelWithStyle(payload.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(payload.Description),
		widget.NewLabel("Category: "+payload.Category),
	)

	ayahBox := container.NewVBox(widget.NewLabelWithStyle("Ayahs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, a := range payload.Ayahs {
		line := fmt.Sprintf("%d:%d", a.Sura, a.Aya)
		if a.Notes != "" {
			line += " — " + a.Notes
		}
		ayahBox.Add(widget.NewLabel(line))
	}

	hadithBox := container.NewVBox(widget.NewLabelWithStyle("Hadith", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, h := range payload.Hadith {
		lbl := widget.NewLabel(h.Text + "\n— " + h.Source + " (" + h.Authenticity + ")")
		lbl.Wrapping = fyne.TextWrapWord
		hadithBox.Add(lbl)
	}

	return container.NewBorder(
		container.NewHBox(back),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(info, widget.NewSeparator(), ayahBox, widget.NewSeparator(), hadithBox)),
	)
}

func (s *topicsScreen) loadIntoWizard(id int64) {
	go func() {
		payload, err := s.app.client.GetTopic(contextForScreen(), id)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.showWizard(payload)
		})
	}()
}

// showWizard runs the create flow when existing is nil, the edit flow
// otherwise. Server data merges into the draft with first-occurrence-wins
// dedup, and serialization goes through the same container.
func (s *topicsScreen) showWizard(existing *model.TopicPayload) {
	draft := screen.NewTopicDraft()
	if existing != nil {
		draft.MergeServer(existing)
	}
	wiz := screen.NewWizard()
	page := newTopicWizardPage(s, wiz, draft, existing)
	s.pushPage(page.view())
}

func (s *topicsScreen) pushPage(obj fyne.CanvasObject) {
	s.body.Objects = append(s.body.Objects, obj)
	s.body.Refresh()
}

func (s *topicsScreen) popPage() {
	if len(s.body.Objects) > 1 {
		s.body.Objects = s.body.Objects[:len(s.body.Objects)-1]
		s.body.Refresh()
	}
}

func parsePositiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
