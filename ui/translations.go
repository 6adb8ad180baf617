package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/screen"
)

type translationsScreen struct {
	app  *App
	list *screen.List[model.Translation]

	items  []model.Translation
	table  *widget.List
	banner *widget.Label
	body   *fyne.Container
	gone   bool
}

func newTranslationsScreen(a *App) *translationsScreen {
	return &translationsScreen{
		app:  a,
		list: screen.NewList(a.client.ListTranslations),
	}
}

func (s *translationsScreen) view() fyne.CanvasObject {
	s.banner = widget.NewLabel("")
	s.banner.Importance = widget.DangerImportance
	s.banner.Hide()

	s.table = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("Translation placeholder")
			viewBtn := widget.NewButtonWithIcon("", theme.VisibilityIcon(), nil)
			delBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			delBtn.Importance = widget.DangerImportance
			return container.NewHBox(title, layout.NewSpacer(), viewBtn, delBtn)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			s.updateRow(id, obj)
		},
	)

	uploadBtn := widget.NewButtonWithIcon("Upload Translation", theme.UploadIcon(), s.showUpload)
	uploadBtn.Importance = widget.HighImportance

	header := container.NewHBox(
		widget.NewLabelWithStyle("Translations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		uploadBtn,
	)

	listPage := container.NewBorder(container.NewVBox(header, s.banner), nil, nil, nil, s.table)
	s.body = container.NewStack(listPage)
	s.reload()
	return s.body
}

func (s *translationsScreen) reload() {
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
				errMsg = "Failed to load translations: " + errMsg
			}
			updateListBanner(s.banner, errMsg, "No translations uploaded yet.", s.list.Empty())
		})
	}()
}

func (s *translationsScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(s.items) {
		return
	}
	tr := s.items[id]
	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	viewBtn := row.Objects[2].(*widget.Button)
	delBtn := row.Objects[3].(*widget.Button)

	label.SetText(fmt.Sprintf("%s (%s) — %d ayahs", tr.Translator, tr.Language, tr.AyahCount))
	viewBtn.OnTapped = func() { s.showDetail(tr) }
	delBtn.OnTapped = func() { s.confirmDelete(tr) }
}

func (s *translationsScreen) confirmDelete(tr model.Translation) {
	dialog.ShowConfirm("Delete Translation",
		fmt.Sprintf("Delete %s (%s)? This cannot be undone.", tr.Translator, tr.Language),
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				err := s.list.Delete(contextForScreen(),
					func(ctx context.Context) error {
						return s.app.client.DeleteTranslation(ctx, tr.Translator, tr.Language)
					},
					func(t model.Translation) bool { return t.Key() == tr.Key() })
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

func (s *translationsScreen) showDetail(tr model.Translation) {
	go func() {
		ayahs, err := s.app.client.GetTranslation(contextForScreen(), tr.Translator, tr.Language)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.pushPage(s.detailPage(tr, ayahs))
		})
	}()
}

func (s *translationsScreen) detailPage(tr model.Translation, ayahs []model.TranslatedAyah) fyne.CanvasObject {
	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		s.popPage()
	})
	header := container.NewHBox(back,
		widget.NewLabelWithStyle(tr.Translator+" ("+tr.Language+")", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	verses := container.NewVBox()
	for _, a := range ayahs {
		lbl := widget.NewLabel(fmt.Sprintf("%d:%d  %s", a.Sura, a.Aya, a.Text))
		lbl.Wrapping = fyne.TextWrapWord
		verses.Add(lbl)
	}
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(verses))
}

// showUpload collects translator, language, and a file, checking the
// composite key against existing uploads before sending.
func (s *translationsScreen) showUpload() {
	translator := widget.NewEntry()
	translator.SetPlaceHolder("Translator name")
	language := widget.NewSelect([]string{"en"}, nil)
	language.SetSelected("en")

	go func() {
		langs, err := s.app.client.ListTranslationLanguages(contextForScreen())
		if err != nil || len(langs) == 0 {
			return
		}
		fyne.Do(func() {
			language.Options = langs
			language.Refresh()
		})
	}()

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Translator", translator),
			widget.NewFormItem("Language", language),
		),
		widget.NewLabel("Choose the translation file after confirming."),
	)

	d := dialog.NewCustomConfirm("Upload Translation", "Choose File", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(translator.Text)
		lang := language.Selected
		if name == "" || lang == "" {
			dialog.ShowInformation("Check your input", "Translator and language are required", s.app.window)
			return
		}
		s.pickAndUpload(name, lang)
	}, s.app.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

func (s *translationsScreen) pickAndUpload(translator, language string) {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			s.app.showError(err)
			return
		}
		if rc == nil {
			return
		}
		go func() {
			exists, checkErr := s.app.client.TranslationExists(contextForScreen(), translator, language)
			if checkErr == nil && exists {
				fyne.Do(func() {
					dialog.ShowConfirm("Already Exists",
						fmt.Sprintf("A translation by %s (%s) already exists. Overwrite?", translator, language),
						func(ok bool) {
							if !ok {
								rc.Close() //nolint:errcheck
								return
							}
							s.upload(translator, language, rc.URI().Name(), rc)
						}, s.app.window)
				})
				return
			}
			s.upload(translator, language, rc.URI().Name(), rc)
		}()
	}, s.app.window)
}

func (s *translationsScreen) upload(translator, language, fileName string, file fyne.URIReadCloser) {
	go func() {
		defer file.Close() //nolint:errcheck
		err := s.app.client.UploadTranslation(contextForScreen(), translator, language, fileName, file)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			dialog.ShowInformation("Upload", "Translation uploaded", s.app.window)
		})
		s.reload()
	}()
}

func (s *translationsScreen) pushPage(obj fyne.CanvasObject) {
	s.body.Objects = append(s.body.Objects, obj)
	s.body.Refresh()
}

func (s *translationsScreen) popPage() {
	if len(s.body.Objects) > 1 {
		s.body.Objects = s.body.Objects[:len(s.body.Objects)-1]
		s.body.Refresh()
	}
}
