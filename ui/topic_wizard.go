package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/screen"
)

var topicCategories = []string{"faith", "worship", "character", "stories", "general"}

// topicWizardPage drives the three-step create/edit flow for topics.
type topicWizardPage struct {
	owner    *topicsScreen
	wiz      *screen.Wizard
	draft    *screen.TopicDraft
	existing *model.TopicPayload // nil for the create flow

	title    *widget.Entry
	desc     *widget.Entry
	category *widget.Select

	sura        *widget.Entry
	aya         *widget.Entry
	ayahNotes   *widget.Entry
	ayahPreview *widget.Label
	ayahBox     *fyne.Container

	hadithText   *widget.Entry
	hadithSource *widget.Entry
	narrator     *widget.Entry
	authenticity *widget.Select
	hadithBox    *fyne.Container

	stepBody  *fyne.Container
	stepLabel *widget.Label
	backBtn   *widget.Button
	nextBtn   *widget.Button
}

func newTopicWizardPage(owner *topicsScreen, wiz *screen.Wizard, draft *screen.TopicDraft, existing *model.TopicPayload) *topicWizardPage {
	return &topicWizardPage{owner: owner, wiz: wiz, draft: draft, existing: existing}
}

func (p *topicWizardPage) view() fyne.CanvasObject {
	p.title = widget.NewEntry()
	p.title.SetText(p.draft.Info.Title)
	p.desc = widget.NewMultiLineEntry()
	p.desc.SetText(p.draft.Info.Description)
	p.category = widget.NewSelect(topicCategories, nil)
	if p.draft.Info.Category != "" {
		p.category.SetSelected(p.draft.Info.Category)
	} else {
		p.category.SetSelected("general")
	}

	p.sura = widget.NewEntry()
	p.sura.SetPlaceHolder("Surah (1-114)")
	p.aya = widget.NewEntry()
	p.aya.SetPlaceHolder("Ayah")
	p.ayahNotes = widget.NewEntry()
	p.ayahNotes.SetPlaceHolder("Notes (optional)")
	p.ayahPreview = widget.NewLabel("")
	p.ayahPreview.Wrapping = fyne.TextWrapWord
	p.ayahPreview.Hide()
	p.ayahBox = container.NewVBox()

	p.hadithText = widget.NewMultiLineEntry()
	p.hadithText.SetPlaceHolder("Hadith text")
	p.hadithSource = widget.NewEntry()
	p.hadithSource.SetPlaceHolder("Source (e.g. Bukhari)")
	p.narrator = widget.NewEntry()
	p.narrator.SetPlaceHolder("Narrator")
	p.authenticity = widget.NewSelect([]string{"sahih", "hasan", "daif"}, nil)
	p.authenticity.SetSelected("sahih")

	p.stepLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.stepBody = container.NewStack()
	p.backBtn = widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), p.back)
	p.nextBtn = widget.NewButton("Next", p.next)
	p.nextBtn.Importance = widget.HighImportance

	p.refreshSubItems()
	p.renderStep()

	footer := container.NewHBox(p.backBtn, layout.NewSpacer(), p.nextBtn)
	return container.NewBorder(p.stepLabel, footer, nil, nil, p.stepBody)
}

func (p *topicWizardPage) heading() string {
	if p.existing != nil {
		return "Edit Topic"
	}
	return "New Topic"
}

func (p *topicWizardPage) renderStep() {
	var body fyne.CanvasObject
	switch p.wiz.Step() {
	case screen.StepInfo:
		p.stepLabel.SetText(p.heading() + " — 1/3 Info")
		p.nextBtn.SetText("Next")
		body = widget.NewForm(
			widget.NewFormItem("Title", p.title),
			widget.NewFormItem("Description", p.desc),
			widget.NewFormItem("Category", p.category),
		)
	case screen.StepItems:
		p.stepLabel.SetText(p.heading() + " — 2/3 Ayahs & Hadith")
		p.nextBtn.SetText("Next")
		body = p.itemsStep()
	case screen.StepReview:
		p.stepLabel.SetText(p.heading() + " — 3/3 Review")
		p.nextBtn.SetText("Save Topic")
		body = p.reviewStep()
	}
	p.stepBody.Objects = []fyne.CanvasObject{container.NewVScroll(body)}
	p.stepBody.Refresh()
}

func (p *topicWizardPage) itemsStep() fyne.CanvasObject {
	addAyah := widget.NewButtonWithIcon("Add Ayah", theme.ContentAddIcon(), p.addAyah)
	previewBtn := widget.NewButtonWithIcon("Preview", theme.VisibilityIcon(), p.previewAyah)
	ayahForm := container.NewVBox(
		widget.NewLabelWithStyle("Ayah references", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3, p.sura, p.aya, p.ayahNotes),
		container.NewHBox(previewBtn, addAyah),
		p.ayahPreview,
		p.ayahBox,
	)

	addHadith := widget.NewButtonWithIcon("Add Hadith", theme.ContentAddIcon(), p.addHadith)
	hadithForm := container.NewVBox(
		widget.NewLabelWithStyle("Hadith", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.hadithText,
		container.NewGridWithColumns(3, p.hadithSource, p.narrator, p.authenticity),
		addHadith,
		p.hadithBox,
	)

	return container.NewVBox(ayahForm, widget.NewSeparator(), hadithForm)
}

// previewAyah fetches the Arabic text of the entered verse so the operator
// can confirm the reference before adding it.
func (p *topicWizardPage) previewAyah() {
	sura := parsePositiveInt(p.sura.Text)
	aya := parsePositiveInt(p.aya.Text)
	if sura == 0 || aya == 0 {
		p.warn("Enter surah and ayah numbers to preview")
		return
	}
	go func() {
		arabic, err := p.owner.app.client.GetAyah(contextForScreen(), sura, aya)
		fyne.Do(func() {
			if err != nil {
				p.ayahPreview.Hide()
				dialog.ShowError(err, p.owner.app.window)
				return
			}
			p.ayahPreview.SetText(arabic)
			p.ayahPreview.Show()
		})
	}()
}

// addAyah admits a reference into the draft. Missing required fields, a
// duplicate verse, or a reference outside the cached surah metadata all stop
// the add with a warning instead of touching the list.
func (p *topicWizardPage) addAyah() {
	ref := model.AyahRef{
		Sura:  parsePositiveInt(p.sura.Text),
		Aya:   parsePositiveInt(p.aya.Text),
		Notes: p.ayahNotes.Text,
	}
	if err := ref.Validate(); err != nil {
		p.warn(err.Error())
		return
	}
	if cache := p.owner.app.refdata; cache != nil {
		if err := cache.ValidateRef(contextForScreen(), ref); err != nil {
			p.warn(fmt.Sprintf("Verse %d:%d does not exist", ref.Sura, ref.Aya))
			return
		}
	}
	if err := p.draft.Ayahs.Add(ref); err != nil {
		if errors.Is(err, screen.ErrDuplicateItem) {
			p.warn("This ayah is already on the topic")
		} else {
			p.warn(err.Error())
		}
		return
	}
	p.sura.SetText("")
	p.aya.SetText("")
	p.ayahNotes.SetText("")
	p.ayahPreview.Hide()
	p.refreshSubItems()
}

func (p *topicWizardPage) addHadith() {
	h := model.Hadith{
		Text:         p.hadithText.Text,
		Source:       p.hadithSource.Text,
		Narrator:     p.narrator.Text,
		Authenticity: p.authenticity.Selected,
	}
	if err := p.draft.Hadith.Add(h); err != nil {
		if errors.Is(err, screen.ErrDuplicateItem) {
			p.warn("This hadith is already on the topic")
		} else {
			p.warn(err.Error())
		}
		return
	}
	p.hadithText.SetText("")
	p.hadithSource.SetText("")
	p.narrator.SetText("")
	p.refreshSubItems()
}

func (p *topicWizardPage) refreshSubItems() {
	p.ayahBox.Objects = nil
	for _, ref := range p.draft.Ayahs.Items() {
		key := ref.Key()
		line := fmt.Sprintf("%d:%d", ref.Sura, ref.Aya)
		if ref.Notes != "" {
			line += " — " + ref.Notes
		}
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			p.draft.Ayahs.Remove(key)
			p.refreshSubItems()
		})
		remove.Importance = widget.LowImportance
		p.ayahBox.Add(container.NewHBox(widget.NewLabel(line), layout.NewSpacer(), remove))
	}
	p.ayahBox.Refresh()

	p.hadithBox.Objects = nil
	for _, h := range p.draft.Hadith.Items() {
		key := h.Key()
		lbl := widget.NewLabel(h.Text + " — " + h.Source)
		lbl.Wrapping = fyne.TextWrapWord
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			p.draft.Hadith.Remove(key)
			p.refreshSubItems()
		})
		remove.Importance = widget.LowImportance
		p.hadithBox.Add(container.NewBorder(nil, nil, nil, remove, lbl))
	}
	p.hadithBox.Refresh()
}

func (p *topicWizardPage) reviewStep() fyne.CanvasObject {
	payload := p.draft.Payload()
	return container.NewVBox(
		widget.NewLabelWithStyle(payload.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(payload.Description),
		widget.NewLabel("Category: "+payload.Category),
		widget.NewLabel(fmt.Sprintf("%d ayah reference(s), %d hadith", len(payload.Ayahs), len(payload.Hadith))),
	)
}

// back steps backwards; on the first step it exits to the list instead.
func (p *topicWizardPage) back() {
	if _, ok := p.wiz.Back(); !ok {
		p.owner.popPage()
		return
	}
	p.renderStep()
}

func (p *topicWizardPage) next() {
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

func (p *topicWizardPage) captureInfo() {
	p.draft.Info.Title = p.title.Text
	p.draft.Info.Description = p.desc.Text
	p.draft.Info.Category = p.category.Selected
}

// submit sends the accumulated draft as one payload. The single-flight latch
// plus the disabled button keep a double-click from issuing two creates.
func (p *topicWizardPage) submit() {
	if !p.wiz.BeginSubmit() {
		return
	}
	p.nextBtn.Disable()

	payload := p.draft.Payload()
	go func() {
		ctx := contextForScreen()
		var err error
		if p.existing != nil {
			err = p.owner.app.client.UpdateTopic(ctx, p.existing.ID, payload)
		} else {
			err = p.owner.app.client.CreateTopic(ctx, payload)
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

func (p *topicWizardPage) warn(msg string) {
	dialog.ShowInformation("Check your input", msg, p.owner.app.window)
}
