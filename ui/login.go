package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// contextForScreen returns the context screen requests run under. No timeout
// is imposed; screens guard their own stale updates instead.
func contextForScreen() context.Context {
	return context.Background()
}

// loginView is the unauthenticated entry point. Login failures render inline
// under the form and never touch the session.
func (a *App) loginView() fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("admin@example.com")
	password := widget.NewPasswordEntry()

	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance
	errLabel.Hide()

	var submit *widget.Button
	submit = widget.NewButton("Sign In", func() {
		em := strings.TrimSpace(email.Text)
		pw := password.Text
		if em == "" || pw == "" {
			errLabel.SetText("Email and password are required")
			errLabel.Show()
			return
		}
		errLabel.Hide()
		submit.Disable()

		go func() {
			result := a.session.Login(contextForScreen(), em, pw)
			fyne.Do(func() {
				submit.Enable()
				if !result.Success {
					errLabel.SetText(result.Error)
					errLabel.Show()
					return
				}
				a.navigate(RouteDashboard)
			})
			if result.Success {
				a.syncReferenceData()
			}
		}()
	})
	submit.Importance = widget.HighImportance
	password.OnSubmitted = func(string) { submit.OnTapped() }

	form := widget.NewForm(
		widget.NewFormItem("Email", email),
		widget.NewFormItem("Password", password),
	)

	card := container.NewVBox(
		widget.NewLabelWithStyle("Quran Admin", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Sign in to manage the platform", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		form,
		errLabel,
		submit,
	)
	return container.NewCenter(card)
}
