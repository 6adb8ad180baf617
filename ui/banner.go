package ui

import "fyne.io/fyne/v2/widget"

// updateListBanner reflects a list load outcome on the screen banner. The
// importance is set on every call because a prior empty-state pass leaves the
// label at medium and a later failure must show as danger.
func updateListBanner(banner *widget.Label, errMsg, emptyMsg string, empty bool) {
	switch {
	case errMsg != "":
		banner.Importance = widget.DangerImportance
		banner.SetText(errMsg)
		banner.Show()
	case empty:
		banner.Importance = widget.MediumImportance
		banner.SetText(emptyMsg)
		banner.Show()
	default:
		banner.Hide()
	}
}
