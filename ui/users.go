package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/api"
	"github.com/rashidq/quranadmin/pkg/model"
)

const usersPerPage = 20

// usersScreen manages platform accounts: server-driven pagination with search
// and status filtering, status toggling, deletion, and per-user analytics.
type usersScreen struct {
	app *App

	accounts   []model.Account
	pagination model.Pagination
	page       int
	search     string
	status     string

	table     *widget.List
	banner    *widget.Label
	pageLabel *widget.Label
	statsLine *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	gone      bool
}

func newUsersScreen(a *App) *usersScreen {
	return &usersScreen{app: a, page: 1}
}

func (s *usersScreen) view() fyne.CanvasObject {
	s.banner = widget.NewLabel("")
	s.banner.Importance = widget.DangerImportance
	s.banner.Hide()

	s.statsLine = widget.NewLabel("")
	s.statsLine.TextStyle = fyne.TextStyle{Italic: true}

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search by name or email")
	searchEntry.OnSubmitted = func(q string) {
		s.search = q
		s.page = 1
		s.reload()
	}

	statusSelect := widget.NewSelect([]string{"all", model.StatusActive, model.StatusInactive}, func(v string) {
		if v == "all" {
			s.status = ""
		} else {
			s.status = v
		}
		s.page = 1
		s.reload()
	})
	statusSelect.SetSelected("all")

	s.table = widget.NewList(
		func() int { return len(s.accounts) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("Account placeholder")
			status := widget.NewLabel("")
			detailBtn := widget.NewButtonWithIcon("", theme.InfoIcon(), nil)
			toggleBtn := widget.NewButtonWithIcon("", theme.MediaPauseIcon(), nil)
			delBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			delBtn.Importance = widget.DangerImportance
			return container.NewHBox(name, status, layout.NewSpacer(), detailBtn, toggleBtn, delBtn)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			s.updateRow(id, obj)
		},
	)

	s.pageLabel = widget.NewLabel("")
	s.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if s.page > 1 {
			s.page--
			s.reload()
		}
	})
	s.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		if s.page < s.pagination.TotalPages {
			s.page++
			s.reload()
		}
	})
	pager := container.NewHBox(layout.NewSpacer(), s.prevBtn, s.pageLabel, s.nextBtn)

	header := container.NewVBox(
		container.NewHBox(
			widget.NewLabelWithStyle("Users", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			s.statsLine,
		),
		container.NewBorder(nil, nil, nil, statusSelect, searchEntry),
		s.banner,
	)

	s.reload()
	s.loadStats()
	return container.NewBorder(header, pager, nil, nil, s.table)
}

func (s *usersScreen) reload() {
	query := api.UserQuery{Page: s.page, Limit: usersPerPage, Search: s.search, Status: s.status}
	go func() {
		page, err := s.app.client.ListUsers(contextForScreen(), query)
		fyne.Do(func() {
			if s.gone {
				return
			}
			if err != nil {
				// keep the prior page visible under the banner
				s.banner.SetText("Failed to load users: " + err.Error())
				s.banner.Show()
				return
			}
			s.banner.Hide()
			s.accounts = page.Users
			s.pagination = page.Pagination
			s.table.Refresh()
			s.pageLabel.SetText(fmt.Sprintf("Page %d of %d (%d users)",
				s.pagination.CurrentPage, s.pagination.TotalPages, s.pagination.TotalUsers))
			if s.page <= 1 {
				s.prevBtn.Disable()
			} else {
				s.prevBtn.Enable()
			}
			if s.page >= s.pagination.TotalPages {
				s.nextBtn.Disable()
			} else {
				s.nextBtn.Enable()
			}
		})
	}()
}

func (s *usersScreen) loadStats() {
	go func() {
		stats, err := s.app.client.GetPlatformStats(contextForScreen())
		if err != nil {
			// stats are decoration; the listing works without them
			return
		}
		fyne.Do(func() {
			if s.gone {
				return
			}
			s.statsLine.SetText(fmt.Sprintf("%d users, %d active, %d quiz attempts",
				stats.TotalUsers, stats.ActiveUsers, stats.QuizAttempts))
		})
	}()
}

func (s *usersScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(s.accounts) {
		return
	}
	acct := s.accounts[id]
	row := obj.(*fyne.Container)
	name := row.Objects[0].(*widget.Label)
	status := row.Objects[1].(*widget.Label)
	detailBtn := row.Objects[3].(*widget.Button)
	toggleBtn := row.Objects[4].(*widget.Button)
	delBtn := row.Objects[5].(*widget.Button)

	name.SetText(acct.DisplayName() + "  <" + acct.Email + ">")
	status.SetText("[" + acct.EffectiveStatus() + "]")

	if acct.EffectiveStatus() == model.StatusActive {
		toggleBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		toggleBtn.SetIcon(theme.MediaPlayIcon())
	}

	detailBtn.OnTapped = func() { s.showDetail(acct) }
	toggleBtn.OnTapped = func() { s.confirmToggle(acct) }
	delBtn.OnTapped = func() { s.confirmDelete(acct) }
}

func (s *usersScreen) confirmToggle(acct model.Account) {
	next := acct.ToggledStatus()
	dialog.ShowConfirm("Change Status",
		fmt.Sprintf("Change status of %q to %s?", acct.DisplayName(), next),
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				if err := s.app.client.SetUserStatus(contextForScreen(), acct.ID, next); err != nil {
					s.app.showError(err)
					return
				}
				fyne.Do(func() {
					if s.gone {
						return
					}
					s.reload()
				})
			}()
		}, s.app.window)
}

func (s *usersScreen) confirmDelete(acct model.Account) {
	dialog.ShowConfirm("Delete User",
		fmt.Sprintf("Delete user %q? This action cannot be undone.", acct.DisplayName()),
		func(ok bool) {
			if !ok {
				return
			}
			go func() {
				if err := s.app.client.DeleteUser(contextForScreen(), acct.ID); err != nil {
					s.app.showError(err)
					return
				}
				fyne.Do(func() {
					if s.gone {
						return
					}
					s.reload()
				})
			}()
		}, s.app.window)
}

func (s *usersScreen) showDetail(acct model.Account) {
	go func() {
		analytics, err := s.app.client.GetUserAnalytics(contextForScreen(), acct.ID)
		if err != nil {
			s.app.showError(err)
			return
		}
		fyne.Do(func() {
			content := container.NewVBox(
				widget.NewLabel("Quizzes taken: "+fmt.Sprintf("%d", analytics.QuizzesTaken)),
				widget.NewLabel(fmt.Sprintf("Average score: %.1f%%", analytics.AverageScore)),
				widget.NewLabel(fmt.Sprintf("Topics viewed: %d", analytics.TopicsViewed)),
				widget.NewLabel(fmt.Sprintf("Streak: %d day(s)", analytics.StreakDays)),
				widget.NewLabel("Last active: "+analytics.LastActiveAt),
			)
			d := dialog.NewCustom(acct.DisplayName(), "Close", content, s.app.window)
			d.Resize(fyne.NewSize(380, 240))
			d.Show()
		})
	}()
}
