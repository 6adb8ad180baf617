package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/screen"
)

// dashboardScreen renders the four stat cards. The collections are fetched
// concurrently and each card degrades to zero on its own failure.
func (a *App) dashboardScreen() fyne.CanvasObject {
	surahs := statCard("Surahs")
	ayahs := statCard("Total Ayahs")
	topics := statCard("Topics")
	quizzes := statCard("Quizzes")

	grid := container.NewGridWithColumns(4,
		surahs.card, ayahs.card, topics.card, quizzes.card)

	recentTopics := container.NewVBox(widget.NewLabel("Loading..."))
	recentQuizzes := container.NewVBox(widget.NewLabel("Loading..."))
	recent := container.NewGridWithColumns(2,
		widget.NewCard("Recent Topics", "", recentTopics),
		widget.NewCard("Recent Quizzes", "", recentQuizzes),
	)

	dash := &screen.Dashboard{
		Surahs:  a.client.ListSurahs,
		Topics:  a.client.ListTopics,
		Quizzes: a.client.ListQuizzes,
	}
	go func() {
		stats := dash.Load(contextForScreen())
		fyne.Do(func() {
			surahs.set(stats.Surahs)
			ayahs.set(stats.TotalAyahs)
			topics.set(stats.Topics)
			quizzes.set(stats.Quizzes)

			recentTopics.Objects = nil
			for _, t := range stats.RecentTopics {
				recentTopics.Add(widget.NewLabel(t.Title))
			}
			if len(stats.RecentTopics) == 0 {
				recentTopics.Add(widget.NewLabel("No topics yet"))
			}
			recentTopics.Refresh()

			recentQuizzes.Objects = nil
			for _, q := range stats.RecentQuizzes {
				recentQuizzes.Add(widget.NewLabel(q.Title))
			}
			if len(stats.RecentQuizzes) == 0 {
				recentQuizzes.Add(widget.NewLabel("No quizzes yet"))
			}
			recentQuizzes.Refresh()
		})
	}()

	header := widget.NewLabelWithStyle("Dashboard", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewBorder(header, nil, nil, nil, container.NewVBox(grid, recent))
}

type stat struct {
	value *widget.Label
	card  fyne.CanvasObject
}

func statCard(title string) *stat {
	value := widget.NewLabelWithStyle("–", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	card := widget.NewCard(title, "", container.NewCenter(value))
	return &stat{value: value, card: card}
}

func (s *stat) set(n int) {
	s.value.SetText(strconv.Itoa(n))
}
