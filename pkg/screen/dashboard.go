package screen

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rashidq/quranadmin/pkg/model"
)

// RecentLimit is how many items the recent-activity panels show.
const RecentLimit = 3

// DashboardStats are the four stat cards plus the recent-activity panels on
// the landing screen.
type DashboardStats struct {
	Surahs     int
	TotalAyahs int
	Topics     int
	Quizzes    int

	RecentTopics  []model.Topic
	RecentQuizzes []model.Quiz
}

// Dashboard fetches its stat collections concurrently. The fetch functions
// are injected so the controller tests without a backend.
type Dashboard struct {
	Surahs  func(context.Context) ([]model.Surah, error)
	Topics  func(context.Context) ([]model.Topic, error)
	Quizzes func(context.Context) ([]model.Quiz, error)
}

// Load fetches all three collections in parallel. Each failure is isolated:
// it logs, degrades that slice to zero, and the other cards still populate.
func (d *Dashboard) Load(ctx context.Context) DashboardStats {
	var stats DashboardStats
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		surahs, err := d.Surahs(ctx)
		if err != nil {
			slog.Warn("dashboard: surahs fetch failed", "err", err)
			return
		}
		stats.Surahs = len(surahs)
		for _, s := range surahs {
			stats.TotalAyahs += s.AyahCount
		}
	}()
	go func() {
		defer wg.Done()
		topics, err := d.Topics(ctx)
		if err != nil {
			slog.Warn("dashboard: topics fetch failed", "err", err)
			return
		}
		stats.Topics = len(topics)
		stats.RecentTopics = topics[:min(len(topics), RecentLimit)]
	}()
	go func() {
		defer wg.Done()
		quizzes, err := d.Quizzes(ctx)
		if err != nil {
			slog.Warn("dashboard: quizzes fetch failed", "err", err)
			return
		}
		stats.Quizzes = len(quizzes)
		stats.RecentQuizzes = quizzes[:min(len(quizzes), RecentLimit)]
	}()
	wg.Wait()

	return stats
}
