package model

import "time"

// User statuses accepted by the admin status-toggle endpoint.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserProfile is the logged-in operator's identity as returned by login.
//
// RoleName carries the backend's role string verbatim so the profile
// round-trips through persisted storage unchanged; capability checks always go
// through Role().
type UserProfile struct {
	ID       int64  `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	FullName string `json:"full_name" yaml:"full_name"`
	RoleName string `json:"role" yaml:"role"`
}

// Role parses the backend role string into the closed Role enum.
func (p *UserProfile) Role() Role {
	if p == nil {
		return RoleGuest
	}
	return ParseRole(p.RoleName)
}

// Account is a platform end-user record as listed on the admin users screen.
type Account struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns "First Last", falling back to the email address.
func (a *Account) DisplayName() string {
	name := a.FirstName
	if a.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.LastName
	}
	if name == "" {
		return a.Email
	}
	return name
}

// EffectiveStatus treats a missing status as active, matching the backend.
func (a *Account) EffectiveStatus() string {
	if a.Status == "" {
		return StatusActive
	}
	return a.Status
}

// ToggledStatus returns the status the toggle action would move this account to.
func (a *Account) ToggledStatus() string {
	if a.EffectiveStatus() == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Pagination describes the server-driven paging window of the users listing.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalUsers  int `json:"totalUsers"`
}

// UserAnalytics is the per-user activity summary shown on the user detail screen.
type UserAnalytics struct {
	UserID          int64   `json:"user_id"`
	QuizzesTaken    int     `json:"quizzes_taken"`
	AverageScore    float64 `json:"average_score"`
	TopicsViewed    int     `json:"topics_viewed"`
	LastActiveAt    string  `json:"last_active_at"`
	StreakDays      int     `json:"streak_days"`
	CompletionRate  float64 `json:"completion_rate"`
	TotalTimeSpent  int     `json:"total_time_spent_minutes"`
	FavoriteCategry string  `json:"favorite_category"`
}

// PlatformStats is the aggregate usage summary for the whole platform.
type PlatformStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	QuizAttempts  int `json:"quiz_attempts"`
	TopicsCreated int `json:"topics_created"`
}
