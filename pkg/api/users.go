package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rashidq/quranadmin/pkg/model"
)

// UserQuery narrows the admin users listing. Zero values are omitted.
type UserQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// UserPage is one page of the admin users listing.
type UserPage struct {
	Users      []model.Account  `json:"users"`
	Pagination model.Pagination `json:"pagination"`
}

// ListUsers fetches one page of platform accounts.
func (c *Client) ListUsers(ctx context.Context, query UserQuery) (*UserPage, error) {
	q := url.Values{}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Status != "" {
		q.Set("status", query.Status)
	}
	var resp struct {
		Data UserPage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteUser permanently removes a platform account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil, nil)
}

// SetUserStatus toggles an account between active and inactive. This is a
// partial update; the rest of the account is untouched.
func (c *Client) SetUserStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/status", id), nil, body, nil)
}

// GetUserAnalytics fetches the activity summary for one account.
func (c *Client) GetUserAnalytics(ctx context.Context, id int64) (*model.UserAnalytics, error) {
	var resp struct {
		Analytics model.UserAnalytics `json:"analytics"`
	}
	path := fmt.Sprintf("/api/user-analytics/%d/analytics", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Analytics, nil
}

// GetPlatformStats fetches the aggregate platform usage summary.
func (c *Client) GetPlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	var resp struct {
		Stats model.PlatformStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user-analytics/stats/platform", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
