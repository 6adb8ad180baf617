package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rashidq/quranadmin/pkg/model"
)

// ListQuizzes fetches all quizzes.
func (c *Client) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var resp struct {
		Quizzes []model.Quiz `json:"quizzes"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Quizzes, nil
}

// GetQuiz fetches one quiz with its questions.
func (c *Client) GetQuiz(ctx context.Context, id int64) (*model.QuizDetail, error) {
	var resp model.QuizDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateQuiz submits a new quiz with its questions.
func (c *Client) CreateQuiz(ctx context.Context, payload *model.QuizPayload) error {
	return c.do(ctx, http.MethodPost, "/api/quizzes", nil, payload, nil)
}

// UpdateQuiz replaces an existing quiz and its questions.
func (c *Client) UpdateQuiz(ctx context.Context, id int64, payload *model.QuizPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/quizzes/%d", id), nil, payload, nil)
}

// DeleteQuiz deletes a quiz by id.
func (c *Client) DeleteQuiz(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/quizzes/%d", id), nil, nil, nil)
}
