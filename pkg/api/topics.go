package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rashidq/quranadmin/pkg/model"
)

// ayahRecord is the ayah shape of the topic detail response. The backend
// reads submissions as sura/aya but writes surah_number/ayah_number, so the
// two directions cannot share one struct.
type ayahRecord struct {
	Sura  int    `json:"surah_number"`
	Aya   int    `json:"ayah_number"`
	Notes string `json:"notes"`
}

// ListTopics fetches all topics.
func (c *Client) ListTopics(ctx context.Context) ([]model.Topic, error) {
	var resp struct {
		Topics []model.Topic `json:"topics"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/topics", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Topics, nil
}

// GetTopic fetches one topic with its ayahs and hadith.
func (c *Client) GetTopic(ctx context.Context, id int64) (*model.TopicPayload, error) {
	var resp struct {
		Topic  model.Topic    `json:"topic"`
		Ayahs  []ayahRecord   `json:"ayahs"`
		Hadith []model.Hadith `json:"hadith"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/topics/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	ayahs := make([]model.AyahRef, len(resp.Ayahs))
	for i, a := range resp.Ayahs {
		ayahs[i] = model.AyahRef{Sura: a.Sura, Aya: a.Aya, Notes: a.Notes}
	}
	return &model.TopicPayload{Topic: resp.Topic, Ayahs: ayahs, Hadith: resp.Hadith}, nil
}

// CreateTopic submits a new topic with its nested ayahs and hadith.
func (c *Client) CreateTopic(ctx context.Context, payload *model.TopicPayload) error {
	return c.do(ctx, http.MethodPost, "/api/topics", nil, payload, nil)
}

// UpdateTopic replaces an existing topic and its nested collections.
func (c *Client) UpdateTopic(ctx context.Context, id int64, payload *model.TopicPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/topics/%d", id), nil, payload, nil)
}

// DeleteTopic deletes a topic by id.
func (c *Client) DeleteTopic(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/topics/%d", id), nil, nil, nil)
}
