package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rashidq/quranadmin/pkg/model"
)

// ListSurahs fetches the reference list of all 114 surahs.
func (c *Client) ListSurahs(ctx context.Context) ([]model.Surah, error) {
	var resp struct {
		Surahs []model.Surah `json:"surahs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/quran/surahs", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Surahs, nil
}

// GetAyah fetches the Arabic text of one verse, used by the topic wizard to
// preview a reference before it joins the draft.
func (c *Client) GetAyah(ctx context.Context, surah, ayah int) (string, error) {
	var resp struct {
		Ayah struct {
			Arabic string `json:"ayah_arabic"`
		} `json:"ayah"`
	}
	path := fmt.Sprintf("/api/quran/ayah/%d/%d", surah, ayah)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Ayah.Arabic, nil
}
