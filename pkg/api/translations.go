package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/rashidq/quranadmin/pkg/model"
)

// ListTranslations fetches all uploaded translations.
func (c *Client) ListTranslations(ctx context.Context) ([]model.Translation, error) {
	var resp struct {
		Translations []model.Translation `json:"translations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/translations", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Translations, nil
}

// GetTranslation fetches one translation's verses by its composite key.
func (c *Client) GetTranslation(ctx context.Context, translator, language string) ([]model.TranslatedAyah, error) {
	var resp struct {
		Ayahs []model.TranslatedAyah `json:"ayahs"`
	}
	path := "/api/translations/" + url.PathEscape(translator) + "/" + url.PathEscape(language)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ayahs, nil
}

// TranslationExists checks whether a (translator, language) pair is already
// uploaded, so the upload screen can warn before overwriting.
func (c *Client) TranslationExists(ctx context.Context, translator, language string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	q := url.Values{"translator": {translator}, "language": {language}}
	if err := c.do(ctx, http.MethodGet, "/api/translations/check", q, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// UploadTranslation uploads a translation file as multipart form data.
func (c *Client) UploadTranslation(ctx context.Context, translator, language, fileName string, file io.Reader) error {
	fields := map[string]string{
		"translator_name": translator,
		"language":        language,
	}
	return c.upload(ctx, "/api/translations/upload", fields, "file", fileName, file, nil)
}

// DeleteTranslation deletes a translation by its composite key.
func (c *Client) DeleteTranslation(ctx context.Context, translator, language string) error {
	path := "/api/translations/" + url.PathEscape(translator) + "/" + url.PathEscape(language)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListTranslationLanguages fetches the known language codes for the upload form.
func (c *Client) ListTranslationLanguages(ctx context.Context) ([]string, error) {
	var resp struct {
		Languages []string `json:"languages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/translations/languages", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Languages, nil
}
