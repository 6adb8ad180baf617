package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrTopicTitleEmpty = errors.New("topic title must not be empty")
var ErrAyahFieldsMissing = errors.New("ayah requires surah and ayah numbers")
var ErrHadithFieldsMissing = errors.New("hadith requires text and source")

// Topic is an editorial topic grouping ayahs and hadith around a theme.
type Topic struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the fields required before a topic draft may be submitted.
func (t *Topic) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTopicTitleEmpty
	}
	return nil
}

// AyahRef is a verse reference attached to a topic. The JSON tags are the
// submission shape; detail responses key the same fields surah_number and
// ayah_number, which the api package maps back into this struct.
type AyahRef struct {
	Sura  int    `json:"sura"`
	Aya   int    `json:"aya"`
	Notes string `json:"notes"`
}

// Key is the natural key used to collapse duplicate references: a verse can
// appear on a topic at most once, whatever its notes say.
func (a AyahRef) Key() string {
	return fmt.Sprintf("%d:%d", a.Sura, a.Aya)
}

// Validate checks the fields required before the reference may join a draft.
func (a AyahRef) Validate() error {
	if a.Sura <= 0 || a.Aya <= 0 {
		return ErrAyahFieldsMissing
	}
	return nil
}

// Hadith is a narrated tradition record attached to a topic.
type Hadith struct {
	Text         string `json:"hadith_text"`
	Source       string `json:"source"`
	Narrator     string `json:"narrator"`
	Authenticity string `json:"authenticity"`
}

// Key is the natural key for dedup; the text itself identifies the narration.
func (h Hadith) Key() string {
	return h.Text
}

// Validate checks the fields required before the hadith may join a draft.
func (h Hadith) Validate() error {
	if strings.TrimSpace(h.Text) == "" || strings.TrimSpace(h.Source) == "" {
		return ErrHadithFieldsMissing
	}
	return nil
}

// TopicPayload is the single request body submitted by the topic wizard,
// and the shape of the detail response for one topic.
type TopicPayload struct {
	Topic
	Ayahs  []AyahRef `json:"ayahs"`
	Hadith []Hadith  `json:"hadith"`
}
