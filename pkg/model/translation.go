package model

// Translation describes one uploaded Quran translation. Translations have no
// surrogate id; the (translator, language) pair identifies them everywhere.
// The listing says translator; only the multipart upload names the field
// translator_name.
type Translation struct {
	Translator string `json:"translator"`
	Language   string `json:"language"`
	AyahCount  int    `json:"total_ayahs"`
}

// Key is the composite natural key used for routing and dedup.
func (t Translation) Key() string {
	return t.Translator + "/" + t.Language
}

// TranslatedAyah is one verse of a translation as shown on the view screen.
type TranslatedAyah struct {
	Sura int    `json:"sura"`
	Aya  int    `json:"aya"`
	Text string `json:"text"`
}

// Surah is the Quran reference record for one chapter.
type Surah struct {
	Number      int    `json:"surah_number"`
	Name        string `json:"surah_name_arabic"`
	EnglishName string `json:"surah_name_english"`
	AyahCount   int    `json:"total_ayahs"`
}
