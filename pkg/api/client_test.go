package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rashidq/quranadmin/pkg/model"
)

// staticToken is a TokenSource with a fixed value.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// recordingServer captures the last request and replies with the given body.
type recordingServer struct {
	srv     *httptest.Server
	method  string
	path    string
	query   string
	auth    string
	body    []byte
	status  int
	respond string
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{status: http.StatusOK, respond: "{}"}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.RawQuery
		rs.auth = r.Header.Get("Authorization")
		rs.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rs.status)
		io.WriteString(w, rs.respond) //nolint:errcheck
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func TestClientInjectsBearerToken(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"topics":[]}`
	c := NewClient(rs.srv.URL, staticToken("tok-123"))

	if _, err := c.ListTopics(context.Background()); err != nil {
		t.Fatalf("ListTopics: %v", err)
	}
	if rs.auth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", rs.auth, "Bearer tok-123")
	}
}

func TestClientEmptyTokenOmitsHeader(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"topics":[]}`

	for _, c := range []*Client{
		NewClient(rs.srv.URL, staticToken("")),
		NewClient(rs.srv.URL, nil),
	} {
		if _, err := c.ListTopics(context.Background()); err != nil {
			t.Fatalf("ListTopics: %v", err)
		}
		if rs.auth != "" {
			t.Errorf("Authorization = %q, want no header", rs.auth)
		}
	}
}

func TestClientErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error field", http.StatusUnauthorized, `{"error":"Invalid credentials"}`, "Invalid credentials"},
		{"message field", http.StatusForbidden, `{"message":"Superuser access required"}`, "Superuser access required"},
		{"error beats message", http.StatusBadRequest, `{"error":"bad id","message":"other"}`, "bad id"},
		{"unparsable body", http.StatusInternalServerError, `<html>oops</html>`, "Internal Server Error"},
		{"empty body", http.StatusNotFound, ``, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordingServer(t)
			rs.status = tt.status
			rs.respond = tt.body
			c := NewClient(rs.srv.URL, nil)

			_, err := c.ListTopics(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.wantMsg {
				t.Errorf("Error = {%d %q}, want {%d %q}",
					apiErr.Status, apiErr.Message, tt.status, tt.wantMsg)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(&Error{Status: http.StatusUnauthorized}) {
		t.Error("IsUnauthorized(401) = false")
	}
	if IsUnauthorized(&Error{Status: http.StatusForbidden}) {
		t.Error("IsUnauthorized(403) = true")
	}
	if IsUnauthorized(errors.New("plain")) {
		t.Error("IsUnauthorized(non-api error) = true")
	}
}

func TestDeleteQuizRequest(t *testing.T) {
	rs := newRecordingServer(t)
	c := NewClient(rs.srv.URL, staticToken("tok"))

	if err := c.DeleteQuiz(context.Background(), 42); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if rs.method != http.MethodDelete || rs.path != "/api/quizzes/42" {
		t.Errorf("request = %s %s, want DELETE /api/quizzes/42", rs.method, rs.path)
	}
	if rs.auth != "Bearer tok" {
		t.Errorf("Authorization = %q", rs.auth)
	}
}

func TestGetTopicDecodesResponseKeys(t *testing.T) {
	rs := newRecordingServer(t)
	// ayahs come back keyed surah_number/ayah_number, not the sura/aya used
	// on submission
	rs.respond = `{
		"topic": {"id": 7, "title": "Patience", "category": "character"},
		"ayahs": [
			{"surah_number": 2, "ayah_number": 153, "notes": "sabr"},
			{"surah_number": 3, "ayah_number": 200}
		],
		"hadith": [{"hadith_text": "Patience is light", "source": "Muslim"}]
	}`
	c := NewClient(rs.srv.URL, nil)

	got, err := c.GetTopic(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetTopic: %v", err)
	}
	if rs.path != "/api/topics/7" {
		t.Errorf("path = %q", rs.path)
	}

	want := &model.TopicPayload{
		Topic: model.Topic{ID: 7, Title: "Patience", Category: "character"},
		Ayahs: []model.AyahRef{
			{Sura: 2, Aya: 153, Notes: "sabr"},
			{Sura: 3, Aya: 200},
		},
		Hadith: []model.Hadith{{Text: "Patience is light", Source: "Muslim"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetTopic (-want +got):\n%s", diff)
	}
}

func TestCreateQuizBody(t *testing.T) {
	rs := newRecordingServer(t)
	c := NewClient(rs.srv.URL, nil)

	payload := &model.QuizPayload{
		Title: "Surah Basics", Difficulty: "easy",
		TimeLimitMinutes: 15, PassingScore: 70,
		Questions: []model.Question{{
			Text: "How many surahs?", OptionA: "110", OptionB: "114",
			OptionC: "120", OptionD: "99", CorrectAnswer: "B",
		}},
	}
	if err := c.CreateQuiz(context.Background(), payload); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if rs.method != http.MethodPost || rs.path != "/api/quizzes" {
		t.Errorf("request = %s %s", rs.method, rs.path)
	}

	// submissions say title/time_limit, never the response-side
	// name/time_limit_minutes, and carry no id or created_at
	var sent map[string]any
	if err := json.Unmarshal(rs.body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent["title"] != "Surah Basics" {
		t.Errorf(`body title = %v, want "Surah Basics"`, sent["title"])
	}
	if sent["time_limit"] != float64(15) {
		t.Errorf("body time_limit = %v, want 15", sent["time_limit"])
	}
	for _, key := range []string{"name", "time_limit_minutes", "id", "created_at"} {
		if _, ok := sent[key]; ok {
			t.Errorf("body contains response-side key %q", key)
		}
	}
	qs, ok := sent["questions"].([]any)
	if !ok || len(qs) != 1 {
		t.Fatalf("body questions = %v", sent["questions"])
	}
}

func TestGetQuizDecodesResponseKeys(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{
		"quiz": {"id": 5, "name": "Tajweed Basics", "category": "worship",
			"difficulty": "easy", "time_limit_minutes": 15, "passing_score": 70},
		"questions": [{"id": 1, "question_text": "How many surahs?",
			"option_a": "110", "option_b": "114", "option_c": "120", "option_d": "99",
			"correct_answer": "B"}]
	}`
	c := NewClient(rs.srv.URL, nil)

	got, err := c.GetQuiz(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if got.Quiz.Title != "Tajweed Basics" {
		t.Errorf("Title = %q, want the response's name field", got.Quiz.Title)
	}
	if got.Quiz.TimeLimitMinutes != 15 || got.Quiz.PassingScore != 70 {
		t.Errorf("quiz = %+v", got.Quiz)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectAnswer != "B" {
		t.Errorf("questions = %+v", got.Questions)
	}
}

func TestListSurahsDecodesResponseKeys(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"surahs": [
		{"surah_number": 1, "surah_name_arabic": "الفاتحة",
			"surah_name_english": "Al-Fatihah", "total_ayahs": 7},
		{"surah_number": 2, "surah_name_arabic": "البقرة",
			"surah_name_english": "Al-Baqarah", "total_ayahs": 286}
	]}`
	c := NewClient(rs.srv.URL, nil)

	got, err := c.ListSurahs(context.Background())
	if err != nil {
		t.Fatalf("ListSurahs: %v", err)
	}
	if rs.path != "/api/quran/surahs" {
		t.Errorf("path = %q", rs.path)
	}

	want := []model.Surah{
		{Number: 1, Name: "الفاتحة", EnglishName: "Al-Fatihah", AyahCount: 7},
		{Number: 2, Name: "البقرة", EnglishName: "Al-Baqarah", AyahCount: 286},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListSurahs (-want +got):\n%s", diff)
	}
}

func TestListTranslationsDecodesResponseKeys(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"translations": [
		{"translator": "Pickthall", "language": "en", "total_ayahs": 6236}
	]}`
	c := NewClient(rs.srv.URL, nil)

	got, err := c.ListTranslations(context.Background())
	if err != nil {
		t.Fatalf("ListTranslations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("translations = %v", got)
	}
	if got[0].Translator != "Pickthall" || got[0].AyahCount != 6236 {
		t.Errorf("translation = %+v", got[0])
	}
	if got[0].Key() != "Pickthall/en" {
		t.Errorf("Key = %q", got[0].Key())
	}
}

func TestGetAyah(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"ayah": {"sura": 2, "aya": 255, "ayah_arabic": "اللّهُ لا إِلَهَ إِلاَّ هُوَ"}}`
	c := NewClient(rs.srv.URL, nil)

	got, err := c.GetAyah(context.Background(), 2, 255)
	if err != nil {
		t.Fatalf("GetAyah: %v", err)
	}
	if rs.path != "/api/quran/ayah/2/255" {
		t.Errorf("path = %q", rs.path)
	}
	if got != "اللّهُ لا إِلَهَ إِلاَّ هُوَ" {
		t.Errorf("GetAyah = %q, want the ayah_arabic field", got)
	}
}

func TestListUsersQuery(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"data": {
		"users": [{"id": 3, "email": "aisha@example.com", "first_name": "Aisha", "status": "active"}],
		"pagination": {"currentPage": 2, "totalPages": 5, "totalUsers": 93}
	}}`
	c := NewClient(rs.srv.URL, staticToken("tok"))

	page, err := c.ListUsers(context.Background(), UserQuery{
		Page: 2, Limit: 20, Search: "ais", Status: "active",
	})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if rs.path != "/api/admin/users" {
		t.Errorf("path = %q", rs.path)
	}
	for _, want := range []string{"page=2", "limit=20", "search=ais", "status=active"} {
		if !strings.Contains(rs.query, want) {
			t.Errorf("query %q missing %q", rs.query, want)
		}
	}

	if len(page.Users) != 1 || page.Users[0].FirstName != "Aisha" {
		t.Errorf("Users = %+v", page.Users)
	}
	wantPg := model.Pagination{CurrentPage: 2, TotalPages: 5, TotalUsers: 93}
	if diff := cmp.Diff(wantPg, page.Pagination); diff != "" {
		t.Errorf("Pagination (-want +got):\n%s", diff)
	}
}

func TestListUsersOmitsZeroParams(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"data": {"users": [], "pagination": {}}}`
	c := NewClient(rs.srv.URL, nil)

	if _, err := c.ListUsers(context.Background(), UserQuery{}); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if rs.query != "" {
		t.Errorf("query = %q, want empty", rs.query)
	}
}

func TestUploadTranslation(t *testing.T) {
	var gotTranslator, gotLanguage, gotFile, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/translations/upload" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotTranslator = r.FormValue("translator_name")
		gotLanguage = r.FormValue("language")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close() //nolint:errcheck
		data, _ := io.ReadAll(f)
		gotFile = string(data)
		gotName = hdr.Filename
		io.WriteString(w, "{}") //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok"))
	err := c.UploadTranslation(context.Background(), "Pickthall", "en",
		"pickthall.txt", strings.NewReader("1|1|In the name of Allah"))
	if err != nil {
		t.Fatalf("UploadTranslation: %v", err)
	}

	if gotTranslator != "Pickthall" || gotLanguage != "en" {
		t.Errorf("form fields = (%q, %q)", gotTranslator, gotLanguage)
	}
	if gotName != "pickthall.txt" || gotFile != "1|1|In the name of Allah" {
		t.Errorf("file part = (%q, %q)", gotName, gotFile)
	}
}

func TestTranslationPathsEscapeKey(t *testing.T) {
	rs := newRecordingServer(t)
	c := NewClient(rs.srv.URL, nil)

	if err := c.DeleteTranslation(context.Background(), "Saheeh International", "en"); err != nil {
		t.Fatalf("DeleteTranslation: %v", err)
	}
	if rs.path != "/api/translations/Saheeh International/en" {
		t.Errorf("decoded path = %q", rs.path)
	}
	if rs.method != http.MethodDelete {
		t.Errorf("method = %q", rs.method)
	}
}

func TestLoginRejectedEnvelope(t *testing.T) {
	rs := newRecordingServer(t)
	rs.respond = `{"success": false, "message": "Account is inactive"}`
	c := NewClient(rs.srv.URL, nil)

	_, _, err := c.Login(context.Background(), "a@b.c", "pw")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Account is inactive" {
		t.Errorf("Error = %+v", apiErr)
	}

	rs.respond = `{"success": false}`
	if _, _, err := c.Login(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrLoginRejected) {
		t.Errorf("error = %v, want ErrLoginRejected", err)
	}
}
