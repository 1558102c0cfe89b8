package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdrill/backend/internal/api"
	"github.com/quizdrill/backend/internal/catalog"
	"github.com/quizdrill/backend/internal/service"
	"github.com/quizdrill/backend/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	bank := `{
		"exam": {"id": "aws-clf", "title": "AWS Cloud Practitioner", "category": "AWS"},
		"questions": [
			{"id": "q1", "question": "Q1?", "choices": ["a", "b"], "answer": "A"},
			{"id": "q2", "question": "Q2?", "choices": ["a", "b"], "answer": "B"},
			{"id": "q3", "question": "Q3?", "choices": ["a", "b"], "answer": "A"}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aws.json"), []byte(bank), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := catalog.NewManager(dir, logger)
	mgr.Reload()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "quizdrill.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	h := api.NewHandler(mgr, service.NewQuizService(mgr, st, logger), logger)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns an http.Client with a cookie jar, so the
// quiz_token cookie survives across requests like in a browser.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := c.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGetCatalog(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp, err := c.Get(srv.URL + "/catalog")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Exams []struct {
			ID            string `json:"id"`
			QuestionCount int    `json:"questionCount"`
		} `json:"exams"`
		Categories  []map[string]any `json:"categories"`
		Diagnostics []string         `json:"diagnostics"`
	}
	decodeBody(t, resp, &body)

	require.Len(t, body.Exams, 1)
	assert.Equal(t, "aws-clf", body.Exams[0].ID)
	assert.Equal(t, 3, body.Exams[0].QuestionCount)
	assert.Len(t, body.Categories, 1)
	assert.Empty(t, body.Diagnostics)
}

func TestGetExam_PoolSizes(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp, err := c.Get(srv.URL + "/exams/aws-clf")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		PoolSizes map[string]int `json:"poolSizes"`
	}
	decodeBody(t, resp, &body)

	// untagged questions count as normal; random sees the whole exam
	assert.Equal(t, map[string]int{"easy": 0, "normal": 3, "hard": 0, "random": 3}, body.PoolSizes)
}

func TestGetExam_NotFound(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp, err := c.Get(srv.URL + "/exams/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStartQuiz_WithholdsAnswerKeys(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp := postJSON(t, c, srv.URL+"/quiz/start", `{"exam_id": "aws-clf", "difficulty": "random", "count": 2}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var raw map[string]any
	decodeBody(t, resp, &raw)

	questions, ok := raw["questions"].([]any)
	require.True(t, ok)
	require.Len(t, questions, 2)
	for _, q := range questions {
		m := q.(map[string]any)
		assert.NotContains(t, m, "answers")
		for _, choice := range m["choices"].([]any) {
			assert.NotContains(t, choice.(map[string]any), "explanation")
		}
	}
}

func TestStartQuiz_ValidationError(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp := postJSON(t, c, srv.URL+"/quiz/start", `{"exam_id": "aws-clf", "count": 99}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuizFlow_StartSubmit(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp := postJSON(t, c, srv.URL+"/quiz/start", `{"exam_id": "aws-clf", "count": 3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// the cookie from start identifies the session on reload
	resp, err := c.Get(srv.URL + "/quiz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, c, srv.URL+"/quiz/submit", `{"answers": {"q1": "A", "q2": "A", "q3": "A"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Result struct {
			Total     int    `json:"total"`
			Correct   int    `json:"correct"`
			Incorrect int    `json:"incorrect"`
			ResultID  string `json:"resultId"`
		} `json:"result"`
		Record struct {
			ScorePercent int `json:"scorePercent"`
		} `json:"record"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, 3, body.Result.Total)
	assert.Equal(t, 2, body.Result.Correct)
	assert.Equal(t, 1, body.Result.Incorrect)
	assert.NotEmpty(t, body.Result.ResultID)
	assert.Equal(t, 67, body.Record.ScorePercent)

	// the session was cleared by grading
	resp, err = c.Get(srv.URL + "/quiz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetQuiz_NoSession(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp, err := c.Get(srv.URL + "/quiz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelection_Sticky(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/selection", strings.NewReader(`{"categoryId": "aws", "examId": "aws-clf", "difficulty": "weird"}`))
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = c.Get(srv.URL + "/selection")
	require.NoError(t, err)

	var prefs store.Preferences
	decodeBody(t, resp, &prefs)
	assert.Equal(t, store.Preferences{CategoryID: "aws", ExamID: "aws-clf", Difficulty: "random"}, prefs)
}

func TestHistoryView(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t)

	resp := postJSON(t, c, srv.URL+"/history/view", `{"result": {
		"examId": "old-exam",
		"questions": [{"question": "Q?", "answer": "A", "userAnswer": "B"}]
	}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total     int `json:"total"`
		Incorrect int `json:"incorrect"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 1, body.Incorrect)

	resp = postJSON(t, c, srv.URL+"/history/view", `{"result": {"questions": []}}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
