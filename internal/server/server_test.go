package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscan/internal/config"
	apperrors "skillscan/internal/errors"
	"skillscan/internal/observability"
	"skillscan/internal/question"
	"skillscan/internal/session"
)

func newTestServer(t *testing.T, apiKeys []string, rateLimit *config.RateLimitConfig) (*Server, http.Handler) {
	t.Helper()

	logger, err := apperrors.New("error")
	require.NoError(t, err)

	appCfg := &config.Config{
		Interview: config.InterviewConfig{
			DefaultRole:       "SDE",
			DefaultDifficulty: "medium",
		},
		Session: config.SessionConfig{Backend: "memory", TTL: time.Hour},
	}

	store := session.NewMemoryStore(time.Hour, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	srv := NewServer(appCfg, ServerConfig{
		Host:           "localhost",
		Port:           "0",
		Version:        "test",
		TLSConfig:      config.TLSConfig{Mode: "disabled"},
		APIKeys:        apiKeys,
		MaxRequestSize: 1 << 20,
		RateLimit:      rateLimit,
	}, question.NewBank(42), store, logger)
	t.Cleanup(func() {
		if srv.RateLimiter != nil {
			srv.RateLimiter.Close()
		}
	})

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, appCfg)
	require.NoError(t, err)

	return srv, srv.setupRoutes(om)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestStartInterview(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/start", StartInterviewRequest{Role: "SDE", Difficulty: "easy"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[InterviewStartResponse](t, rec)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Question)
	assert.Equal(t, "technical", resp.Kind)
	assert.Equal(t, "SDE", resp.Role)
	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, 1, resp.QuestionNumber)
}

func TestStartInterviewDefaults(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/start", StartInterviewRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[InterviewStartResponse](t, rec)
	assert.Equal(t, "SDE", resp.Role)
	assert.Equal(t, "medium", resp.Difficulty)
}

func TestStartInterviewInvalidDifficulty(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/start", StartInterviewRequest{Difficulty: "brutal"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "Invalid difficulty", resp.Error)
}

func TestStartInterviewWithCompany(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/start", StartInterviewRequest{Company: "Amazon"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[InterviewStartResponse](t, rec)
	assert.Equal(t, "Amazon", resp.Company)
	assert.NotEmpty(t, resp.Question)
}

func TestInterviewAnswerFlow(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	start := decodeJSON[InterviewStartResponse](t,
		postJSON(t, handler, "/interview/start", StartInterviewRequest{Role: "SDE", Difficulty: "medium"}))

	answer := "A hash map stores key value pairs in buckets selected by hashing the key. " +
		"Lookups are constant time on average because the hash narrows the search to one bucket, " +
		"and collisions are handled by chaining or open addressing. For example, resizing keeps " +
		"the load factor bounded so performance stays predictable."

	rec := postJSON(t, handler, "/interview/answer", AnswerRequest{SessionID: start.SessionID, Answer: answer})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[InterviewAnswerResponse](t, rec)
	assert.Equal(t, start.SessionID, resp.SessionID)
	assert.GreaterOrEqual(t, resp.Score, 0)
	assert.LessOrEqual(t, resp.Score, 100)
	assert.NotEmpty(t, resp.NextQuestion)
	assert.NotEmpty(t, resp.NextDifficulty)
	assert.Equal(t, 2, resp.QuestionNumber)
	assert.Equal(t, resp.Score, resp.AverageScore)

	end := postJSON(t, handler, "/interview/end", EndSessionRequest{SessionID: start.SessionID})
	require.Equal(t, http.StatusOK, end.Code)

	summary := decodeJSON[session.Summary](t, end)
	assert.Equal(t, start.SessionID, summary.SessionID)
	assert.Equal(t, 1, summary.TotalQuestions)
	assert.Equal(t, resp.Score, summary.AverageScore)

	// Session is gone after end
	again := postJSON(t, handler, "/interview/end", EndSessionRequest{SessionID: start.SessionID})
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestInterviewAnswerUnknownSession(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/answer", AnswerRequest{SessionID: "missing1", Answer: "an answer with enough words"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInterviewAnswerMissingAnswer(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/interview/answer", AnswerRequest{SessionID: "whatever", Answer: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHRFlow(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	start := decodeJSON[InterviewStartResponse](t, postJSON(t, handler, "/hr/start", struct{}{}))
	assert.Equal(t, "hr", start.Kind)
	assert.NotEmpty(t, start.Question)
	assert.NotEmpty(t, start.FocusAreas)

	answer := "In my previous role our deployment pipeline broke the night before a release. " +
		"I was responsible for coordinating the fix, so I gathered the team, split the " +
		"investigation between the build and the test stages, and we found a misconfigured " +
		"cache key. I fixed the configuration, added a check to catch it earlier, and as a " +
		"result we shipped on time and the failure never recurred."

	rec := postJSON(t, handler, "/hr/answer", AnswerRequest{SessionID: start.SessionID, Answer: answer})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[HRAnswerResponse](t, rec)
	assert.GreaterOrEqual(t, resp.Score, 0)
	assert.LessOrEqual(t, resp.Score, 10)
	assert.False(t, resp.Done)
	assert.NotEmpty(t, resp.NextQuestion)
	assert.NotEqual(t, start.Question, resp.NextQuestion)

	end := postJSON(t, handler, "/hr/end", EndSessionRequest{SessionID: start.SessionID})
	require.Equal(t, http.StatusOK, end.Code)

	summary := decodeJSON[session.Summary](t, end)
	assert.Equal(t, "hr", string(summary.Kind))
	assert.Equal(t, 1, summary.TotalQuestions)
}

func TestHRAnswerRejectsTechnicalSession(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	start := decodeJSON[InterviewStartResponse](t,
		postJSON(t, handler, "/interview/start", StartInterviewRequest{}))

	rec := postJSON(t, handler, "/hr/answer", AnswerRequest{SessionID: start.SessionID, Answer: "a long enough answer for the evaluator"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "Wrong session kind", resp.Error)
}

func TestScoreResume(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	resume := "Built Go microservices with Python tooling, SQL storage, Docker images, " +
		"Git workflows, REST APIs, and AWS deployments backed by solid data structures and algorithms."
	rec := postJSON(t, handler, "/resume/score", ScoreResumeRequest{ResumeText: resume, Role: "SDE"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	score, ok := resp["atsScore"].(float64)
	require.True(t, ok)
	assert.Greater(t, score, float64(0))
}

func TestScoreResumeMissingText(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/resume/score", ScoreResumeRequest{Role: "SDE"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeGaps(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/resume/gaps", ScoreResumeRequest{ResumeText: "Go and SQL experience", Role: "SDE"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp, "priorityImprovementOrder")
	assert.Contains(t, resp, "skillMatchPercentage")
}

func TestReportHandler(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/report", ReportRequest{
		ResumeScore:     80,
		TechnicalScore:  70,
		BehavioralScore: 60,
		Role:            "SDE",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp, "weightedScore")
	assert.Contains(t, resp, "readinessLevel")
}

func TestReportHandlerScoreOutOfRange(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	rec := postJSON(t, handler, "/report", ReportRequest{ResumeScore: 150})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompaniesEndpoints(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[CompaniesResponse](t, rec)
	assert.NotEmpty(t, resp.Companies)

	req = httptest.NewRequest(http.MethodGet, "/companies/strategy?company=Amazon", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/companies/strategy", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "skillscan", resp["service"])

	store, ok := resp["session_store"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, store["healthy"])
}

func TestStatsHandler(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	postJSON(t, handler, "/interview/start", StartInterviewRequest{})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	sessions, ok := resp["sessions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), sessions["active"])

	// The memory store has no circuit breaker to report.
	assert.NotContains(t, sessions, "circuit_breaker")
}

type breakerReportingStore struct {
	session.Store
}

func (breakerReportingStore) BreakerStats() map[string]any {
	return map[string]any{"enabled": true, "state": "closed"}
}

func TestStatsHandlerReportsBreakerState(t *testing.T) {
	srv, handler := newTestServer(t, nil, nil)
	srv.Sessions = breakerReportingStore{Store: srv.Sessions}

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	sessions, ok := resp["sessions"].(map[string]any)
	require.True(t, ok)

	breaker, ok := sessions["circuit_breaker"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, breaker["enabled"])
	assert.Equal(t, "closed", breaker["state"])
}

func TestAuthMiddleware(t *testing.T) {
	_, handler := newTestServer(t, []string{"secret-key-12345"}, nil)

	// Missing key
	rec := postJSON(t, handler, "/interview/start", StartInterviewRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong key
	payload, _ := json.Marshal(StartInterviewRequest{})
	req := httptest.NewRequest(http.MethodPost, "/interview/start", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "wrong-key")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid key via header
	req = httptest.NewRequest(http.MethodPost, "/interview/start", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "secret-key-12345")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Valid key via bearer token
	req = httptest.NewRequest(http.MethodPost, "/interview/start", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret-key-12345")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContentTypeRequired(t *testing.T) {
	_, handler := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/interview/start", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	_, handler := newTestServer(t, nil, &config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 1,
		BurstCapacity:  1,
		ByIP:           true,
		Window:         time.Minute,
	})

	first := postJSON(t, handler, "/interview/start", StartInterviewRequest{})
	assert.Equal(t, http.StatusOK, first.Code)

	second := postJSON(t, handler, "/interview/start", StartInterviewRequest{})
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "12345678****", maskAPIKey("123456789abcdef"))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(req))
}

func TestGetRateLimitKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "ip:10.0.0.1", getRateLimitKey(req, false, true))
	assert.Equal(t, "", getRateLimitKey(req, false, false))

	req.Header.Set("X-API-Key", "abc")
	assert.Equal(t, "api:abc", getRateLimitKey(req, true, true))
}
