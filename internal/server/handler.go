package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"skillscan/internal/analysis"
	"skillscan/internal/ats"
	"skillscan/internal/observability"
	"skillscan/internal/question"
	"skillscan/internal/report"
	"skillscan/internal/session"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InterviewStartResponse is returned when a new session is opened.
type InterviewStartResponse struct {
	SessionID      string   `json:"sessionId"`
	Kind           string   `json:"kind"`
	Question       string   `json:"question"`
	Role           string   `json:"role,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	Company        string   `json:"company,omitempty"`
	FocusAreas     []string `json:"focusAreas,omitempty"`
	QuestionNumber int      `json:"questionNumber"`
}

// InterviewAnswerResponse carries the evaluation of one technical answer
// plus the next question at the adjusted difficulty.
type InterviewAnswerResponse struct {
	SessionID      string                       `json:"sessionId"`
	Score          int                          `json:"score"`
	Feedback       string                       `json:"feedback,omitempty"`
	Breakdown      *analysis.TechnicalBreakdown `json:"breakdown,omitempty"`
	NextQuestion   string                       `json:"nextQuestion"`
	NextDifficulty string                       `json:"nextDifficulty"`
	QuestionNumber int                          `json:"questionNumber"`
	AverageScore   int                          `json:"averageScore"`
}

// HRAnswerResponse carries the communication evaluation of one behavioral
// answer. Done is set when the behavioral bank is exhausted.
type HRAnswerResponse struct {
	SessionID    string                   `json:"sessionId"`
	Score        int                      `json:"score"`
	Scores       analysis.DimensionScores `json:"scores"`
	Feedback     analysis.Feedback        `json:"feedback"`
	NextQuestion string                   `json:"nextQuestion,omitempty"`
	FocusAreas   []string                 `json:"focusAreas,omitempty"`
	Done         bool                     `json:"done"`
	AverageScore int                      `json:"averageScore"`
}

// CompaniesResponse lists the company interview styles the question bank
// knows about.
type CompaniesResponse struct {
	Companies []string `json:"companies"`
}

// createStartInterviewHandler opens a technical session on its first question
func (s *Server) createStartInterviewHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.interview.start")
		defer span.End()

		var req StartInterviewRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		role := strings.TrimSpace(req.Role)
		if role == "" {
			role = s.AppConfig.Interview.DefaultRole
		}
		difficultyStr := req.Difficulty
		if difficultyStr == "" {
			difficultyStr = s.AppConfig.Interview.DefaultDifficulty
		}
		difficulty, err := analysis.ParseDifficulty(difficultyStr)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid difficulty", err.Error(), http.StatusBadRequest)
			return
		}

		company := strings.TrimSpace(req.Company)
		var first question.Question
		if company != "" && company != "generic" {
			first = s.Bank.CompanyQuestion(role, difficulty, company)
		} else {
			company = ""
			first = s.Bank.Technical(role, difficulty)
		}

		sess := session.NewTechnical(role, difficulty, company, first)
		if err := s.Sessions.Put(ctx, sess); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_store"))
			writeErrorResponse(w, "Failed to store session", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordSessionStarted(ctx, string(session.KindTechnical), om)
		metrics.RecordQuestionServed(ctx, role, om)

		span.SetAttributes(
			attribute.String("session.id", sess.ID),
			attribute.String("interview.role", role),
			attribute.String("interview.difficulty", string(difficulty)),
		)

		writeJSONResponse(w, span, InterviewStartResponse{
			SessionID:      sess.ID,
			Kind:           string(session.KindTechnical),
			Question:       first.Text,
			Role:           role,
			Difficulty:     string(difficulty),
			Company:        company,
			QuestionNumber: sess.QuestionsAsked,
		})
	}
}

// createInterviewAnswerHandler scores a technical answer and advances the
// session to the next question at the adjusted difficulty
func (s *Server) createInterviewAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.interview.answer")
		defer span.End()

		sess, req, ok := s.loadAnswerSession(ctx, w, r, span, session.KindTechnical)
		if !ok {
			return
		}

		metrics := om.GetMetrics()
		var result *analysis.Result
		err := metrics.TrackEvaluation(ctx, "technical", func(ctx context.Context) *observability.EvaluationResult {
			res, evalErr := analysis.Evaluate(analysis.Input{
				Text: req.Answer,
				Context: analysis.Context{
					Behavioral:       false,
					Difficulty:       sess.Difficulty,
					Role:             sess.Role,
					ExpectedKeywords: sess.CurrentQuestion.Keywords,
				},
			})
			result = res
			evalResult := &observability.EvaluationResult{Error: evalErr}
			if res != nil {
				evalResult.Score = res.NormalizedScore
				evalResult.WordCount = res.Signals.WordCount
			}
			return evalResult
		}, om)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "evaluation"))
			writeErrorResponse(w, "Failed to evaluate answer", err.Error(), http.StatusInternalServerError)
			return
		}

		var next question.Question
		if sess.Company != "" {
			next = s.Bank.CompanyQuestion(sess.Role, result.NextDifficulty, sess.Company)
		} else {
			next = s.Bank.Technical(sess.Role, result.NextDifficulty)
		}

		sess.RecordAnswer(session.Exchange{
			Question:   sess.CurrentQuestion.Text,
			Answer:     req.Answer,
			Score:      result.NormalizedScore,
			Difficulty: sess.Difficulty,
		}, next, result.NextDifficulty)

		if err := s.Sessions.Put(ctx, sess); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_store"))
			writeErrorResponse(w, "Failed to store session", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordQuestionServed(ctx, sess.Role, om)

		span.SetAttributes(
			attribute.String("session.id", sess.ID),
			attribute.Int("answer.score", result.NormalizedScore),
			attribute.String("interview.next_difficulty", string(result.NextDifficulty)),
		)

		writeJSONResponse(w, span, InterviewAnswerResponse{
			SessionID:      sess.ID,
			Score:          result.NormalizedScore,
			Feedback:       result.TechnicalNote,
			Breakdown:      result.Breakdown,
			NextQuestion:   next.Text,
			NextDifficulty: string(result.NextDifficulty),
			QuestionNumber: sess.QuestionsAsked,
			AverageScore:   sess.AverageScore(),
		})
	}
}

// createStartHRHandler opens a behavioral session on its first question
func (s *Server) createStartHRHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.hr.start")
		defer span.End()

		first := s.Bank.Behavioral()
		sess := session.NewHR(first)
		if err := s.Sessions.Put(ctx, sess); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_store"))
			writeErrorResponse(w, "Failed to store session", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordSessionStarted(ctx, string(session.KindHR), om)

		span.SetAttributes(attribute.String("session.id", sess.ID))

		writeJSONResponse(w, span, InterviewStartResponse{
			SessionID:      sess.ID,
			Kind:           string(session.KindHR),
			Question:       first.Text,
			FocusAreas:     first.Focus,
			QuestionNumber: sess.QuestionsAsked,
		})
	}
}

// createHRAnswerHandler scores a behavioral answer on the communication
// dimensions and serves the next unasked behavioral question
func (s *Server) createHRAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.hr.answer")
		defer span.End()

		sess, req, ok := s.loadAnswerSession(ctx, w, r, span, session.KindHR)
		if !ok {
			return
		}

		metrics := om.GetMetrics()
		var result *analysis.Result
		err := metrics.TrackEvaluation(ctx, "behavioral", func(ctx context.Context) *observability.EvaluationResult {
			res, evalErr := analysis.Evaluate(analysis.Input{
				Text: req.Answer,
				Context: analysis.Context{
					Behavioral:       true,
					ExpectedKeywords: sess.CurrentQuestion.Keywords,
				},
			})
			result = res
			evalResult := &observability.EvaluationResult{Error: evalErr}
			if res != nil {
				evalResult.Score = res.NormalizedScore
				evalResult.WordCount = res.Signals.WordCount
			}
			return evalResult
		}, om)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "evaluation"))
			writeErrorResponse(w, "Failed to evaluate answer", err.Error(), http.StatusInternalServerError)
			return
		}

		ex := session.Exchange{
			Question:   sess.CurrentQuestion.Text,
			Answer:     req.Answer,
			Score:      result.Overall,
			Clarity:    result.Scores.Clarity,
			Structure:  result.Scores.Structure,
			Confidence: result.Scores.Confidence,
		}

		resp := HRAnswerResponse{
			SessionID: sess.ID,
			Score:     result.Overall,
			Scores:    result.Scores,
			Feedback:  result.Feedback,
		}

		next, hasNext := s.Bank.BehavioralExcluding(sess.AskedQuestions())
		if hasNext {
			sess.RecordAnswer(ex, question.Question{
				Text:     next.Text,
				Keywords: next.Focus,
			}, sess.Difficulty)
			resp.NextQuestion = next.Text
			resp.FocusAreas = next.Focus
		} else {
			sess.RecordFinalAnswer(ex)
			resp.Done = true
		}
		resp.AverageScore = sess.AverageScore()

		if err := s.Sessions.Put(ctx, sess); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_store"))
			writeErrorResponse(w, "Failed to store session", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.String("session.id", sess.ID),
			attribute.Int("answer.score", result.Overall),
			attribute.Bool("session.exhausted", resp.Done),
		)

		writeJSONResponse(w, span, resp)
	}
}

// createEndSessionHandler closes a session of the given kind and returns
// its summary
func (s *Server) createEndSessionHandler(om *observability.ObservabilityManager, kind session.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api."+string(kind)+".end")
		defer span.End()

		var req EndSessionRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		sess, ok := s.fetchSession(ctx, w, span, req.SessionID, kind)
		if !ok {
			return
		}

		if err := s.Sessions.Delete(ctx, sess.ID); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session_store"))
			writeErrorResponse(w, "Failed to delete session", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordSessionCompleted(ctx, string(kind), om)

		summary := sess.Summarize()
		span.SetAttributes(
			attribute.String("session.id", sess.ID),
			attribute.Int("session.average_score", summary.AverageScore),
			attribute.Int("session.total_questions", summary.TotalQuestions),
		)

		writeJSONResponse(w, span, summary)
	}
}

// createScoreResumeHandler runs the keyword-based resume scorer
func (s *Server) createScoreResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.resume.score")
		defer span.End()

		req, ok := s.parseResumeRequest(w, r, span)
		if !ok {
			return
		}

		result := ats.ScoreResume(req.ResumeText, req.Role)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("resume.score", result.Score),
			attribute.String("resume.role", req.Role))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("resume.score", result.Score),
		)

		writeJSONResponse(w, span, result)
	}
}

// createResumeGapsHandler runs the skill gap analyzer
func (s *Server) createResumeGapsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.resume.gaps")
		defer span.End()

		req, ok := s.parseResumeRequest(w, r, span)
		if !ok {
			return
		}

		result := ats.AnalyzeGaps(req.ResumeText, req.Role)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("resume.skill_match_percent", result.MatchPercent),
			attribute.String("resume.role", req.Role))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("resume.skill_match_percent", result.MatchPercent),
		)

		writeJSONResponse(w, span, result)
	}
}

// createReportHandler builds the weighted readiness report
func (s *Server) createReportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("skillscan.api")
		ctx, span := tracer.Start(ctx, "api.report")
		defer span.End()

		var req ReportRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		for name, score := range map[string]int{
			"resumeScore":     req.ResumeScore,
			"technicalScore":  req.TechnicalScore,
			"behavioralScore": req.BehavioralScore,
		} {
			if score < 0 || score > 100 {
				err := fmt.Errorf("%s out of range: %d", name, score)
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid score", fmt.Sprintf("%s must be between 0 and 100", name), http.StatusBadRequest)
				return
			}
		}

		result := report.BuildReadinessReport(report.Input{
			ResumeScore:     req.ResumeScore,
			TechnicalScore:  req.TechnicalScore,
			BehavioralScore: req.BehavioralScore,
			Role:            req.Role,
		})

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "report_generated", true, om,
			attribute.Int("report.weighted_score", result.WeightedScore),
			attribute.String("report.level", string(result.Level)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("report.weighted_score", result.WeightedScore),
		)

		writeJSONResponse(w, span, result)
	}
}

// createCompaniesHandler lists the supported company interview styles
func (s *Server) createCompaniesHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("skillscan.api").Start(r.Context(), "api.companies")
		defer span.End()

		writeJSONResponse(w, span, CompaniesResponse{Companies: question.Companies()})
	}
}

// createCompanyStrategyHandler returns the preparation strategy for one
// company, selected by the company query parameter
func (s *Server) createCompanyStrategyHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("skillscan.api").Start(r.Context(), "api.companies.strategy")
		defer span.End()

		company := strings.TrimSpace(r.URL.Query().Get("company"))
		if company == "" {
			writeErrorResponse(w, "Missing company", "company query parameter is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(attribute.String("company", company))
		writeJSONResponse(w, span, question.StrategyFor(company))
	}
}

// loadAnswerSession parses an answer request and resolves its session,
// writing the error response itself when anything is off.
func (s *Server) loadAnswerSession(ctx context.Context, w http.ResponseWriter, r *http.Request, span oteltrace.Span, kind session.Kind) (*session.Session, *AnswerRequest, bool) {
	var req AnswerRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}

	if strings.TrimSpace(req.Answer) == "" {
		err := fmt.Errorf("missing answer")
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Missing answer", "answer field is required", http.StatusBadRequest)
		return nil, nil, false
	}

	sess, ok := s.fetchSession(ctx, w, span, req.SessionID, kind)
	if !ok {
		return nil, nil, false
	}
	return sess, &req, true
}

// fetchSession looks a session up by ID and checks its kind.
func (s *Server) fetchSession(ctx context.Context, w http.ResponseWriter, span oteltrace.Span, id string, kind session.Kind) (*session.Session, bool) {
	if strings.TrimSpace(id) == "" {
		err := fmt.Errorf("missing session ID")
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Missing session ID", "sessionId field is required", http.StatusBadRequest)
		return nil, false
	}

	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "session_not_found"))
		writeErrorResponse(w, "Session not found", fmt.Sprintf("no active session with ID %s", id), http.StatusNotFound)
		return nil, false
	}

	if sess.Kind != kind {
		err := fmt.Errorf("session %s is %s, not %s", id, sess.Kind, kind)
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Wrong session kind", err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return sess, true
}

// parseResumeRequest parses and validates the shared resume request body.
func (s *Server) parseResumeRequest(w http.ResponseWriter, r *http.Request, span oteltrace.Span) (*ScoreResumeRequest, bool) {
	var req ScoreResumeRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		err := fmt.Errorf("missing resume text")
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
		return nil, false
	}

	if len(req.ResumeText) > int(s.MaxRequestSize) {
		err := fmt.Errorf("resume too large: %d chars", len(req.ResumeText))
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Resume too large", fmt.Sprintf("resumeText exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
		return nil, false
	}

	span.SetAttributes(
		attribute.Int("request.resume_length", len(req.ResumeText)),
		attribute.String("request.role", req.Role),
	)
	return &req, true
}

// writeJSONResponse encodes a successful JSON body.
func writeJSONResponse(w http.ResponseWriter, span oteltrace.Span, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
