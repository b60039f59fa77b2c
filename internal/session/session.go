// Package session tracks interview sessions across answers: the current
// question, difficulty progression, and running scores. Stores are
// pluggable; the in-memory store suits a single instance and the Redis
// store shares sessions across replicas.
package session

import (
	"time"

	"github.com/google/uuid"

	"skillscan/internal/analysis"
	"skillscan/internal/question"
)

// Kind distinguishes the two interview flows.
type Kind string

const (
	KindTechnical Kind = "technical"
	KindHR        Kind = "hr"
)

// Exchange is one answered question in a session's history.
type Exchange struct {
	Question   string              `json:"question"`
	Answer     string              `json:"answer"`
	Score      int                 `json:"score"`
	Difficulty analysis.Difficulty `json:"difficulty,omitempty"`
	Clarity    int                 `json:"clarity,omitempty"`
	Structure  int                 `json:"structure,omitempty"`
	Confidence int                 `json:"confidence,omitempty"`
}

// Session is one in-progress interview.
type Session struct {
	ID         string              `json:"id"`
	Kind       Kind                `json:"kind"`
	Role       string              `json:"role"`
	Company    string              `json:"company,omitempty"`
	Difficulty analysis.Difficulty `json:"difficulty"`

	CurrentQuestion question.Question `json:"currentQuestion"`
	QuestionsAsked  int               `json:"questionsAsked"`
	TotalScore      int               `json:"totalScore"`
	History         []Exchange        `json:"history"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTechnical starts a technical interview session on its first question.
func NewTechnical(role string, difficulty analysis.Difficulty, company string, first question.Question) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:              newID(),
		Kind:            KindTechnical,
		Role:            role,
		Company:         company,
		Difficulty:      difficulty,
		CurrentQuestion: first,
		QuestionsAsked:  1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewHR starts a behavioral interview session on its first question.
func NewHR(first question.BehavioralQuestion) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:   newID(),
		Kind: KindHR,
		CurrentQuestion: question.Question{
			Text:     first.Text,
			Keywords: first.Focus,
		},
		QuestionsAsked: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Short IDs are enough here and keep URLs readable.
func newID() string {
	return uuid.NewString()[:8]
}

// RecordAnswer appends an exchange, accumulates the score, and advances
// the session to the next question.
func (s *Session) RecordAnswer(ex Exchange, next question.Question, nextDifficulty analysis.Difficulty) {
	s.History = append(s.History, ex)
	s.TotalScore += ex.Score
	s.QuestionsAsked++
	s.CurrentQuestion = next
	s.Difficulty = nextDifficulty
	s.UpdatedAt = time.Now().UTC()
}

// RecordFinalAnswer appends an exchange without advancing, for when the
// bank has no unasked questions left.
func (s *Session) RecordFinalAnswer(ex Exchange) {
	s.History = append(s.History, ex)
	s.TotalScore += ex.Score
	s.UpdatedAt = time.Now().UTC()
}

// AverageScore is the integer mean over answered questions, 0 when none.
func (s *Session) AverageScore() int {
	if len(s.History) == 0 {
		return 0
	}
	return s.TotalScore / len(s.History)
}

// AskedQuestions lists the question texts already posed, current included.
func (s *Session) AskedQuestions() []string {
	asked := make([]string, 0, len(s.History)+1)
	for _, ex := range s.History {
		asked = append(asked, ex.Question)
	}
	asked = append(asked, s.CurrentQuestion.Text)
	return asked
}

// CategoryAverages returns integer means of the HR scoring dimensions.
func (s *Session) CategoryAverages() (clarity, structure, confidence int) {
	if len(s.History) == 0 {
		return 0, 0, 0
	}
	for _, ex := range s.History {
		clarity += ex.Clarity
		structure += ex.Structure
		confidence += ex.Confidence
	}
	n := len(s.History)
	return clarity / n, structure / n, confidence / n
}

// Performance labels the session's average score. Technical averages are
// on a 0-100 scale, HR on 0-10, so each kind has its own ladder.
func (s *Session) Performance() string {
	avg := s.AverageScore()
	if s.Kind == KindHR {
		switch {
		case avg >= 8:
			return "Excellent"
		case avg >= 6:
			return "Good"
		case avg >= 4:
			return "Average"
		default:
			return "Needs Improvement"
		}
	}
	switch {
	case avg >= 80:
		return "Excellent"
	case avg >= 60:
		return "Good"
	case avg >= 40:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// Summary is the final report returned when a session ends.
type Summary struct {
	SessionID      string     `json:"sessionId"`
	Kind           Kind       `json:"kind"`
	Role           string     `json:"role,omitempty"`
	TotalQuestions int        `json:"totalQuestions"`
	AverageScore   int        `json:"averageScore"`
	Performance    string     `json:"performance"`
	Clarity        int        `json:"clarityAverage,omitempty"`
	Structure      int        `json:"structureAverage,omitempty"`
	Confidence     int        `json:"confidenceAverage,omitempty"`
	History        []Exchange `json:"history"`
}

// Summarize builds the end-of-session summary.
func (s *Session) Summarize() Summary {
	summary := Summary{
		SessionID:      s.ID,
		Kind:           s.Kind,
		Role:           s.Role,
		TotalQuestions: len(s.History),
		AverageScore:   s.AverageScore(),
		Performance:    s.Performance(),
		History:        s.History,
	}
	if s.Kind == KindHR {
		summary.Clarity, summary.Structure, summary.Confidence = s.CategoryAverages()
	}
	return summary
}
