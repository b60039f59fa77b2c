package session

import (
	"testing"

	"skillscan/internal/analysis"
	"skillscan/internal/question"
)

func newTestTechnical() *Session {
	return NewTechnical("SDE", analysis.DifficultyMedium, "", question.Question{
		Text:       "Explain how a hash table works and discuss collision handling.",
		Difficulty: analysis.DifficultyMedium,
		Role:       "SDE",
	})
}

func TestNewTechnicalInitialState(t *testing.T) {
	s := newTestTechnical()

	if len(s.ID) != 8 {
		t.Errorf("ID = %q, want 8 characters", s.ID)
	}
	if s.Kind != KindTechnical {
		t.Errorf("Kind = %q", s.Kind)
	}
	if s.QuestionsAsked != 1 {
		t.Errorf("QuestionsAsked = %d, want 1", s.QuestionsAsked)
	}
	if s.AverageScore() != 0 {
		t.Errorf("AverageScore = %d, want 0 before any answers", s.AverageScore())
	}
}

func TestRecordAnswerAdvancesSession(t *testing.T) {
	s := newTestTechnical()
	next := question.Question{Text: "How would you design a rate limiter for an API?", Difficulty: analysis.DifficultyHard}

	s.RecordAnswer(Exchange{
		Question:   s.CurrentQuestion.Text,
		Answer:     "Buckets and chaining.",
		Score:      85,
		Difficulty: analysis.DifficultyMedium,
	}, next, analysis.DifficultyHard)

	if s.QuestionsAsked != 2 {
		t.Errorf("QuestionsAsked = %d, want 2", s.QuestionsAsked)
	}
	if s.Difficulty != analysis.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", s.Difficulty)
	}
	if s.CurrentQuestion.Text != next.Text {
		t.Errorf("CurrentQuestion = %q", s.CurrentQuestion.Text)
	}
	if s.TotalScore != 85 || s.AverageScore() != 85 {
		t.Errorf("TotalScore = %d, AverageScore = %d", s.TotalScore, s.AverageScore())
	}
}

func TestAverageScoreTruncates(t *testing.T) {
	s := newTestTechnical()
	s.RecordFinalAnswer(Exchange{Score: 70})
	s.RecordFinalAnswer(Exchange{Score: 75})

	// 145 / 2 truncates to 72.
	if got := s.AverageScore(); got != 72 {
		t.Errorf("AverageScore = %d, want 72", got)
	}
}

func TestAskedQuestionsIncludesCurrent(t *testing.T) {
	s := newTestTechnical()
	s.RecordAnswer(Exchange{Question: s.CurrentQuestion.Text, Score: 50},
		question.Question{Text: "Explain CAP theorem and its implications for distributed systems."},
		analysis.DifficultyMedium)

	asked := s.AskedQuestions()
	if len(asked) != 2 {
		t.Fatalf("asked = %v, want history plus current", asked)
	}
	if asked[1] != s.CurrentQuestion.Text {
		t.Errorf("last asked = %q, want current question", asked[1])
	}
}

func TestPerformanceLadders(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		scores []int
		want   string
	}{
		{"technical excellent", KindTechnical, []int{85, 80}, "Excellent"},
		{"technical good", KindTechnical, []int{60}, "Good"},
		{"technical average", KindTechnical, []int{45}, "Average"},
		{"technical poor", KindTechnical, []int{10}, "Needs Improvement"},
		{"hr excellent", KindHR, []int{9, 8}, "Excellent"},
		{"hr good", KindHR, []int{6}, "Good"},
		{"hr average", KindHR, []int{4}, "Average"},
		{"hr poor", KindHR, []int{2}, "Needs Improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Kind: tt.kind}
			for _, score := range tt.scores {
				s.RecordFinalAnswer(Exchange{Score: score})
			}
			if got := s.Performance(); got != tt.want {
				t.Errorf("Performance = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeHRIncludesCategoryAverages(t *testing.T) {
	s := NewHR(question.BehavioralQuestion{
		Text:  "Tell me about a time you faced a significant challenge at work.",
		Focus: []string{"problem-solving"},
	})
	s.RecordFinalAnswer(Exchange{Score: 7, Clarity: 8, Structure: 6, Confidence: 7})
	s.RecordFinalAnswer(Exchange{Score: 5, Clarity: 5, Structure: 5, Confidence: 4})

	summary := s.Summarize()
	if summary.AverageScore != 6 {
		t.Errorf("AverageScore = %d, want 6", summary.AverageScore)
	}
	if summary.Clarity != 6 || summary.Structure != 5 || summary.Confidence != 5 {
		t.Errorf("category averages = %d/%d/%d, want 6/5/5",
			summary.Clarity, summary.Structure, summary.Confidence)
	}
	if summary.Performance != "Good" {
		t.Errorf("Performance = %q, want Good", summary.Performance)
	}
	if summary.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", summary.TotalQuestions)
	}
}
