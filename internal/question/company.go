package question

import (
	"strings"

	"skillscan/internal/analysis"
)

// TypeWeight is one entry of a company's question-type distribution. The
// order matters: selection walks the cumulative probabilities in sequence.
type TypeWeight struct {
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

// Round describes one stage of a company's interview loop.
type Round struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Duration int    `json:"durationMinutes"`
}

// Mode captures how a company runs interviews: its style, focus areas,
// question-type mix, and preparation tips.
type Mode struct {
	Key                  string       `json:"id"`
	Name                 string       `json:"name"`
	Tagline              string       `json:"tagline"`
	Style                string       `json:"style"`
	Description          string       `json:"description"`
	FocusAreas           []string     `json:"focusAreas"`
	Distribution         []TypeWeight `json:"questionDistribution"`
	Rounds               []Round      `json:"interviewRounds"`
	Tips                 []string     `json:"tips"`
	LeadershipPrinciples []string     `json:"leadershipPrinciples,omitempty"`
}

// Strategy is the preparation summary for one company mode.
type Strategy struct {
	Company      string       `json:"company"`
	Style        string       `json:"style"`
	FocusAreas   []string     `json:"focusAreas"`
	Distribution []TypeWeight `json:"questionDistribution"`
	Tips         []string     `json:"tips"`
	Rounds       []Round      `json:"rounds"`
}

const genericCompany = "generic"

// ModeFor resolves a company mode by key, case-insensitively. Unknown
// companies get the generic mode.
func ModeFor(company string) Mode {
	if m, ok := companyModes[strings.ToLower(company)]; ok {
		return m
	}
	return companyModes[genericCompany]
}

// Companies lists the registered mode keys in a stable order.
func Companies() []string {
	return []string{"google", "amazon", "meta", "microsoft", "apple", "generic"}
}

// StrategyFor summarizes how to prepare for a company's interviews.
func StrategyFor(company string) Strategy {
	m := ModeFor(company)
	return Strategy{
		Company:      m.Name,
		Style:        m.Style,
		FocusAreas:   m.FocusAreas,
		Distribution: m.Distribution,
		Tips:         m.Tips,
		Rounds:       m.Rounds,
	}
}

// CompanyQuestion returns a question tailored to the company's interview
// style. It first draws a question type from the mode's distribution; if
// the company has a dedicated bank for that type one of its questions is
// used, otherwise a standard technical question is restyled.
func (b *Bank) CompanyQuestion(role string, difficulty analysis.Difficulty, company string) Question {
	mode := ModeFor(company)
	questionType := b.selectQuestionType(mode.Distribution)

	if bank, ok := companyQuestions[strings.ToLower(company)]; ok {
		if entries := bank[questionType]; len(entries) > 0 {
			entry := entries[b.pick(len(entries))]
			return formatCompanyQuestion(entry, questionType, difficulty, b.roleOrDefault(role), mode)
		}
	}

	q := b.Technical(role, difficulty)
	return adaptToCompanyStyle(q, mode, questionType)
}

// selectQuestionType walks the cumulative distribution against one random
// draw. An empty distribution yields "coding"; rounding leftovers fall to
// the first entry.
func (b *Bank) selectQuestionType(distribution []TypeWeight) string {
	if len(distribution) == 0 {
		return "coding"
	}

	b.rngMu.Lock()
	r := b.rng.Float64()
	b.rngMu.Unlock()

	cumulative := 0.0
	for _, tw := range distribution {
		cumulative += tw.Weight
		if r <= cumulative {
			return tw.Type
		}
	}
	return distribution[0].Type
}

// companyEntry is one raw question in a company bank before formatting.
type companyEntry struct {
	Text        string
	Difficulty  analysis.Difficulty
	Topics      []string
	FollowUp    string
	Principle   string
	StarPrompts []string
}

func formatCompanyQuestion(entry companyEntry, questionType string, difficulty analysis.Difficulty, role string, mode Mode) Question {
	q := Question{
		Text:         entry.Text,
		Difficulty:   difficulty,
		Role:         role,
		QuestionType: questionType,
		Company:      mode.Name,
		CompanyStyle: mode.Style,
	}
	if entry.Difficulty != "" {
		q.Difficulty = entry.Difficulty
	}

	if questionType == "behavioral" {
		q.Principle = entry.Principle
		q.StarPrompts = entry.StarPrompts
		q.Keywords = []string{strings.ToLower(entry.Principle), "star", "situation", "action", "result"}
		q.ExpectedPoints = []string{"specific example", "clear actions taken", "measurable results"}
		return q
	}

	q.Keywords = entry.Topics
	q.ExpectedPoints = entry.Topics
	if len(q.Keywords) == 0 {
		q.Keywords = []string{"problem solving", "optimization", "clarity"}
		q.ExpectedPoints = []string{"approach", "implementation", "complexity"}
	}
	q.FollowUp = entry.FollowUp
	return q
}

// adaptToCompanyStyle restyles a standard question to match the company's
// interviewing emphasis.
func adaptToCompanyStyle(q Question, mode Mode, questionType string) Question {
	q.Company = mode.Name
	q.CompanyStyle = mode.Style
	q.QuestionType = questionType

	lower := strings.ToLower(q.Text)
	switch mode.Style {
	case "dsa_heavy":
		if !strings.Contains(lower, "optimize") {
			q.Text += " What is the optimal time and space complexity?"
		}
	case "leadership_behavioral":
		if questionType != "behavioral" {
			q.Text += " Also, tell me about a time you faced a similar challenge."
		}
	case "coding_systems":
		if !strings.Contains(lower, "scale") {
			q.Text += " How would this work at massive scale?"
		}
	}
	return q
}
