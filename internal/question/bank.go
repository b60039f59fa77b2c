// Package question serves the static interview question banks: technical
// questions per role and difficulty, behavioral HR questions, and
// company-specific interview modes. Random selection uses an injected
// source so hosts control determinism; the scoring core never depends on
// this package.
package question

import (
	"math/rand"
	"sync"

	"skillscan/internal/analysis"
)

// Question is one technical interview question with its evaluation
// metadata.
type Question struct {
	Text           string              `json:"question"`
	Difficulty     analysis.Difficulty `json:"difficulty"`
	Role           string              `json:"role"`
	Keywords       []string            `json:"keywords"`
	ExpectedPoints []string            `json:"expectedPoints"`
	QuestionType   string              `json:"questionType,omitempty"`
	Company        string              `json:"company,omitempty"`
	CompanyStyle   string              `json:"companyStyle,omitempty"`
	Principle      string              `json:"principle,omitempty"`
	StarPrompts    []string            `json:"starPrompts,omitempty"`
	FollowUp       string              `json:"followUp,omitempty"`
}

// BehavioralQuestion is one HR question with the competencies it probes.
type BehavioralQuestion struct {
	Text  string   `json:"question"`
	Focus []string `json:"focusAreas"`
}

// Bank holds the question data and hands out random selections. Overlay
// reloads swap the technical data under a lock, so a Bank is safe for
// concurrent readers.
type Bank struct {
	mu        sync.RWMutex
	technical map[string]map[analysis.Difficulty][]Question

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewBank builds a bank from the built-in data, seeded for reproducible
// selection sequences.
func NewBank(seed int64) *Bank {
	return &Bank{
		technical: cloneBankData(builtinTechnical),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func cloneBankData(src map[string]map[analysis.Difficulty][]Question) map[string]map[analysis.Difficulty][]Question {
	out := make(map[string]map[analysis.Difficulty][]Question, len(src))
	for role, byDifficulty := range src {
		out[role] = make(map[analysis.Difficulty][]Question, len(byDifficulty))
		for d, qs := range byDifficulty {
			out[role][d] = append([]Question(nil), qs...)
		}
	}
	return out
}

func (b *Bank) pick(n int) int {
	b.rngMu.Lock()
	defer b.rngMu.Unlock()
	return b.rng.Intn(n)
}

// questionsFor resolves the question list, falling back to medium
// difficulty and then to the default role rather than failing. An
// overlay role may cover only some difficulty buckets, so the default
// role is the backstop; its built-in buckets are never empty.
func (b *Bank) questionsFor(role string, difficulty analysis.Difficulty) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()

	byDifficulty, ok := b.technical[role]
	if !ok {
		byDifficulty = b.technical[defaultRole]
	}
	qs := byDifficulty[difficulty]
	if len(qs) == 0 {
		qs = byDifficulty[analysis.DifficultyMedium]
	}
	if len(qs) == 0 {
		fallback := b.technical[defaultRole]
		qs = fallback[difficulty]
		if len(qs) == 0 {
			qs = fallback[analysis.DifficultyMedium]
		}
	}
	return qs
}

// Technical returns a random question for the role and difficulty.
func (b *Bank) Technical(role string, difficulty analysis.Difficulty) Question {
	qs := b.questionsFor(role, difficulty)
	q := qs[b.pick(len(qs))]
	q.Role = b.roleOrDefault(role)
	return q
}

// KeywordsFor looks up the expected keywords of a known question text.
// Unknown questions yield nil, which scoring treats as an empty set.
func (b *Bank) KeywordsFor(text, role string, difficulty analysis.Difficulty) []string {
	for _, q := range b.questionsFor(role, difficulty) {
		if q.Text == text {
			return q.Keywords
		}
	}
	return nil
}

// Behavioral returns a random HR question.
func (b *Bank) Behavioral() BehavioralQuestion {
	return behavioralQuestions[b.pick(len(behavioralQuestions))]
}

// BehavioralExcluding returns a random HR question whose text is not in
// asked. The second result is false when the bank is exhausted.
func (b *Bank) BehavioralExcluding(asked []string) (BehavioralQuestion, bool) {
	seen := make(map[string]struct{}, len(asked))
	for _, q := range asked {
		seen[q] = struct{}{}
	}
	var available []BehavioralQuestion
	for _, q := range behavioralQuestions {
		if _, ok := seen[q.Text]; !ok {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		return BehavioralQuestion{}, false
	}
	return available[b.pick(len(available))], true
}

// BehavioralFocusKeywords derives scoring keywords from a behavioral
// question's focus areas plus the STAR vocabulary.
func BehavioralFocusKeywords(q BehavioralQuestion) []string {
	return append(append([]string(nil), q.Focus...), "situation", "action", "result")
}

// roleOrDefault resolves overlay-added roles too, not just built-in ones.
func (b *Bank) roleOrDefault(role string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.technical[role]; ok {
		return role
	}
	return defaultRole
}

// Roles lists the roles with a technical bank, in a stable order.
func Roles() []string {
	return []string{"SDE", "Data Analyst", "ML Engineer"}
}
