package question

import (
	"reflect"
	"testing"

	"skillscan/internal/analysis"
)

func TestTechnicalKnownRoles(t *testing.T) {
	bank := NewBank(1)

	tests := []struct {
		name       string
		role       string
		difficulty analysis.Difficulty
	}{
		{"sde easy", "SDE", analysis.DifficultyEasy},
		{"sde hard", "SDE", analysis.DifficultyHard},
		{"data analyst medium", "Data Analyst", analysis.DifficultyMedium},
		{"ml engineer hard", "ML Engineer", analysis.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := bank.Technical(tt.role, tt.difficulty)
			if q.Text == "" {
				t.Fatal("question text must not be empty")
			}
			if q.Role != tt.role {
				t.Errorf("Role = %q, want %q", q.Role, tt.role)
			}
			if len(q.Keywords) == 0 {
				t.Error("keywords must not be empty")
			}
			if len(q.ExpectedPoints) == 0 {
				t.Error("expected points must not be empty")
			}
		})
	}
}

func TestTechnicalUnknownRoleFallsBack(t *testing.T) {
	bank := NewBank(7)
	q := bank.Technical("Astronaut", analysis.DifficultyEasy)
	if q.Role != defaultRole {
		t.Errorf("Role = %q, want fallback %q", q.Role, defaultRole)
	}
	if q.Text == "" {
		t.Error("fallback question text must not be empty")
	}
}

func TestTechnicalSeedDeterminism(t *testing.T) {
	a := NewBank(42)
	b := NewBank(42)

	for i := 0; i < 10; i++ {
		qa := a.Technical("SDE", analysis.DifficultyMedium)
		qb := b.Technical("SDE", analysis.DifficultyMedium)
		if qa.Text != qb.Text {
			t.Fatalf("draw %d diverged: %q vs %q", i, qa.Text, qb.Text)
		}
	}
}

func TestKeywordsFor(t *testing.T) {
	bank := NewBank(1)

	got := bank.KeywordsFor(
		"Explain CAP theorem and its implications for distributed systems.",
		"SDE", analysis.DifficultyHard)
	want := []string{"cap", "consistency", "availability", "partition", "distributed", "trade-off", "tolerance"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordsFor = %v, want %v", got, want)
	}

	if kw := bank.KeywordsFor("not a real question", "SDE", analysis.DifficultyHard); kw != nil {
		t.Errorf("unknown question keywords = %v, want nil", kw)
	}
}

func TestBehavioralExcluding(t *testing.T) {
	bank := NewBank(3)

	var asked []string
	for i := 0; i < len(behavioralQuestions); i++ {
		q, ok := bank.BehavioralExcluding(asked)
		if !ok {
			t.Fatalf("bank exhausted after %d of %d questions", i, len(behavioralQuestions))
		}
		for _, prev := range asked {
			if q.Text == prev {
				t.Fatalf("question repeated: %q", q.Text)
			}
		}
		asked = append(asked, q.Text)
	}

	if _, ok := bank.BehavioralExcluding(asked); ok {
		t.Error("exhausted bank must report ok=false")
	}
}

func TestBehavioralFocusKeywords(t *testing.T) {
	q := BehavioralQuestion{
		Text:  "Give an example of a time you showed leadership.",
		Focus: []string{"leadership", "initiative", "influence"},
	}
	got := BehavioralFocusKeywords(q)
	want := []string{"leadership", "initiative", "influence", "situation", "action", "result"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BehavioralFocusKeywords = %v, want %v", got, want)
	}
	if len(q.Focus) != 3 {
		t.Error("source focus slice must not be mutated")
	}
}

func TestRolesMatchBankData(t *testing.T) {
	for _, role := range Roles() {
		if _, ok := builtinTechnical[role]; !ok {
			t.Errorf("role %q listed but has no technical bank", role)
		}
	}
	if len(Roles()) != len(builtinTechnical) {
		t.Errorf("Roles() lists %d roles, bank has %d", len(Roles()), len(builtinTechnical))
	}
}

func BenchmarkTechnical(b *testing.B) {
	bank := NewBank(1)
	for b.Loop() {
		bank.Technical("SDE", analysis.DifficultyMedium)
	}
}
