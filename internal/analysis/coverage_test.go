package analysis

import (
	"strings"
	"testing"
)

func TestScoreKeywordCoverage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     int
	}{
		{
			name:     "all keywords present",
			text:     "I used a hash table and an array",
			keywords: []string{"hash", "array"},
			want:     100,
		},
		{
			name:     "no keywords present",
			text:     "I used a binary tree",
			keywords: []string{"hash", "array"},
			want:     0,
		},
		{
			name:     "empty keyword set falls back to conservative default",
			text:     "anything at all",
			keywords: nil,
			want:     DefaultCoverageScore,
		},
		{
			name:     "case insensitive",
			text:     "We chose PostgreSQL over MongoDB",
			keywords: []string{"postgresql", "MongoDB", "redis"},
			want:     66,
		},
		{
			name:     "partial coverage",
			text:     "stacks follow lifo ordering with push and pop",
			keywords: []string{"stack", "lifo", "push", "pop", "undo"},
			want:     80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreKeywordCoverage(tt.text, tt.keywords); got != tt.want {
				t.Errorf("ScoreKeywordCoverage(%q, %v) = %d, want %d", tt.text, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestScoreAnswerLength(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		difficulty Difficulty
		want       int
	}{
		{"nearly empty", 3, DifficultyMedium, 5},
		{"very short", 8, DifficultyMedium, 10},
		{"under half minimum", 20, DifficultyMedium, 20},
		{"somewhat short", 40, DifficultyMedium, 45},
		{"good length", 150, DifficultyMedium, 100},
		{"slightly long", 300, DifficultyMedium, 75},
		{"too verbose", 600, DifficultyMedium, 50},
		{"easy range is tighter", 40, DifficultyEasy, 100},
		{"hard range is wider", 40, DifficultyHard, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := scoreAnswerLength(answer, tt.difficulty); got != tt.want {
				t.Errorf("scoreAnswerLength(%d words, %s) = %d, want %d", tt.words, tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestScoreAnswerStructure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "single sentence",
			text: "A hash table maps keys to values using a hash function",
			want: 10,
		},
		{
			name: "no full sentence",
			text: "",
			want: 5,
		},
		{
			name: "structured answer with transitions and example",
			text: "First, a hash function maps the key to a bucket. Second, the value is stored in that bucket. " +
				"However, two keys can collide. For example, chaining stores colliding entries in a list.",
			want: 85, // 20 base + 25 sentences + 25 transitions + 15 example
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreAnswerStructure(tt.text); got != tt.want {
				t.Errorf("scoreAnswerStructure(%q) = %d, want %d", truncate(tt.text), got, tt.want)
			}
		})
	}
}

func TestGibberishPenalty(t *testing.T) {
	gibberish := "xk jq zv wq pl mn bd fg hj kl qw er ty ui"
	clean := "The function returns the cached value when the key is already present."

	if scoreAnswerStructure(gibberish) >= scoreAnswerStructure(clean+" It checks the map first. Then it stores the result.") {
		t.Error("gibberish scored at least as high as a clean structured answer")
	}
}

func TestScoreTechnicalAnswer(t *testing.T) {
	answer := "An array stores elements in contiguous memory, so index access is constant time. " +
		"A linked list uses pointer-connected nodes, therefore insertion at the head is cheap. " +
		"However, traversal costs linear time. For example, finding the 5 millionth element requires walking the list."
	keywords := []string{"array", "linked list", "memory", "access", "insertion", "contiguous", "pointer", "index"}

	total, breakdown := ScoreTechnicalAnswer(answer, DifficultyEasy, keywords)

	if total < 0 || total > 100 {
		t.Fatalf("total = %d, outside [0,100]", total)
	}
	if breakdown.Keyword != 100 {
		t.Errorf("keyword sub-score = %d, want 100 (all keywords present)", breakdown.Keyword)
	}
	if breakdown.Length != 100 {
		t.Errorf("length sub-score = %d, want 100", breakdown.Length)
	}
	if breakdown.Structure < 80 {
		t.Errorf("structure sub-score = %d, want >= 80 for a well-structured answer", breakdown.Structure)
	}
	if total < 90 {
		t.Errorf("total = %d, want >= 90 for a model answer", total)
	}
}
