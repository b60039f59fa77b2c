package analysis

import (
	"strings"
	"testing"
)

const strongBehavioralAnswer = "In my previous role, the situation demanded a faster release pipeline. " +
	"My task required reducing deployment friction for twelve teams. " +
	"I implemented automated checks and specifically, for example, improved build time by 40% in 3 months. " +
	"The result: a measurable outcome and lasting impact. I achieved this successfully."

func TestSynthesizeFeedbackLimits(t *testing.T) {
	// A weak answer trips many rules at once; the lists must stay bounded.
	weak := "um so i tried to do stuff and things, it went well i guess, maybe it was done somehow, whatever"
	sig := ExtractSignals(weak)
	ctx := Context{Behavioral: true}

	fb := SynthesizeFeedback(sig, ctx, 2, 1, 2)

	if len(fb.Issues) > maxIssues {
		t.Errorf("issues = %d entries, want <= %d", len(fb.Issues), maxIssues)
	}
	if len(fb.Suggestions) > maxSuggestions {
		t.Errorf("suggestions = %d entries, want <= %d", len(fb.Suggestions), maxSuggestions)
	}
	if len(fb.Strengths) > maxStrengths {
		t.Errorf("strengths = %d entries, want <= %d", len(fb.Strengths), maxStrengths)
	}
	if len(fb.Issues) == 0 {
		t.Error("expected at least one issue for a weak answer")
	}
	if len(fb.Suggestions) == 0 {
		t.Error("suggestions must never be empty")
	}
}

func TestSynthesizeFeedbackFallbackSuggestion(t *testing.T) {
	sig := ExtractSignals(strongBehavioralAnswer)
	ctx := Context{Behavioral: true}

	clarity := ScoreClarity(sig, ctx)
	structure := ScoreStructure(sig, ctx)
	confidence := ScoreConfidence(sig, ctx)

	fb := SynthesizeFeedback(sig, ctx, clarity, structure, confidence)

	if len(fb.Issues) != 0 {
		t.Errorf("issues = %v, want none for a model answer", fb.Issues)
	}
	if len(fb.Suggestions) != 1 || fb.Suggestions[0] != fallbackSuggestion {
		t.Errorf("suggestions = %v, want only the fallback", fb.Suggestions)
	}
	if len(fb.Strengths) == 0 {
		t.Error("expected strengths for a model answer")
	}
}

func TestStrengthsFallback(t *testing.T) {
	sig := ExtractSignals("the work happened and it was acceptable in the end overall somehow okay")
	strengths := identifyStrengths(sig, 3, 3, 3)

	if len(strengths) != 1 || strengths[0] != "Room for improvement in communication style" {
		t.Errorf("strengths = %v, want the single fallback entry", strengths)
	}
}

func TestTechnicalFeedbackMentionsMissingKeywords(t *testing.T) {
	breakdown := TechnicalBreakdown{Length: 45, Keyword: 20, Structure: 30}
	note := TechnicalFeedback(breakdown, []string{"mutex", "deadlock", "atomic"}, "threads share memory")

	if !strings.Contains(note, "mutex") {
		t.Errorf("feedback %q does not mention the missing keyword", note)
	}
	if !strings.Contains(note, "too brief") {
		t.Errorf("feedback %q does not flag the short answer", note)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10, "A+"},
		{9, "A+"},
		{8, "A"},
		{7, "B+"},
		{6, "B"},
		{5, "C+"},
		{4, "C"},
		{3, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.score); got.Grade != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.score, got.Grade, tt.want)
		}
	}
}
