package ats

import (
	"strings"
	"testing"
)

const sdeResume = `Experienced software engineer. Strong grasp of data structures and algorithms,
OOP design, Git workflows, problem solving, PostgreSQL, RESTful services, and unit testing with pytest.
Shipped microservices on AWS with Docker and Jenkins pipelines.`

func TestScoreResumeFullCoreMatch(t *testing.T) {
	analysis := ScoreResume(sdeResume, "SDE")

	if analysis.CoreMatch != "8/8" {
		t.Errorf("CoreMatch = %s, want 8/8", analysis.CoreMatch)
	}
	if analysis.Score < 60 {
		t.Errorf("Score = %d, want at least the full core weight", analysis.Score)
	}
	if len(analysis.WeakAreas) != 0 {
		t.Errorf("WeakAreas = %v, want empty when all core skills match", analysis.WeakAreas)
	}
	if len(analysis.Suggestions) == 0 {
		t.Error("suggestions must not be empty")
	}
}

func TestScoreResumeEmptyText(t *testing.T) {
	analysis := ScoreResume("", "SDE")

	if analysis.Score != 0 {
		t.Errorf("Score = %d, want 0 for empty resume", analysis.Score)
	}
	if len(analysis.MissingSkills) != 16 {
		t.Errorf("MissingSkills = %d entries, want all 16", len(analysis.MissingSkills))
	}
	if len(analysis.WeakAreas) != 3 {
		t.Errorf("WeakAreas = %v, want top 3 missing core skills", analysis.WeakAreas)
	}
}

func TestScoreResumeUnknownRoleFallsBack(t *testing.T) {
	a := ScoreResume(sdeResume, "Astronaut")
	b := ScoreResume(sdeResume, "SDE")
	if a.Score != b.Score {
		t.Errorf("unknown role score = %d, want SDE fallback %d", a.Score, b.Score)
	}
}

func TestSkillFoundVariations(t *testing.T) {
	tests := []struct {
		name   string
		skill  string
		resume string
		want   bool
	}{
		{"abbreviation", "Object-Oriented Programming", "solid oop fundamentals", true},
		{"database variant", "SQL", "worked with postgres daily", true},
		{"cloud provider variant", "Cloud Services (AWS/GCP/Azure)", "deployed to aws lambda", true},
		{"k8s shorthand", "Docker & Kubernetes", "managed k8s clusters", true},
		{"absent skill", "MLOps", "built dashboards in tableau", false},
		{"no partial word match", "Algorithms", "he sang an old rhythm tune", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkillFound(tt.skill, strings.ToLower(tt.resume)); got != tt.want {
				t.Errorf("SkillFound(%q, %q) = %v, want %v", tt.skill, tt.resume, got, tt.want)
			}
		})
	}
}

func TestAnalyzeGapsPriorityOrder(t *testing.T) {
	// Resume with no relevant skills at all: everything is missing and the
	// order must be sorted by weight, core entries first among equals.
	analysis := AnalyzeGaps("I enjoy gardening and long walks.", "SDE")

	if analysis.MatchPercent != 0 {
		t.Errorf("MatchPercent = %d, want 0", analysis.MatchPercent)
	}
	if len(analysis.PriorityOrder) != 16 {
		t.Fatalf("PriorityOrder = %d entries, want 16", len(analysis.PriorityOrder))
	}
	first := analysis.PriorityOrder[0]
	if first.Weight != 10 || first.Priority != "high" {
		t.Errorf("first priority = %+v, want a weight-10 core skill", first)
	}
	for i := 1; i < len(analysis.PriorityOrder); i++ {
		if analysis.PriorityOrder[i].Weight > analysis.PriorityOrder[i-1].Weight {
			t.Fatalf("priority order not sorted by weight at index %d", i)
		}
	}
}

func TestAnalyzeGapsPercentages(t *testing.T) {
	resume := "python, pandas, numpy, sklearn, sql, model evaluation, data preprocessing, linear algebra & statistics, machine learning"
	analysis := AnalyzeGaps(resume, "ML Engineer")

	if analysis.CoreMatchPercent != 100 {
		t.Errorf("CoreMatchPercent = %d, want 100 (matched: %v, missing: %v)",
			analysis.CoreMatchPercent, analysis.MatchedCore, analysis.MissingCore)
	}
	if analysis.TotalRequired != 16 {
		t.Errorf("TotalRequired = %d, want 16", analysis.TotalRequired)
	}
	if analysis.MatchPercent <= 0 || analysis.MatchPercent > 100 {
		t.Errorf("MatchPercent = %d, outside (0,100]", analysis.MatchPercent)
	}
}
