package report

import (
	"reflect"
	"strings"
	"testing"
)

func TestWeightedScoreAndLevels(t *testing.T) {
	tests := []struct {
		name                        string
		resume, technical, behavioral int
		wantScore                   int
		wantLevel                   ReadinessLevel
	}{
		{"all eighty", 80, 80, 80, 80, HighlyReady},
		{"all fifty", 50, 50, 50, 50, ModeratelyReady},
		{"all zero", 0, 0, 0, 0, NotReady},
		{"ready band", 70, 70, 60, 67, Ready},
		{"needs improvement band", 40, 40, 40, 40, NeedsImprovement},
		{"technical dominates", 0, 100, 0, 45, NeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := BuildReadinessReport(Input{
				ResumeScore:     tt.resume,
				TechnicalScore:  tt.technical,
				BehavioralScore: tt.behavioral,
			})
			if rep.WeightedScore != tt.wantScore {
				t.Errorf("WeightedScore = %d, want %d", rep.WeightedScore, tt.wantScore)
			}
			if rep.Level != tt.wantLevel {
				t.Errorf("Level = %s, want %s", rep.Level, tt.wantLevel)
			}
		})
	}
}

func TestChecklistPriorityOrder(t *testing.T) {
	// Resume is fine, technical is critical, behavioral is middling: the
	// high-priority technical block must sort first, and the stable sort
	// must keep behavioral after it.
	rep := BuildReadinessReport(Input{
		ResumeScore:     85,
		TechnicalScore:  30,
		BehavioralScore: 65,
	})

	if len(rep.Checklist) != 2 {
		t.Fatalf("checklist blocks = %d, want 2 (resume above threshold)", len(rep.Checklist))
	}
	if rep.Checklist[0].Category != "Technical Skills" || rep.Checklist[0].Priority != "high" {
		t.Errorf("first block = %+v, want high-priority Technical Skills", rep.Checklist[0])
	}
	if rep.Checklist[1].Category != "Behavioral/HR" || rep.Checklist[1].Priority != "medium" {
		t.Errorf("second block = %+v, want medium-priority Behavioral/HR", rep.Checklist[1])
	}
}

func TestChecklistStableTieOrder(t *testing.T) {
	rep := BuildReadinessReport(Input{
		ResumeScore:     60,
		TechnicalScore:  60,
		BehavioralScore: 60,
	})

	want := []string{"Resume", "Technical Skills", "Behavioral/HR"}
	var got []string
	for _, block := range rep.Checklist {
		got = append(got, block.Category)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie order = %v, want %v", got, want)
	}
}

func TestChecklistDetailExtras(t *testing.T) {
	rep := BuildReadinessReport(Input{
		ResumeScore:     55,
		TechnicalScore:  90,
		BehavioralScore: 90,
		ResumeDetails:   &Details{MissingSkills: []string{"SQL", "REST APIs", "Docker", "Kubernetes"}},
	})

	if len(rep.Checklist) != 1 {
		t.Fatalf("checklist blocks = %d, want 1", len(rep.Checklist))
	}
	last := rep.Checklist[0].Items[len(rep.Checklist[0].Items)-1]
	if !strings.HasPrefix(last, "Add missing skills: SQL, REST APIs, Docker") {
		t.Errorf("missing-skills item = %q", last)
	}
	if strings.Contains(last, "Kubernetes") {
		t.Errorf("missing-skills item should cap at three entries: %q", last)
	}
}

func TestBehavioralExtrasSkipUnsetDimensions(t *testing.T) {
	// Structure is left at zero: that means unmeasured, so the STAR item
	// must not appear. Confidence is measured and weak, so its item must.
	rep := BuildReadinessReport(Input{
		ResumeScore:     90,
		TechnicalScore:  90,
		BehavioralScore: 55,
		HRDetails:       &Details{Confidence: 4},
	})

	if len(rep.Checklist) != 1 {
		t.Fatalf("checklist blocks = %d, want 1", len(rep.Checklist))
	}
	items := strings.Join(rep.Checklist[0].Items, "\n")
	if strings.Contains(items, "STAR: Situation") {
		t.Errorf("unset structure dimension produced a STAR item:\n%s", items)
	}
	if !strings.Contains(items, "hedging language") {
		t.Errorf("weak confidence dimension missing its item:\n%s", items)
	}
}

func TestActionItemsCriticalWeek(t *testing.T) {
	tests := []struct {
		name                          string
		resume, technical, behavioral int
		wantCritical                  string
	}{
		{"resume weakest", 20, 80, 80, "Revise resume with role-specific keywords"},
		{"technical weakest", 80, 20, 80, "Start daily coding practice (30 min minimum)"},
		{"behavioral weakest", 80, 80, 20, "Prepare 3 STAR stories for common HR questions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := BuildReadinessReport(Input{
				ResumeScore:     tt.resume,
				TechnicalScore:  tt.technical,
				BehavioralScore: tt.behavioral,
			})
			if len(rep.ActionItems) == 0 {
				t.Fatal("no action items generated")
			}
			first := rep.ActionItems[0]
			if first.Priority != "critical" || first.Timeframe != "This Week" {
				t.Fatalf("first action = %+v, want critical this-week item", first)
			}
			if first.Action != tt.wantCritical {
				t.Errorf("critical action = %q, want %q", first.Action, tt.wantCritical)
			}
		})
	}
}

func TestActionItemsAlwaysIncludeMocks(t *testing.T) {
	rep := BuildReadinessReport(Input{ResumeScore: 95, TechnicalScore: 95, BehavioralScore: 95})

	var found bool
	for _, a := range rep.ActionItems {
		if strings.Contains(a.Action, "mock interviews") {
			found = true
		}
		if a.Priority == "critical" {
			t.Errorf("unexpected critical action for strong scores: %+v", a)
		}
	}
	if !found {
		t.Error("mock-interview action item missing")
	}
}

func TestStrengthsAndWeaknessesLabels(t *testing.T) {
	rep := BuildReadinessReport(Input{ResumeScore: 85, TechnicalScore: 72, BehavioralScore: 20})

	if len(rep.Strengths) != 2 {
		t.Fatalf("strengths = %+v, want 2 entries", rep.Strengths)
	}
	if rep.Strengths[0].Label != "Strong" || rep.Strengths[1].Label != "Good" {
		t.Errorf("strength labels = %q/%q, want Strong/Good", rep.Strengths[0].Label, rep.Strengths[1].Label)
	}
	if len(rep.Weaknesses) != 1 || rep.Weaknesses[0].Label != "Critical" {
		t.Errorf("weaknesses = %+v, want one Critical entry", rep.Weaknesses)
	}
}

func TestReportDeterminism(t *testing.T) {
	in := Input{ResumeScore: 61, TechnicalScore: 47, BehavioralScore: 72, Role: "ML Engineer"}
	if !reflect.DeepEqual(BuildReadinessReport(in), BuildReadinessReport(in)) {
		t.Error("repeated report generation diverged")
	}
}
