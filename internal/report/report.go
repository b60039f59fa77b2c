// Package report combines the three top-level assessment scores into a
// weighted readiness report with a prioritized improvement plan.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed component weights. They must sum to 1.0.
const (
	WeightResume     = 0.30
	WeightTechnical  = 0.45
	WeightBehavioral = 0.25
)

// ReadinessLevel is the categorical label derived from the weighted score.
type ReadinessLevel string

const (
	HighlyReady      ReadinessLevel = "highly_ready"
	Ready            ReadinessLevel = "ready"
	ModeratelyReady  ReadinessLevel = "moderately_ready"
	NeedsImprovement ReadinessLevel = "needs_improvement"
	NotReady         ReadinessLevel = "not_ready"
)

// readinessLadder is evaluated highest-first; thresholds are inclusive at
// the lower bound.
var readinessLadder = []struct {
	min   int
	level ReadinessLevel
	label string
}{
	{80, HighlyReady, "Highly Ready"},
	{65, Ready, "Ready"},
	{50, ModeratelyReady, "Moderately Ready"},
	{35, NeedsImprovement, "Needs Improvement"},
	{0, NotReady, "Not Ready"},
}

// ChecklistBlock groups the improvement items for one score category.
type ChecklistBlock struct {
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Items    []string `json:"items"`
}

// ActionItem is one concrete step with a timeframe.
type ActionItem struct {
	Action    string `json:"action"`
	Timeframe string `json:"timeframe"`
	Priority  string `json:"priority"`
}

// ScoreArea labels one category as a strength or weakness.
type ScoreArea struct {
	Area  string `json:"area"`
	Score int    `json:"score"`
	Label string `json:"label"`
}

// Details carries the optional per-category analysis used only for
// feedback text, never for the numeric weighting.
type Details struct {
	MissingSkills []string `json:"missingSkills,omitempty"`
	WeakAreas     []string `json:"weakAreas,omitempty"`
	Structure     int      `json:"structure,omitempty"`
	Confidence    int      `json:"confidence,omitempty"`
	Clarity       int      `json:"clarity,omitempty"`
}

// Input is the full request for a readiness report. Scores are 0-100;
// detail pointers are optional.
type Input struct {
	ResumeScore     int      `json:"resumeScore"`
	TechnicalScore  int      `json:"technicalScore"`
	BehavioralScore int      `json:"behavioralScore"`
	Role            string   `json:"role"`
	ResumeDetails   *Details `json:"resumeDetails,omitempty"`
	TechDetails     *Details `json:"technicalDetails,omitempty"`
	HRDetails       *Details `json:"hrDetails,omitempty"`
}

// ReadinessReport is the complete assessment output.
type ReadinessReport struct {
	WeightedScore  int              `json:"weightedScore"`
	Level          ReadinessLevel   `json:"readinessLevel"`
	LevelLabel     string           `json:"readinessLabel"`
	ResumeScore    int              `json:"resumeScore"`
	TechnicalScore int              `json:"technicalScore"`
	Behavioral     int              `json:"behavioralScore"`
	Strengths      []ScoreArea      `json:"strengths"`
	Weaknesses     []ScoreArea      `json:"weaknesses"`
	Checklist      []ChecklistBlock `json:"improvementChecklist"`
	ActionItems    []ActionItem     `json:"actionItems"`
	Role           string           `json:"role"`
	Summary        string           `json:"summary"`
}

// BuildReadinessReport computes the weighted composite and derives the
// level, checklist, and action plan. It is pure: same input, same report.
func BuildReadinessReport(in Input) ReadinessReport {
	weighted := WeightedScore(in.ResumeScore, in.TechnicalScore, in.BehavioralScore)
	level, label := readinessFor(weighted)
	strengths, weaknesses := strengthsAndWeaknesses(in.ResumeScore, in.TechnicalScore, in.BehavioralScore)

	role := in.Role
	if role == "" {
		role = "SDE"
	}

	return ReadinessReport{
		WeightedScore:  weighted,
		Level:          level,
		LevelLabel:     label,
		ResumeScore:    in.ResumeScore,
		TechnicalScore: in.TechnicalScore,
		Behavioral:     in.BehavioralScore,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Checklist:      buildChecklist(in),
		ActionItems:    buildActionItems(in.ResumeScore, in.TechnicalScore, in.BehavioralScore, role),
		Role:           role,
		Summary:        summaryFor(weighted, role),
	}
}

// WeightedScore combines the three component scores with the fixed
// weights, truncated to an integer.
func WeightedScore(resume, technical, behavioral int) int {
	return int(float64(resume)*WeightResume +
		float64(technical)*WeightTechnical +
		float64(behavioral)*WeightBehavioral)
}

func readinessFor(score int) (ReadinessLevel, string) {
	for _, rung := range readinessLadder {
		if score >= rung.min {
			return rung.level, rung.label
		}
	}
	return NotReady, "Not Ready"
}

// categoryTier selects a message set by score band.
type categoryTier struct {
	below int
	items []string
}

var resumeTiers = []categoryTier{
	{40, []string{
		"Significantly revise resume to include relevant skills and keywords",
		"Add quantifiable achievements and metrics",
		"Ensure proper formatting for ATS compatibility",
	}},
	{60, []string{
		"Add more industry-specific keywords",
		"Highlight relevant projects and experience",
		"Include measurable outcomes in experience descriptions",
	}},
	{80, []string{
		"Fine-tune keyword optimization",
		"Add any missing technical skills",
	}},
}

var technicalTiers = []categoryTier{
	{40, []string{
		"Review fundamental data structures and algorithms",
		"Practice coding problems daily on LeetCode/HackerRank",
		"Study core concepts for your target role",
	}},
	{60, []string{
		"Practice medium-difficulty coding problems",
		"Work on explaining your thought process clearly",
		"Review system design basics",
	}},
	{80, []string{
		"Focus on edge cases and optimization",
		"Practice harder problems",
		"Improve communication during problem-solving",
	}},
}

var behavioralTiers = []categoryTier{
	{40, []string{
		"Learn and practice the STAR method",
		"Prepare 5-7 stories covering different competencies",
		"Practice speaking with confidence and clarity",
	}},
	{60, []string{
		"Add more specific details and metrics to your stories",
		"Practice articulating your impact clearly",
		"Work on showing leadership and ownership",
	}},
	{80, []string{
		"Refine your stories with stronger outcomes",
		"Practice handling follow-up questions",
	}},
}

func tierItems(score int, tiers []categoryTier) []string {
	for _, t := range tiers {
		if score < t.below {
			return append([]string(nil), t.items...)
		}
	}
	return nil
}

func buildChecklist(in Input) []ChecklistBlock {
	var checklist []ChecklistBlock

	add := func(category string, score int, tiers []categoryTier, extra []string) {
		if score >= 80 {
			return
		}
		priority := "medium"
		if score < 50 {
			priority = "high"
		}
		checklist = append(checklist, ChecklistBlock{
			Category: category,
			Priority: priority,
			Items:    append(tierItems(score, tiers), extra...),
		})
	}

	add("Resume", in.ResumeScore, resumeTiers, resumeExtras(in.ResumeDetails))
	add("Technical Skills", in.TechnicalScore, technicalTiers, technicalExtras(in.TechDetails))
	add("Behavioral/HR", in.BehavioralScore, behavioralTiers, behavioralExtras(in.HRDetails))

	// Stable sort keeps the resume/technical/behavioral order within a
	// priority band.
	sort.SliceStable(checklist, func(i, j int) bool {
		return priorityRank(checklist[i].Priority) < priorityRank(checklist[j].Priority)
	})
	return checklist
}

func priorityRank(p string) int {
	switch p {
	case "high":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}

func resumeExtras(d *Details) []string {
	if d == nil || len(d.MissingSkills) == 0 {
		return nil
	}
	missing := d.MissingSkills
	if len(missing) > 3 {
		missing = missing[:3]
	}
	return []string{"Add missing skills: " + strings.Join(missing, ", ")}
}

func technicalExtras(d *Details) []string {
	if d == nil || len(d.WeakAreas) == 0 {
		return nil
	}
	weak := d.WeakAreas
	if len(weak) > 2 {
		weak = weak[:2]
	}
	return []string{"Focus on weak areas: " + strings.Join(weak, ", ")}
}

// behavioralExtras adds items only for dimensions the caller measured.
// A zero dimension means unset, not a zero score, and contributes
// nothing.
func behavioralExtras(d *Details) []string {
	if d == nil {
		return nil
	}
	var extras []string
	if d.Structure > 0 && d.Structure < 6 {
		extras = append(extras, "Structure answers using STAR: Situation, Task, Action, Result")
	}
	if d.Confidence > 0 && d.Confidence < 6 {
		extras = append(extras, "Use more action verbs and avoid hedging language")
	}
	if d.Clarity > 0 && d.Clarity < 6 {
		extras = append(extras, "Keep answers concise (2-3 minutes per response)")
	}
	return extras
}

func strengthsAndWeaknesses(resume, technical, behavioral int) (strengths, weaknesses []ScoreArea) {
	categories := []ScoreArea{
		{Area: "Resume/ATS", Score: resume},
		{Area: "Technical Skills", Score: technical},
		{Area: "Behavioral/HR", Score: behavioral},
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Score > categories[j].Score
	})

	for _, c := range categories {
		switch {
		case c.Score >= 70:
			c.Label = "Good"
			if c.Score >= 80 {
				c.Label = "Strong"
			}
			strengths = append(strengths, c)
		case c.Score < 50:
			c.Label = "Needs Work"
			if c.Score < 35 {
				c.Label = "Critical"
			}
			weaknesses = append(weaknesses, c)
		}
	}
	return strengths, weaknesses
}

// criticalWeekOneActions maps the weakest category to its immediate step.
var criticalWeekOneActions = map[string]string{
	"resume":     "Revise resume with role-specific keywords",
	"technical":  "Start daily coding practice (30 min minimum)",
	"behavioral": "Prepare 3 STAR stories for common HR questions",
}

// buildActionItems derives timeboxed actions. It is deliberately
// independent of the checklist generator; both may flag the same weak area
// from different angles.
func buildActionItems(resume, technical, behavioral int, role string) []ActionItem {
	var actions []ActionItem

	minArea, minScore := "resume", resume
	if technical < minScore {
		minArea, minScore = "technical", technical
	}
	if behavioral < minScore {
		minArea, minScore = "behavioral", behavioral
	}

	if minScore < 50 {
		actions = append(actions, ActionItem{
			Action:    criticalWeekOneActions[minArea],
			Timeframe: "This Week",
			Priority:  "critical",
		})
	}

	actions = append(actions, ActionItem{
		Action:    fmt.Sprintf("Complete 10 practice problems for %s interviews", role),
		Timeframe: "2 Weeks",
		Priority:  "high",
	})

	if behavioral < 70 {
		actions = append(actions, ActionItem{
			Action:    "Record yourself answering HR questions and review",
			Timeframe: "2 Weeks",
			Priority:  "medium",
		})
	}

	if technical < 70 {
		actions = append(actions, ActionItem{
			Action:    "Complete a system design or advanced topic course",
			Timeframe: "1 Month",
			Priority:  "medium",
		})
	}

	actions = append(actions, ActionItem{
		Action:    "Do 2-3 mock interviews with peers or mentors",
		Timeframe: "1 Month",
		Priority:  "high",
	})

	return actions
}

func summaryFor(score int, role string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent preparation for %s roles! You demonstrate strong skills across all areas. Focus on maintaining your edge and practicing under real interview conditions.", role)
	case score >= 65:
		return fmt.Sprintf("Good preparation for %s interviews. You have a solid foundation with some areas to strengthen. Follow the improvement checklist to boost your readiness.", role)
	case score >= 50:
		return fmt.Sprintf("Moderate preparation for %s roles. You have potential but need focused improvement in key areas. Prioritize the high-priority items in your checklist.", role)
	case score >= 35:
		return fmt.Sprintf("Your %s interview preparation needs significant work. Focus on fundamentals and practice consistently. Consider dedicating 2-4 weeks of focused preparation.", role)
	default:
		return fmt.Sprintf("Substantial preparation needed for %s interviews. Start with the basics and build up systematically. Consider a structured preparation program.", role)
	}
}
