// Package ats scores resume text against role skill lists, the way an
// applicant tracking system would: case-insensitive matching over a fixed
// catalog, with core skills weighted above advanced ones.
package ats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Core and advanced skills contribute 60 and 40 points respectively to the
// 0-100 match score.
const (
	coreWeight     = 60
	advancedWeight = 40
)

// Analysis is the outcome of scoring one resume against one role.
type Analysis struct {
	Score         int      `json:"atsScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	WeakAreas     []string `json:"weakAreas"`
	Suggestions   []string `json:"suggestions"`
	CoreMatch     string   `json:"coreMatch"`
	AdvancedMatch string   `json:"advancedMatch"`
}

// ScoreResume compares resume text against the role's skill lists and
// returns the weighted match analysis. Unknown roles fall back to the
// default role's skill set.
func ScoreResume(resumeText, role string) Analysis {
	skills := SkillsForRole(role)
	lower := strings.ToLower(resumeText)

	matchedCore, missingCore := partitionSkills(skills.Core, lower)
	matchedAdvanced, missingAdvanced := partitionSkills(skills.Advanced, lower)

	score := 0
	if len(skills.Core) > 0 {
		score += len(matchedCore) * coreWeight / len(skills.Core)
	}
	if len(skills.Advanced) > 0 {
		score += len(matchedAdvanced) * advancedWeight / len(skills.Advanced)
	}

	weak := missingCore
	if len(weak) > 3 {
		weak = weak[:3]
	}

	return Analysis{
		Score:         score,
		MatchedSkills: append(append([]string(nil), matchedCore...), matchedAdvanced...),
		MissingSkills: append(append([]string(nil), missingCore...), missingAdvanced...),
		WeakAreas:     append([]string(nil), weak...),
		Suggestions:   buildSuggestions(missingCore, missingAdvanced, score),
		CoreMatch:     fmt.Sprintf("%d/%d", len(matchedCore), len(skills.Core)),
		AdvancedMatch: fmt.Sprintf("%d/%d", len(matchedAdvanced), len(skills.Advanced)),
	}
}

func partitionSkills(skills []string, resumeLower string) (matched, missing []string) {
	for _, skill := range skills {
		if SkillFound(skill, resumeLower) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

var (
	boundaryPatterns   = make(map[string]*regexp.Regexp)
	boundaryPatternsMu sync.RWMutex
)

// SkillFound reports whether a skill or any of its known variations
// appears in the lowercased resume text. Short names additionally get a
// word-boundary check so "R" does not match every word containing the
// letter.
func SkillFound(skill, resumeLower string) bool {
	skillLower := strings.ToLower(skill)
	if strings.Contains(resumeLower, skillLower) {
		return true
	}
	for _, variation := range skillVariations[skill] {
		if strings.Contains(resumeLower, strings.ToLower(variation)) {
			return true
		}
	}
	return boundaryPattern(skillLower).MatchString(resumeLower)
}

func boundaryPattern(skillLower string) *regexp.Regexp {
	boundaryPatternsMu.RLock()
	re, ok := boundaryPatterns[skillLower]
	boundaryPatternsMu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(`\b` + regexp.QuoteMeta(skillLower) + `\b`)
	boundaryPatternsMu.Lock()
	boundaryPatterns[skillLower] = re
	boundaryPatternsMu.Unlock()
	return re
}

func buildSuggestions(missingCore, missingAdvanced []string, score int) []string {
	var suggestions []string

	switch {
	case score < 40:
		suggestions = append(suggestions, "Your resume needs significant improvements to match this role")
	case score < 60:
		suggestions = append(suggestions, "Focus on adding more relevant skills to improve your match")
	case score < 80:
		suggestions = append(suggestions, "Good foundation! Consider highlighting advanced skills")
	default:
		suggestions = append(suggestions, "Excellent match! Fine-tune with industry keywords")
	}

	if len(missingCore) > 0 {
		top := missingCore
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, "Add these core skills: "+strings.Join(top, ", "))
	}

	if len(missingAdvanced) > 0 && score >= 60 {
		top := missingAdvanced
		if len(top) > 2 {
			top = top[:2]
		}
		suggestions = append(suggestions, "Consider learning: "+strings.Join(top, ", "))
	}

	suggestions = append(suggestions, "Use action verbs and quantify achievements where possible")
	return suggestions
}

// GapPriority is one entry in the prioritized learning order.
type GapPriority struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Weight   int    `json:"weight"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// GapAnalysis details how the resume's skills line up against a role and
// what to learn first.
type GapAnalysis struct {
	MatchPercent         int           `json:"skillMatchPercentage"`
	CoreMatchPercent     int           `json:"coreMatchPercentage"`
	AdvancedMatchPercent int           `json:"advancedMatchPercentage"`
	MatchedCore          []string      `json:"matchedCoreSkills"`
	MatchedAdvanced      []string      `json:"matchedAdvancedSkills"`
	MissingCore          []string      `json:"missingCoreSkills"`
	MissingAdvanced      []string      `json:"missingAdvancedSkills"`
	PriorityOrder        []GapPriority `json:"priorityImprovementOrder"`
	TotalRequired        int           `json:"totalSkillsRequired"`
	TotalMatched         int           `json:"totalSkillsMatched"`
}

// AnalyzeGaps computes the skill-gap breakdown and a learning order in
// which missing skills should be addressed.
func AnalyzeGaps(resumeText, role string) GapAnalysis {
	skills := SkillsForRole(role)
	lower := strings.ToLower(resumeText)

	matchedCore, missingCore := partitionSkills(skills.Core, lower)
	matchedAdvanced, missingAdvanced := partitionSkills(skills.Advanced, lower)

	total := len(skills.Core) + len(skills.Advanced)
	matched := len(matchedCore) + len(matchedAdvanced)

	analysis := GapAnalysis{
		MatchedCore:     matchedCore,
		MatchedAdvanced: matchedAdvanced,
		MissingCore:     missingCore,
		MissingAdvanced: missingAdvanced,
		PriorityOrder:   priorityOrder(missingCore, missingAdvanced, role),
		TotalRequired:   total,
		TotalMatched:    matched,
	}
	if total > 0 {
		analysis.MatchPercent = matched * 100 / total
	}
	if len(skills.Core) > 0 {
		analysis.CoreMatchPercent = len(matchedCore) * 100 / len(skills.Core)
	}
	if len(skills.Advanced) > 0 {
		analysis.AdvancedMatchPercent = len(matchedAdvanced) * 100 / len(skills.Advanced)
	}
	return analysis
}

func priorityOrder(missingCore, missingAdvanced []string, role string) []GapPriority {
	priorities := rolePriorities[role]

	var order []GapPriority
	for _, skill := range missingCore {
		weight, ok := priorities[skill]
		if !ok {
			weight = 5
		}
		order = append(order, GapPriority{
			Skill:    skill,
			Priority: "high",
			Weight:   weight,
			Category: "core",
			Reason:   "Essential for role",
		})
	}
	for _, skill := range missingAdvanced {
		weight, ok := priorities[skill]
		if !ok {
			weight = 3
		}
		order = append(order, GapPriority{
			Skill:    skill,
			Priority: "medium",
			Weight:   weight,
			Category: "advanced",
			Reason:   "Enhances competitiveness",
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Weight > order[j].Weight
	})
	return order
}
