package analysis

import (
	"fmt"
	"strings"
)

// Feedback is the human-readable output of an evaluation.
type Feedback struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Strengths   []string `json:"strengths"`
}

const (
	maxIssues      = 5
	maxSuggestions = 4
	maxStrengths   = 3
)

// fallbackSuggestion guarantees the suggestions list is never empty: even a
// flawless answer gets a forward action.
const fallbackSuggestion = "Keep practicing out loud to maintain this level of delivery"

// feedbackRule maps a condition over signals and scores to a message. Rules
// are independent of each other and evaluated in a fixed order; only the
// first N matches per list are kept.
type feedbackRule func(sig Signals, ctx Context) (string, bool)

var issueRules = []feedbackRule{
	func(sig Signals, _ Context) (string, bool) {
		if sig.FillerCount > 3 {
			return fmt.Sprintf("High filler word usage (%d instances)", sig.FillerCount), true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if len(sig.WeakPhrases) > 0 {
			return fmt.Sprintf("Weak phrases detected: '%s'", sig.WeakPhrases[0].Phrase), true
		}
		return "", false
	},
	func(sig Signals, ctx Context) (string, bool) {
		switch classifyLength(sig.WordCount, ctx.Behavioral) {
		case lengthTooShort:
			return "Response is too brief and lacks detail", true
		case lengthTooLong:
			return "Response is overly long - consider being more concise", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if len(sig.StarMissing) > 0 {
			missing := sig.StarMissing
			if len(missing) > 2 {
				missing = missing[:2]
			}
			return "Missing STAR elements: " + strings.Join(missing, ", "), true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if !sig.HasMetrics {
			return "No quantified results or metrics provided", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if sig.VagueCount > 2 {
			return "Too much vague language used", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if !sig.HasExamples {
			return "No specific examples provided", true
		}
		return "", false
	},
}

var suggestionRules = []feedbackRule{
	func(sig Signals, _ Context) (string, bool) {
		if len(sig.WeakPhrases) > 0 {
			wp := sig.WeakPhrases[0]
			return fmt.Sprintf("Replace '%s' with stronger language: %s", wp.Phrase, wp.Suggestion), true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if top, ok := topFiller(sig.FillerWords); ok {
			return fmt.Sprintf("Reduce usage of '%s' (used %d times)", top.Word, top.Count), true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if !sig.HasMetrics {
			return "Add specific numbers: percentages, time saved, users impacted, etc.", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if contains(sig.StarMissing, "result") {
			return "End with clear results - what was the measurable outcome?", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if contains(sig.StarMissing, "situation") {
			return "Start by setting the context - when and where did this happen?", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if !sig.HasExamples {
			return "Include a specific example using 'for example' or 'specifically'", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if sig.UncertainCount > sig.ConfidentCount {
			return "Use more confident language: 'I achieved' instead of 'I tried'", true
		}
		return "", false
	},
	func(sig Signals, _ Context) (string, bool) {
		if !sig.ActiveVoice() {
			return "Use active voice: 'I created' instead of 'was created'", true
		}
		return "", false
	},
}

// SynthesizeFeedback maps dimension scores and raw signals to issues,
// suggestions, and strengths. Issues and strengths may legitimately be
// empty; suggestions never are.
func SynthesizeFeedback(sig Signals, ctx Context, clarity, structure, confidence int) Feedback {
	fb := Feedback{
		Issues:      collectRules(issueRules, sig, ctx, maxIssues),
		Suggestions: collectRules(suggestionRules, sig, ctx, maxSuggestions),
		Strengths:   identifyStrengths(sig, clarity, structure, confidence),
	}
	if len(fb.Suggestions) == 0 {
		fb.Suggestions = []string{fallbackSuggestion}
	}
	return fb
}

func collectRules(rules []feedbackRule, sig Signals, ctx Context, limit int) []string {
	var out []string
	for _, rule := range rules {
		if msg, ok := rule(sig, ctx); ok {
			out = append(out, msg)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func identifyStrengths(sig Signals, clarity, structure, confidence int) []string {
	var strengths []string
	if clarity >= 7 {
		strengths = append(strengths, "Clear and articulate communication")
	}
	if structure >= 7 {
		strengths = append(strengths, "Well-structured response")
	}
	if confidence >= 7 {
		strengths = append(strengths, "Confident and assertive tone")
	}
	if sig.HasMetrics {
		strengths = append(strengths, "Good use of quantified results")
	}
	if sig.StarCompleteness >= 75 {
		strengths = append(strengths, "Complete STAR format")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Room for improvement in communication style")
	}
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

func topFiller(hits []FillerHit) (FillerHit, bool) {
	if len(hits) == 0 {
		return FillerHit{}, false
	}
	top := hits[0]
	for _, h := range hits[1:] {
		if h.Count > top.Count {
			top = h
		}
	}
	return top, true
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// TechnicalFeedback renders a one-paragraph assessment of a technical
// answer from its sub-scores.
func TechnicalFeedback(breakdown TechnicalBreakdown, keywords []string, answer string) string {
	var parts []string

	if breakdown.Length < 50 {
		parts = append(parts, "Your answer is too brief. Try to elaborate more with examples and explanations.")
	} else if breakdown.Length >= 90 {
		parts = append(parts, "Good answer length.")
	}

	if breakdown.Keyword < 40 {
		if missing := missingKeywords(answer, keywords, 3); len(missing) > 0 {
			parts = append(parts, "Consider mentioning key concepts like: "+strings.Join(missing, ", ")+".")
		}
	} else if breakdown.Keyword >= 70 {
		parts = append(parts, "Good coverage of relevant technical concepts.")
	}

	if breakdown.Structure < 50 {
		parts = append(parts, "Try to structure your answer with clear points and examples.")
	} else if breakdown.Structure >= 80 {
		parts = append(parts, "Well-structured response.")
	}

	avg := (breakdown.Length + breakdown.Keyword + breakdown.Structure) / 3
	switch {
	case avg >= 80:
		parts = append(parts, "Excellent answer overall!")
	case avg >= 60:
		parts = append(parts, "Good answer with room for improvement.")
	case avg >= 40:
		parts = append(parts, "Adequate answer but needs more depth.")
	default:
		parts = append(parts, "Review the core concepts and practice explaining them clearly.")
	}

	return strings.Join(parts, " ")
}

// missingKeywords returns up to limit of the leading expected keywords that
// do not appear in the answer.
func missingKeywords(answer string, keywords []string, limit int) []string {
	lower := strings.ToLower(answer)
	var missing []string
	for i, k := range keywords {
		if i == limit {
			break
		}
		if !strings.Contains(lower, strings.ToLower(k)) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Grade converts a 0-10 communication score to a letter grade.
type Grade struct {
	Grade string `json:"grade"`
	Label string `json:"label"`
}

var gradeLadder = []struct {
	min   int
	grade Grade
}{
	{9, Grade{"A+", "Excellent"}},
	{8, Grade{"A", "Great"}},
	{7, Grade{"B+", "Good"}},
	{6, Grade{"B", "Satisfactory"}},
	{5, Grade{"C+", "Needs Work"}},
	{4, Grade{"C", "Below Average"}},
}

// GradeFor maps a 0-10 communication score to its letter grade.
func GradeFor(score int) Grade {
	for _, g := range gradeLadder {
		if score >= g.min {
			return g.grade
		}
	}
	return Grade{"D", "Poor"}
}
