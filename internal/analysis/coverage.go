package analysis

import "strings"

// DefaultCoverageScore is returned when no expected keywords are supplied.
// Absence of known keywords must not be rewarded with full marks, so the
// default stays deliberately conservative.
const DefaultCoverageScore = 30

// ScoreKeywordCoverage returns the percentage of expected keywords present
// in the answer, on 0-100. An empty keyword set yields
// DefaultCoverageScore.
func ScoreKeywordCoverage(text string, keywords []string) int {
	if len(keywords) == 0 {
		return DefaultCoverageScore
	}
	lower := strings.ToLower(text)
	found := 0
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			found++
		}
	}
	return found * 100 / len(keywords)
}

// TechnicalBreakdown holds the three 0-100 sub-scores behind a technical
// answer's total.
type TechnicalBreakdown struct {
	Length    int `json:"lengthScore"`
	Keyword   int `json:"keywordScore"`
	Structure int `json:"structureScore"`
}

// answerLengthRanges gives the expected word-count range per difficulty.
// Harder questions warrant longer answers.
var answerLengthRanges = map[Difficulty][2]int{
	DifficultyEasy:   {30, 150},
	DifficultyMedium: {50, 250},
	DifficultyHard:   {80, 400},
}

// lengthLadder is evaluated in order against the word count; the first
// matching rung supplies the score.
type lengthRung struct {
	match func(words, min, max int) bool
	score int
}

var answerLengthLadder = []lengthRung{
	{func(w, _, _ int) bool { return w < 5 }, 5},
	{func(w, _, _ int) bool { return w < 10 }, 10},
	{func(w, min, _ int) bool { return w < min/2 }, 20},
	{func(w, min, _ int) bool { return w < min }, 45},
	{func(w, _, max int) bool { return w <= max }, 100},
	{func(w, _, max int) bool { return w <= max*3/2 }, 75},
}

// scoreAnswerLength rates answer length appropriateness for the given
// difficulty, on 0-100.
func scoreAnswerLength(answer string, difficulty Difficulty) int {
	words := len(strings.Fields(answer))
	bounds, ok := answerLengthRanges[difficulty]
	if !ok {
		bounds = answerLengthRanges[DifficultyMedium]
	}
	for _, rung := range answerLengthLadder {
		if rung.match(words, bounds[0], bounds[1]) {
			return rung.score
		}
	}
	return 50
}

// scoreAnswerStructure rates the logical structure of a technical answer on
// 0-100. Structure must be earned: the base is low and bonuses come from
// sentence count, transitions, and examples. Answers that are mostly
// gibberish take a heavy penalty.
func scoreAnswerStructure(answer string) int {
	score := 20

	sentences := countSentences(answer)
	if sentences < 2 {
		if sentences == 1 {
			return 10
		}
		return 5
	}

	switch {
	case sentences >= 4:
		score += 25
	case sentences >= 3:
		score += 15
	default:
		score += 10
	}

	lower := strings.ToLower(answer)
	transitions := countPresent(lower, answerTransitionWords)
	switch {
	case transitions >= 3:
		score += 25
	case transitions >= 2:
		score += 15
	case transitions >= 1:
		score += 10
	}

	if strings.Contains(lower, "example") || strings.Contains(lower, "for instance") {
		score += 15
	}

	if looksLikeGibberish(answer) {
		score = max(5, score-30)
	}

	return min(100, score)
}

// looksLikeGibberish reports whether fewer than half the tokens are
// recognizable words.
func looksLikeGibberish(answer string) bool {
	words := strings.Fields(answer)
	if len(words) == 0 {
		return false
	}
	real := 0
	for _, w := range words {
		if _, ok := commonEnglishWords[strings.ToLower(w)]; ok {
			real++
		} else if len(w) > 2 && isAlpha(w) {
			real++
		}
	}
	return float64(real)/float64(len(words)) < 0.5
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// ScoreTechnicalAnswer combines length, keyword coverage, and structure
// into a 0-100 total. Keyword coverage dominates because it is the closest
// proxy for topical correctness.
func ScoreTechnicalAnswer(answer string, difficulty Difficulty, keywords []string) (int, TechnicalBreakdown) {
	breakdown := TechnicalBreakdown{
		Length:    scoreAnswerLength(answer, difficulty),
		Keyword:   ScoreKeywordCoverage(answer, keywords),
		Structure: scoreAnswerStructure(answer),
	}
	total := int(float64(breakdown.Length)*0.2 +
		float64(breakdown.Keyword)*0.5 +
		float64(breakdown.Structure)*0.3)
	return clamp(total, 0, 100), breakdown
}
