package analysis

import "strings"

// Input is one evaluation request: the response text plus the question
// context it was given in.
type Input struct {
	Text    string  `json:"text"`
	Context Context `json:"context"`
}

// DimensionScores holds the bounded per-dimension results. Clarity,
// structure, and confidence are on 0-10; keyword coverage is on 0-100. The
// two ranges are reported side by side and never mixed arithmetically.
type DimensionScores struct {
	Clarity         int `json:"clarity"`
	Structure       int `json:"structure"`
	Confidence      int `json:"confidence"`
	KeywordCoverage int `json:"keywordCoverage"`
}

// Result is the complete outcome of evaluating one response.
//
// Overall is on 0-10 for behavioral context and 0-100 for technical
// context; NormalizedScore is always on 0-100 and is what the difficulty
// controller consumes.
type Result struct {
	Scores          DimensionScores     `json:"scores"`
	Overall         int                 `json:"overall"`
	NormalizedScore int                 `json:"normalizedScore"`
	Breakdown       *TechnicalBreakdown `json:"breakdown,omitempty"`
	Feedback        Feedback            `json:"feedback"`
	TechnicalNote   string              `json:"technicalNote,omitempty"`
	NextDifficulty  Difficulty          `json:"nextDifficulty"`
	Signals         Signals             `json:"signals"`
}

// minEvaluableChars mirrors the extractor floor: anything shorter is
// reported as unanalyzable rather than scored.
const minEvaluableChars = 10

// Evaluate runs the full pipeline: signal extraction, dimension scoring,
// feedback synthesis, and the difficulty transition. It is deterministic
// and pure; the only possible error is a validation error for an
// unrecognized difficulty, which is a caller bug rather than bad content.
// Empty or near-empty text degrades to minimum scores, never errors.
func Evaluate(in Input) (*Result, error) {
	difficulty := in.Context.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	difficulty, err := ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}
	in.Context.Difficulty = difficulty

	if len(strings.TrimSpace(in.Text)) < minEvaluableChars {
		return tooShortResult(in.Context), nil
	}

	sig := ExtractSignals(in.Text)

	scores := DimensionScores{
		Clarity:         ScoreClarity(sig, in.Context),
		Structure:       ScoreStructure(sig, in.Context),
		Confidence:      ScoreConfidence(sig, in.Context),
		KeywordCoverage: ScoreKeywordCoverage(in.Text, in.Context.ExpectedKeywords),
	}

	res := &Result{
		Scores:   scores,
		Feedback: SynthesizeFeedback(sig, in.Context, scores.Clarity, scores.Structure, scores.Confidence),
		Signals:  sig,
	}

	if in.Context.Behavioral {
		res.Overall = CommunicationScore(scores.Clarity, scores.Structure, scores.Confidence)
		res.NormalizedScore = res.Overall * 10
	} else {
		total, breakdown := ScoreTechnicalAnswer(in.Text, difficulty, in.Context.ExpectedKeywords)
		res.Overall = total
		res.NormalizedScore = total
		res.Breakdown = &breakdown
		res.TechnicalNote = TechnicalFeedback(breakdown, in.Context.ExpectedKeywords, in.Text)
	}

	res.NextDifficulty = NextDifficulty(res.NormalizedScore, difficulty)
	return res, nil
}

// tooShortResult is the degraded output for text below the analyzable
// floor: zero scores and a fixed issue/suggestion pair.
func tooShortResult(ctx Context) *Result {
	sig := Signals{StarMissing: starComponents}
	return &Result{
		Scores: DimensionScores{
			KeywordCoverage: 0,
		},
		Overall:         0,
		NormalizedScore: 0,
		Feedback: Feedback{
			Issues:      []string{"Response is too short to analyze"},
			Suggestions: []string{"Provide a more detailed response"},
		},
		NextDifficulty: NextDifficulty(0, ctx.Difficulty),
		Signals:        sig,
	}
}
