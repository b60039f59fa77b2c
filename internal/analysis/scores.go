package analysis

// Context carries the per-question parameters the scorers depend on.
type Context struct {
	Behavioral       bool       `json:"behavioral"`
	Difficulty       Difficulty `json:"difficulty"`
	Role             string     `json:"role"`
	ExpectedKeywords []string   `json:"expectedKeywords,omitempty"`
}

// minAnalyzableWords is the absolute floor below which every dimension
// scorer short-circuits to its minimum.
const minAnalyzableWords = 5

// lengthStatus classifies a response's word count against the ideal range
// for its context.
type lengthStatus int

const (
	lengthTooShort lengthStatus = iota
	lengthShort
	lengthIdeal
	lengthLong
	lengthTooLong
)

// idealLengthRange returns the expected word-count range. Behavioral
// answers are expected to be longer because a full STAR narrative takes
// more words than a technical definition.
func idealLengthRange(behavioral bool) (min, max int) {
	if behavioral {
		return 100, 300
	}
	return 50, 200
}

func classifyLength(wordCount int, behavioral bool) lengthStatus {
	min, max := idealLengthRange(behavioral)
	switch {
	case wordCount < 20:
		return lengthTooShort
	case wordCount < min:
		return lengthShort
	case wordCount > max*3/2:
		return lengthTooLong
	case wordCount > max:
		return lengthLong
	default:
		return lengthIdeal
	}
}

// penaltyTier is one rung of a threshold ladder: the first rung whose
// threshold is exceeded supplies the adjustment, remaining rungs are
// skipped.
type penaltyTier struct {
	above float64
	delta int
}

// tieredDelta walks a ladder and returns the first matching adjustment.
func tieredDelta(value float64, tiers []penaltyTier) int {
	for _, t := range tiers {
		if value > t.above {
			return t.delta
		}
	}
	return 0
}

// scoreRule is one ordered, independently-capped adjustment applied on top
// of a scorer's base score.
type scoreRule struct {
	name  string
	delta func(sig Signals, ctx Context) int
}

func applyRules(base int, rules []scoreRule, sig Signals, ctx Context) int {
	score := base
	for _, r := range rules {
		score += r.delta(sig, ctx)
	}
	return clamp(score, 0, 10)
}

var fillerClarityTiers = []penaltyTier{
	{above: 10, delta: -3},
	{above: 5, delta: -2},
	{above: 2, delta: -1},
}

var clarityRules = []scoreRule{
	{"filler ladder", func(sig Signals, _ Context) int {
		return tieredDelta(sig.FillerPercent, fillerClarityTiers)
	}},
	{"length", func(sig Signals, ctx Context) int {
		switch classifyLength(sig.WordCount, ctx.Behavioral) {
		case lengthTooShort:
			return -3
		case lengthShort, lengthTooLong:
			return -1
		default:
			return 0
		}
	}},
	{"positive indicators", func(sig Signals, _ Context) int {
		return min(sig.PositiveClarity, 2)
	}},
	{"negative indicators", func(sig Signals, _ Context) int {
		return -min(sig.NegativeClarity, 2)
	}},
	{"vague terms", func(sig Signals, _ Context) int {
		return -min(sig.VagueCount, 2)
	}},
	{"examples", func(sig Signals, _ Context) int {
		if sig.HasExamples {
			return 1
		}
		return 0
	}},
}

// ScoreClarity rates how clearly the response communicates, on 0-10.
func ScoreClarity(sig Signals, ctx Context) int {
	if sig.WordCount < minAnalyzableWords {
		return 0
	}
	return applyRules(7, clarityRules, sig, ctx)
}

var structureRules = []scoreRule{
	{"metrics", func(sig Signals, _ Context) int {
		if sig.HasMetrics {
			return 1
		}
		return 0
	}},
	{"transitions", func(sig Signals, _ Context) int {
		if sig.HasTransitions {
			return 1
		}
		return 0
	}},
	{"length floor", func(sig Signals, ctx Context) int {
		if classifyLength(sig.WordCount, ctx.Behavioral) == lengthTooShort {
			return -2
		}
		return 0
	}},
}

// ScoreStructure rates the response's organization on 0-10. Behavioral
// answers are driven by STAR completeness; technical answers get a looser
// fixed base with a transition bonus.
func ScoreStructure(sig Signals, ctx Context) int {
	if sig.WordCount < minAnalyzableWords {
		return 0
	}
	base := 6
	if ctx.Behavioral {
		base = int(sig.StarCompleteness / 10)
	} else if sig.HasTransitions {
		base++
	}
	return applyRules(base, structureRules, sig, ctx)
}

var confidenceRules = []scoreRule{
	{"confident phrases", func(sig Signals, _ Context) int {
		return min(sig.ConfidentCount, 3)
	}},
	{"uncertain phrases", func(sig Signals, _ Context) int {
		return -min(sig.UncertainCount, 3)
	}},
	{"passive voice", func(sig Signals, _ Context) int {
		return -min(sig.PassiveCount, 2)
	}},
	{"filler erosion", func(sig Signals, _ Context) int {
		if sig.FillerPercent > 5 {
			return -1
		}
		return 0
	}},
	{"active voice", func(sig Signals, _ Context) int {
		if sig.ActiveVoice() {
			return 1
		}
		return 0
	}},
}

// ScoreConfidence rates how assertive the response sounds, on 0-10.
func ScoreConfidence(sig Signals, ctx Context) int {
	if sig.WordCount < minAnalyzableWords {
		return 0
	}
	return applyRules(6, confidenceRules, sig, ctx)
}

// CommunicationScore combines the three communication dimensions into a
// single 0-10 value. The weights favor clarity and structure slightly over
// confidence.
func CommunicationScore(clarity, structure, confidence int) int {
	overall := int(float64(clarity)*0.35 + float64(structure)*0.35 + float64(confidence)*0.30)
	return clamp(overall, 0, 10)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
