package analysis

import (
	"strings"
	"unicode"
)

// FillerHit records one distinct filler word and how often it occurred.
type FillerHit struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Signals is the immutable measurement snapshot extracted from a single
// response. It is derived deterministically from the text and carries no
// hidden state.
type Signals struct {
	WordCount         int          `json:"wordCount"`
	SentenceCount     int          `json:"sentenceCount"`
	AvgSentenceLength float64      `json:"avgSentenceLength"`
	FillerWords       []FillerHit  `json:"fillerWords"`
	FillerCount       int          `json:"fillerCount"`
	FillerPercent     float64      `json:"fillerPercent"`
	WeakPhrases       []WeakPhrase `json:"weakPhrases"`
	StarFound         []string     `json:"starFound"`
	StarMissing       []string     `json:"starMissing"`
	StarCompleteness  float64      `json:"starCompleteness"`
	HasMetrics        bool         `json:"hasMetrics"`
	HasTransitions    bool         `json:"hasTransitions"`
	HasExamples       bool         `json:"hasExamples"`
	ConfidentCount    int          `json:"confidentCount"`
	UncertainCount    int          `json:"uncertainCount"`
	PassiveCount      int          `json:"passiveCount"`
	VagueCount        int          `json:"vagueCount"`
	PositiveClarity   int          `json:"positiveClarity"`
	NegativeClarity   int          `json:"negativeClarity"`
}

// ActiveVoice reports whether the response reads as predominantly active
// voice (fewer than two passive indicators).
func (s Signals) ActiveVoice() bool {
	return s.PassiveCount < 2
}

// ExtractSignals scans a response and returns its measurement bundle. It
// never fails: empty or whitespace-only text yields a zeroed bundle with
// StarMissing listing all four components.
func ExtractSignals(text string) Signals {
	sig := Signals{StarMissing: starComponents}

	words := strings.Fields(text)
	sig.WordCount = len(words)
	if sig.WordCount == 0 {
		return sig
	}

	lower := strings.ToLower(text)
	sig.SentenceCount = countSentences(text)
	sig.AvgSentenceLength = float64(sig.WordCount) / float64(max(sig.SentenceCount, 1))

	sig.FillerWords, sig.FillerCount = findFillers(lower, words)
	sig.FillerPercent = float64(sig.FillerCount) / float64(sig.WordCount) * 100

	for _, wp := range weakPhrases {
		if strings.Contains(lower, wp.Phrase) {
			sig.WeakPhrases = append(sig.WeakPhrases, wp)
		}
	}

	sig.StarFound, sig.StarMissing = findStarComponents(lower)
	sig.StarCompleteness = float64(len(sig.StarFound)) / float64(len(starComponents)) * 100

	sig.HasMetrics = metricsPattern.MatchString(lower)
	sig.HasTransitions = anyPresent(lower, transitionWords)
	sig.HasExamples = anyPresent(lower, exampleIndicators)

	sig.ConfidentCount = countPresent(lower, confidentPhrases)
	sig.UncertainCount = countPresent(lower, uncertainPhrases)
	sig.PassiveCount = countPresent(lower, passiveIndicators)
	sig.VagueCount = countPresent(lower, vagueTerms)
	sig.PositiveClarity = countPresent(lower, clarityPositive)
	sig.NegativeClarity = countPresent(lower, clarityNegative)

	return sig
}

// findFillers detects filler vocabulary. Single-word fillers are matched
// against punctuation-stripped tokens; multi-word fillers use boundary
// matching so "so" never matches inside "solution".
func findFillers(lower string, words []string) ([]FillerHit, int) {
	counts := make(map[string]int)
	order := make([]string, 0, 4)

	for _, w := range words {
		clean := cleanToken(w)
		if clean == "" {
			continue
		}
		if _, ok := fillerWords[clean]; ok {
			if counts[clean] == 0 {
				order = append(order, clean)
			}
			counts[clean]++
		}
	}

	for filler := range fillerWords {
		if !strings.Contains(filler, " ") {
			continue
		}
		if n := countPhraseOccurrences(lower, filler); n > 0 {
			if counts[filler] == 0 {
				order = append(order, filler)
			}
			counts[filler] += n
		}
	}

	var hits []FillerHit
	total := 0
	for _, filler := range order {
		hits = append(hits, FillerHit{Word: filler, Count: counts[filler]})
		total += counts[filler]
	}
	return hits, total
}

func findStarComponents(lower string) (found, missing []string) {
	for _, component := range starComponents {
		if anyPresent(lower, starIndicators[component]) {
			found = append(found, component)
		} else {
			missing = append(missing, component)
		}
	}
	return found, missing
}

// countSentences splits on terminating punctuation and counts non-empty
// fragments.
func countSentences(text string) int {
	n := 0
	for _, frag := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(frag) != "" {
			n++
		}
	}
	return n
}

// cleanToken lowercases a token and strips everything except letters and
// digits.
func cleanToken(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// countPhraseOccurrences counts boundary-delimited occurrences of phrase in
// s. Both arguments must already be lowercase.
func countPhraseOccurrences(s, phrase string) int {
	n := 0
	for start := 0; ; {
		i := strings.Index(s[start:], phrase)
		if i < 0 {
			return n
		}
		at := start + i
		if boundaryBefore(s, at) && boundaryAfter(s, at+len(phrase)) {
			n++
		}
		start = at + len(phrase)
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r := rune(s[i-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// anyPresent reports whether any phrase from the list occurs in the text.
func anyPresent(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// countPresent counts how many distinct phrases from the list occur in the
// text. Presence, not occurrence count, is what the scorers cap on.
func countPresent(lower string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			n++
		}
	}
	return n
}
