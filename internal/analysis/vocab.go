package analysis

import "regexp"

// Vocabulary tables used by the signal extractor. They are read-only after
// package init and safe to share across concurrent callers.

// fillerWords holds filler words and phrases that add no propositional
// content. Single words are matched against cleaned tokens; multi-word
// entries are matched with phrase boundaries.
var fillerWords = map[string]struct{}{
	"um": {}, "uh": {}, "like": {}, "you know": {}, "basically": {},
	"actually": {}, "literally": {}, "so": {}, "well": {}, "i mean": {},
	"kind of": {}, "sort of": {}, "i guess": {}, "i think": {},
	"right": {}, "okay": {}, "er": {}, "ah": {}, "hmm": {}, "yeah": {},
	"yep": {}, "nope": {}, "stuff": {}, "things": {}, "whatever": {},
	"anyway": {}, "anyways": {}, "honestly": {}, "obviously": {},
	"clearly": {}, "definitely": {}, "absolutely": {}, "totally": {},
	"just": {}, "really": {}, "very": {}, "pretty much": {},
	"i feel like": {}, "to be honest": {}, "tbh": {},
	"at the end of the day": {}, "going forward": {}, "in terms of": {},
	"with respect to": {}, "as such": {}, "per se": {},
}

// WeakPhrase pairs a hedging phrase with the stronger language that should
// replace it.
type WeakPhrase struct {
	Phrase     string
	Suggestion string
}

var weakPhrases = []WeakPhrase{
	{"i tried to", "I accomplished"},
	{"i helped with", "I led/contributed to"},
	{"i was responsible for", "I managed/delivered"},
	{"we did", "I specifically contributed"},
	{"it was good", "quantify the impact"},
	{"it went well", "describe specific outcomes"},
	{"i think i", "I confidently"},
	{"maybe i could", "I will"},
	{"i'm not sure but", "Based on my analysis"},
}

// STAR component names in canonical order.
var starComponents = []string{"situation", "task", "action", "result"}

// starIndicators maps each STAR component to the phrases that signal its
// presence. A component counts as found if any one indicator appears.
var starIndicators = map[string][]string{
	"situation": {"situation", "context", "background", "scenario", "when", "while working"},
	"task":      {"task", "goal", "objective", "challenge", "problem", "needed to", "had to", "responsible for"},
	"action":    {"action", "i did", "i implemented", "i created", "i developed", "i led", "i designed", "steps i took"},
	"result":    {"result", "outcome", "impact", "achieved", "improved", "increased", "decreased", "saved", "delivered", "success"},
}

var clarityPositive = []string{
	"specifically", "for example", "such as", "in particular",
	"the reason", "because", "therefore", "as a result",
	"first", "second", "third", "finally", "in conclusion",
	"my approach", "i decided to", "the key insight",
}

var clarityNegative = []string{
	"etc", "and so on", "things like that", "you get the idea",
	"blah blah", "yada yada", "something something",
	"long story short", "to make a long story short",
}

var vagueTerms = []string{
	"something", "somehow", "somewhere", "stuff", "things", "whatever", "etc",
}

var exampleIndicators = []string{
	"for example", "for instance", "such as", "specifically", "in particular",
}

var transitionWords = []string{
	"first", "then", "next", "finally", "as a result", "because", "therefore", "however",
}

var confidentPhrases = []string{
	"i achieved", "i delivered", "i led", "i created", "i solved",
	"i implemented", "successfully", "effectively",
}

var uncertainPhrases = []string{
	"i think", "i guess", "maybe", "probably", "i'm not sure",
	"kind of", "sort of", "i tried",
}

var passiveIndicators = []string{
	"was done", "was made", "was created", "were developed", "has been",
}

// metricsPattern matches explicit quantification: percentages or numbers
// followed by a unit word.
var metricsPattern = regexp.MustCompile(`\d+%|\d+\s*(percent|users|customers|times|x|hours|days|weeks|months)`)

// answerTransitionWords is the wider transition vocabulary used when scoring
// technical answer structure on the 0-100 scale.
var answerTransitionWords = []string{
	"first", "second", "third", "finally", "however", "therefore",
	"for example", "additionally", "moreover", "in conclusion",
	"because", "since", "as a result", "on the other hand",
}

// commonEnglishWords anchors the gibberish check: an answer where fewer than
// half the tokens are common words or plausible alphabetic words is treated
// as noise.
var commonEnglishWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "it": {}, "this": {}, "that": {},
	"i": {}, "we": {}, "you": {}, "they": {}, "my": {}, "your": {},
	"can": {}, "will": {}, "be": {}, "have": {}, "has": {}, "do": {},
	"does": {}, "not": {}, "from": {}, "by": {}, "as": {}, "if": {},
	"so": {}, "what": {}, "how": {}, "why": {}, "when": {}, "where": {},
	"which": {},
}
