// Package classifier turns normalized user input into a reply category.
// Classification is an ordered list of (predicate, category) rules with
// first-match-wins semantics; the order is the contract, not a scoring
// detail. The final rule always matches, so classification is total.
package classifier

import (
	"campus-chat/domain"
	"campus-chat/knowledge"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Rule pairs one predicate with the category it selects.
type Rule struct {
	Category domain.Category
	Match    func(input string) bool
}

type Classifier struct {
	rules          []Rule
	transportNouns *goahocorasick.Machine
}

// New builds the rule chain and the proper-noun automaton over the
// knowledge base's transport names (route names, stop labels, crew).
func New(kb *knowledge.Base) (*Classifier, error) {
	nouns := kb.TransportNouns()
	patterns := make([][]rune, len(nouns))
	for i, noun := range nouns {
		patterns[i] = []rune(noun)
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}

	c := &Classifier{transportNouns: machine}
	c.rules = []Rule{
		{domain.CategoryBus, c.matchBus},
		{domain.CategoryInstitution, matchInstitution(kb.ClubNouns())},
		{domain.CategoryGreeting, matchAnyPrefix(greetingPrefixes)},
		{domain.CategoryIdentity, matchAnySubstring(identityPhrases)},
		{domain.CategoryWellbeing, matchWellbeing},
		{domain.CategoryCapabilities, matchAnySubstring(capabilityPhrases)},
		{domain.CategoryDateTime, matchDateTime},
		{domain.CategoryWeather, matchAnySubstring(weatherKeywords)},
		{domain.CategoryArithmetic, matchArithmetic},
		{domain.CategoryGratitude, matchAnySubstring(gratitudeKeywords)},
		{domain.CategoryFarewell, matchAnySubstring(farewellKeywords)},
		{domain.CategoryCompliment, matchAnyWord(complimentKeywords)},
		{domain.CategoryContextual, func(string) bool { return true }},
	}
	return c, nil
}

// Classify evaluates the rules in order and returns the first match.
// Input must already be normalized.
func (c *Classifier) Classify(input string) domain.Category {
	for _, rule := range c.rules {
		if rule.Match(input) {
			return rule.Category
		}
	}
	// Unreachable, the Contextual rule is total.
	return domain.CategoryContextual
}

// Rules exposes the evaluation order for inspection and tests.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Normalize folds raw input the way every predicate expects it.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

var busKeywords = []string{
	"bus", "buses", "shuttle", "route", "routes", "stop", "stops",
	"pickup", "boarding", "driver", "incharge",
}

func (c *Classifier) matchBus(input string) bool {
	if matchAnyWord(busKeywords)(input) || strings.Contains(input, "pick up") {
		return true
	}
	hits := c.transportNouns.MultiPatternSearch([]rune(input), false)
	return len(hits) > 0
}

var institutionKeywords = []string{
	"takshashila", "university", "college", "admission", "course",
	"program", "faculty", "school", "department", "location", "address",
	"contact", "website", "vision", "mission", "facilities", "hostel",
	"library", "laboratory", "research", "accreditation", "ugc",
	"established", "founder", "promoting", "manakula", "vinayagar",
	"club", "clubs",
}

// clubContextKeywords gate bare club aliases: "music" alone is a topic
// for the contextual buckets, "where is the music room" is a club query.
var clubContextKeywords = []string{"club", "room", "where", "location", "when", "time"}

func matchInstitution(clubNouns []string) func(string) bool {
	nouns := matchAnySubstring(clubNouns)
	clubContext := matchAnySubstring(clubContextKeywords)
	return func(input string) bool {
		if matchAnySubstring(institutionKeywords)(input) {
			return true
		}
		return nouns(input) && clubContext(input)
	}
}

var greetingPrefixes = []string{
	"hi", "hello", "hey", "greetings", "good morning", "good afternoon",
	"good evening", "namaste",
}

var identityPhrases = []string{
	"your name", "who are you", "introduce yourself", "what are you called",
}

func matchWellbeing(input string) bool {
	if strings.Contains(input, "how are you") {
		return true
	}
	if !strings.Contains(input, "how") {
		return false
	}
	return matchAnySubstring([]string{"doing", "feeling", "going"})(input)
}

var capabilityPhrases = []string{
	"help", "what can you do", "assist", "capabilities", "features",
	"what do you know",
}

func matchDateTime(input string) bool {
	return matchAnyWord([]string{"time", "date", "today", "day"})(input)
}

var weatherKeywords = []string{
	"weather", "temperature", "rain", "sunny", "cloudy", "climate",
}

var arithmeticWords = []string{
	"calculate", "solve", "compute", "math", "percentage", "percent",
}

// A bare operator anywhere is a cue even without flanking numbers; the
// generator answers those with its usage hint.
func matchArithmetic(input string) bool {
	if strings.ContainsAny(input, "+-*/") {
		return true
	}
	return matchAnyWord(arithmeticWords)(input)
}

var gratitudeKeywords = []string{"thank", "thanks", "appreciate", "grateful"}

var farewellKeywords = []string{
	"bye", "goodbye", "see you", "farewell", "take care", "exit", "quit",
}

var complimentKeywords = []string{
	"good", "great", "nice", "awesome", "wonderful", "amazing",
	"excellent", "fantastic", "brilliant", "smart", "clever",
}

func matchAnySubstring(keywords []string) func(string) bool {
	return func(input string) bool {
		for _, kw := range keywords {
			if strings.Contains(input, kw) {
				return true
			}
		}
		return false
	}
}

func matchAnyPrefix(prefixes []string) func(string) bool {
	return func(input string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(input, prefix) {
				return true
			}
		}
		return false
	}
}

// matchAnyWord checks whole tokens so "stop" never fires on "stopped".
func matchAnyWord(keywords []string) func(string) bool {
	return func(input string) bool {
		for _, token := range strings.Fields(input) {
			token = strings.Trim(token, ".,!?;:'\"()")
			for _, kw := range keywords {
				if token == kw {
					return true
				}
			}
		}
		return false
	}
}
