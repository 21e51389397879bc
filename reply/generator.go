// Package reply produces the assistant's text for one classified input.
// Generators are pure functions of (normalized input, knowledge base,
// current instant, random source); they keep no state between turns.
// Random selection is uniform over fixed pools so a seeded source makes
// every reply deterministic.
package reply

import (
	"campus-chat/domain"
	"campus-chat/knowledge"
	"math/rand"
	"time"
)

type Generator struct {
	kb            *knowledge.Base
	rng           *rand.Rand
	assistantName string
}

func NewGenerator(kb *knowledge.Base, assistantName string, rng *rand.Rand) *Generator {
	return &Generator{kb: kb, rng: rng, assistantName: assistantName}
}

// Reply dispatches one category to its generator. Input must already be
// normalized. Total: every category yields text.
func (g *Generator) Reply(category domain.Category, input string, now time.Time) string {
	switch category {
	case domain.CategoryBus:
		return g.busReply(input)
	case domain.CategoryInstitution:
		return g.institutionReply(input)
	case domain.CategoryGreeting:
		return g.pick(g.greetingPool())
	case domain.CategoryIdentity:
		return g.identityReply()
	case domain.CategoryWellbeing:
		return g.pick(wellbeingPool)
	case domain.CategoryCapabilities:
		return g.capabilitiesReply()
	case domain.CategoryDateTime:
		return dateTimeReply(now)
	case domain.CategoryWeather:
		return weatherReply
	case domain.CategoryArithmetic:
		return arithmeticReply(input)
	case domain.CategoryGratitude:
		return g.pick(gratitudePool)
	case domain.CategoryFarewell:
		return g.pick(farewellPool)
	case domain.CategoryCompliment:
		return complimentReply
	default:
		return g.contextualReply(input)
	}
}

// pick selects uniformly from a fixed pool. No repetition avoidance
// across turns, matching the reference behavior.
func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
