// Package knowledge holds the static campus data (institution profile,
// club directory, shuttle routes) and the indices derived from it.
// Everything here is loaded once at startup and read-only afterwards.
package knowledge

import (
	"campus-chat/domain"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type Base struct {
	Profile         domain.InstitutionProfile
	Clubs           []domain.Club
	Routes          []domain.Route
	ClubMeetingTime string

	clubAliases  map[string]string
	routeAliases map[string]int
	stopIndex    StopIndex
}

// Load assembles the knowledge base and derives the stop index.
func Load() *Base {
	rs := routes()
	sort.Slice(rs, func(i, j int) bool { return rs[i].Number < rs[j].Number })
	return &Base{
		Profile:         profile(),
		Clubs:           clubs(),
		Routes:          rs,
		ClubMeetingTime: clubMeetingTime,
		clubAliases:     clubAliases(),
		routeAliases:    routeAliases(),
		stopIndex:       buildStopIndex(rs),
	}
}

func (b *Base) StopIndex() StopIndex {
	return b.stopIndex
}

// RouteByNumber resolves an explicit route number.
func (b *Base) RouteByNumber(n int) (domain.Route, bool) {
	return lo.Find(b.Routes, func(r domain.Route) bool { return r.Number == n })
}

// RouteByAlias resolves a corridor keyword contained in the input.
func (b *Base) RouteByAlias(input string) (domain.Route, bool) {
	for alias, number := range b.routeAliases {
		if strings.Contains(input, alias) {
			return b.RouteByNumber(number)
		}
	}
	return domain.Route{}, false
}

// RouteByCrew resolves a route whose driver or incharge name appears in
// the input.
func (b *Base) RouteByCrew(input string) (domain.Route, bool) {
	return lo.Find(b.Routes, func(r domain.Route) bool {
		for _, name := range []string{r.DriverName, r.InchargeName} {
			if name != "" && strings.Contains(input, strings.ToLower(name)) {
				return true
			}
		}
		return false
	})
}

// ClubByAlias resolves a club name keyword contained in the input.
// Longer aliases are tried first so "sports club" beats "club".
func (b *Base) ClubByAlias(input string) (domain.Club, bool) {
	aliases := lo.Keys(b.clubAliases)
	sort.Slice(aliases, func(i, j int) bool { return len(aliases[i]) > len(aliases[j]) })
	for _, alias := range aliases {
		if strings.Contains(input, alias) {
			return b.clubByName(b.clubAliases[alias])
		}
	}
	return domain.Club{}, false
}

// ClubByRoom cross-references a room label token against every club.
func (b *Base) ClubByRoom(room string) (domain.Club, bool) {
	room = strings.ToLower(room)
	return lo.Find(b.Clubs, func(c domain.Club) bool {
		return lo.ContainsBy(c.Rooms, func(r string) bool {
			return strings.ToLower(r) == room
		})
	})
}

func (b *Base) clubByName(name string) (domain.Club, bool) {
	return lo.Find(b.Clubs, func(c domain.Club) bool { return c.Name == name })
}

// TransportNouns lists every name the classifier should treat as a
// shuttle reference: route names and aliases, stop labels, crew names.
// Club names stay out so directory questions keep their own branch.
// Lowercased, deduplicated.
func (b *Base) TransportNouns() []string {
	var nouns []string
	for _, r := range b.Routes {
		nouns = append(nouns, r.Name, r.DriverName, r.InchargeName)
		for _, s := range r.Stops {
			nouns = append(nouns, s.Label)
		}
	}
	nouns = append(nouns, lo.Keys(b.routeAliases)...)

	nouns = lo.Map(nouns, func(n string, _ int) string { return strings.ToLower(n) })
	nouns = lo.Uniq(nouns)
	sort.Strings(nouns)
	return nouns
}

// ClubNouns lists the directory names and aliases feeding the
// institution predicate.
func (b *Base) ClubNouns() []string {
	nouns := lo.Map(b.Clubs, func(c domain.Club, _ int) string {
		return strings.ToLower(c.Name)
	})
	nouns = append(nouns, lo.Keys(b.clubAliases)...)
	nouns = lo.Uniq(nouns)
	sort.Strings(nouns)
	return nouns
}
