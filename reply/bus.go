package reply

import (
	"campus-chat/domain"
	"campus-chat/knowledge"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var routeNumberPattern = regexp.MustCompile(`(?:route|bus)\s*(?:no\.?\s*)?(\d+)`)

// busReply resolves the input to a specific route, a specific stop, or
// a fleet summary, in that order of preference.
func (g *Generator) busReply(input string) string {
	if m := routeNumberPattern.FindStringSubmatch(input); m != nil {
		number, _ := strconv.Atoi(m[1])
		if route, ok := g.kb.RouteByNumber(number); ok {
			return routeDetail(route)
		}
		return fmt.Sprintf("I don't know a route %d. %s", number, g.fleetSummary())
	}

	if route, ok := g.kb.RouteByAlias(input); ok {
		return routeDetail(route)
	}

	if refs := matchStops(g.kb.StopIndex(), input); len(refs) == 1 {
		return stopDetail(refs[0])
	} else if len(refs) > 1 {
		return stopEnumeration(refs)
	}

	if route, ok := g.kb.RouteByCrew(input); ok {
		return routeDetail(route)
	}

	if wantsEnumeration(input) {
		return g.fleetSummary()
	}

	return "🚌 I can help with the university shuttle! Ask me about a route (like \"route 2\"), a stop name, pickup times, or say \"list all bus routes\"."
}

func wantsEnumeration(input string) bool {
	for _, kw := range []string{"all", "list", "every", "which"} {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

// matchStops scans every indexed label with the word-overlap heuristic:
// a label matches when at least one of its words longer than 3 chars
// appears verbatim in the input, or when the input contains the label's
// leading min(8, len) characters. Deliberately order-independent and
// approximate; this is not edit-distance matching.
func matchStops(idx knowledge.StopIndex, input string) []knowledge.StopRef {
	var refs []knowledge.StopRef
	for _, label := range idx.Labels() {
		if stopLabelMatches(label, input) {
			refs = append(refs, idx.Refs(label)...)
		}
	}
	return refs
}

func stopLabelMatches(label, input string) bool {
	overlap := 0
	for _, word := range strings.Fields(label) {
		if len(word) > 3 && strings.Contains(input, word) {
			overlap++
		}
	}
	if overlap >= 1 {
		return true
	}

	prefixLen := len(label)
	if prefixLen > 8 {
		prefixLen = 8
	}
	return strings.Contains(input, label[:prefixLen])
}

func stopDetail(ref knowledge.StopRef) string {
	route := ref.Route
	stop := ref.Stop()

	var b strings.Builder
	fmt.Fprintf(&b, "🚌 %s — Route %d (%s)\n\n", stop.Label, route.Number, route.Name)
	fmt.Fprintf(&b, "Pickup time: %s\n", stop.Pickup)
	if prev, ok := ref.Previous(); ok {
		fmt.Fprintf(&b, "Previous stop: %s (%s)\n", prev.Label, prev.Pickup)
	}
	if next, ok := ref.Next(); ok {
		fmt.Fprintf(&b, "Next stop: %s (%s)\n", next.Label, next.Pickup)
	}
	fmt.Fprintf(&b, "\nDriver: %s (%s)\nIncharge: %s (%s)",
		route.DriverName, route.DriverContact, route.InchargeName, route.InchargeContact)
	return b.String()
}

func stopEnumeration(refs []knowledge.StopRef) string {
	labels := lo.Uniq(lo.Map(refs, func(ref knowledge.StopRef, _ int) string {
		return ref.Stop().Label
	}))

	var b strings.Builder
	if len(labels) == 1 {
		fmt.Fprintf(&b, "🚌 %s is served by %d routes:\n", labels[0], len(refs))
		for _, ref := range refs {
			fmt.Fprintf(&b, "\n• Route %d (%s) — pickup %s, driver %s (%s)",
				ref.Route.Number, ref.Route.Name, ref.Stop().Pickup,
				ref.Route.DriverName, ref.Route.DriverContact)
		}
		return b.String()
	}

	// Several different stop names matched; name each one per line.
	fmt.Fprintf(&b, "🚌 I found %d matching stops:\n", len(refs))
	for _, ref := range refs {
		fmt.Fprintf(&b, "\n• %s — Route %d (%s), pickup %s",
			ref.Stop().Label, ref.Route.Number, ref.Route.Name, ref.Stop().Pickup)
	}
	return b.String()
}

func routeDetail(route domain.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚌 Route %d — %s\n\nStops:\n", route.Number, route.Name)
	for _, stop := range route.Stops {
		fmt.Fprintf(&b, "• %s — %s\n", stop.Label, stop.Pickup)
	}
	fmt.Fprintf(&b, "\nDriver: %s (%s)\nIncharge: %s (%s)",
		route.DriverName, route.DriverContact, route.InchargeName, route.InchargeContact)
	return b.String()
}

// fleetSummary lists every route in ascending number order with its
// boarding point and final arrival.
func (g *Generator) fleetSummary() string {
	var b strings.Builder
	b.WriteString("🚌 University shuttle routes:\n")
	for _, route := range g.kb.Routes {
		first := route.FirstStop()
		last := route.LastStop()
		fmt.Fprintf(&b, "\n%d. %s — starts %s (%s), arrives %s (%s)",
			route.Number, route.Name, first.Label, first.Pickup, last.Label, last.Pickup)
	}
	b.WriteString("\n\nAsk about any stop or route for pickup times and contacts.")
	return b.String()
}
