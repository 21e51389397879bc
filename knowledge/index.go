package knowledge

import (
	"campus-chat/domain"
	"sort"
	"strings"
)

// StopRef points at one occurrence of a stop label: the owning route
// and the stop position within its traversal sequence.
type StopRef struct {
	Route    domain.Route
	Position int
}

func (ref StopRef) Stop() domain.Stop {
	return ref.Route.Stops[ref.Position]
}

// Previous returns the stop served just before this one, if any.
func (ref StopRef) Previous() (domain.Stop, bool) {
	if ref.Position == 0 {
		return domain.Stop{}, false
	}
	return ref.Route.Stops[ref.Position-1], true
}

// Next returns the stop served just after this one, if any.
func (ref StopRef) Next() (domain.Stop, bool) {
	if ref.Position == len(ref.Route.Stops)-1 {
		return domain.Stop{}, false
	}
	return ref.Route.Stops[ref.Position+1], true
}

// StopIndex maps a normalized stop label to every (route, stop) pair
// referencing it. Labels are kept in a sorted slice so scans are
// deterministic. Built once from route data, read-only thereafter.
type StopIndex struct {
	labels []string
	refs   map[string][]StopRef
}

func buildStopIndex(routes []domain.Route) StopIndex {
	refs := make(map[string][]StopRef)
	for _, route := range routes {
		for pos := range route.Stops {
			label := NormalizeLabel(route.Stops[pos].Label)
			refs[label] = append(refs[label], StopRef{Route: route, Position: pos})
		}
	}

	labels := make([]string, 0, len(refs))
	for label := range refs {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	// Refs of a shared label stay ordered by route number; routes were
	// sorted before the build.
	return StopIndex{labels: labels, refs: refs}
}

// Labels returns every indexed stop label in sorted order.
func (idx StopIndex) Labels() []string {
	return idx.labels
}

// Refs returns the ordered (route, stop) pairs for a normalized label.
func (idx StopIndex) Refs(label string) []StopRef {
	return idx.refs[label]
}

// NormalizeLabel folds a stop label the same way user input is folded.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
