package reply

import (
	"campus-chat/knowledge"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(knowledge.Load(), "Gopal", rand.New(rand.NewSource(1)))
}

func TestBusReply_ExplicitRouteNumber(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("show me route 2")
	req.Contains(got, "Route 2")
	req.Contains(got, "Puducherry Line")
	req.Contains(got, "Villianur")
	req.Contains(got, "Selvam")
}

func TestBusReply_RouteAlias(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("is the pondicherry bus running")
	req.Contains(got, "Route 2")
}

func TestBusReply_FuzzyStop_SingleRoute(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	// "guindy" is a label word longer than 3 chars, present in one route.
	got := g.busReply("pickup at guindy please")
	req.Contains(got, "Guindy")
	req.Contains(got, "Route 1")
	req.Contains(got, "Pickup time: 6.10")
	req.Contains(got, "Next stop: Tambaram (6.35)")
	req.Contains(got, "Murugan")
	req.Contains(got, "Prakash")
	req.NotContains(got, "Previous stop", "first stop has no predecessor")
}

func TestBusReply_FuzzyStop_SharedAcrossRoutes(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("when does the shuttle reach tindivanam")
	req.Contains(got, "served by 3 routes")
	req.Contains(got, "Route 1 (Chennai Corridor) — pickup 8.15")
	req.Contains(got, "Route 2 (Puducherry Line) — pickup 8.05")
	req.Contains(got, "Route 4 (Cuddalore Line) — pickup 8.10")
	req.Contains(got, "Murugan")
	req.Contains(got, "Selvam")
	req.Contains(got, "Rajesh")
}

func TestBusReply_FuzzyStop_DistinctLabels(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	// "stand" overlaps three different stop names, so no single stop
	// may claim the header.
	got := g.busReply("where is the bus stand")
	req.Contains(got, "I found 5 matching stops")
	req.NotContains(got, "is served by")
	req.Contains(got, "Tindivanam Bus Stand — Route 1 (Chennai Corridor), pickup 8.15")
	req.Contains(got, "Puducherry New Bus Stand — Route 2 (Puducherry Line), pickup 7.00")
	req.Contains(got, "Villupuram New Bus Stand — Route 3 (Villupuram Shuttle), pickup 7.10")
}

func TestBusReply_FuzzyStop_PrefixFallback(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	// "chengalp" is the 8-char leading substring of "chengalpattu".
	got := g.busReply("bus at chengalp")
	req.Contains(got, "Chengalpattu")
	req.Contains(got, "Route 1")
}

func TestBusReply_CrewName(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("contact number of kannan")
	req.Contains(got, "Route 3")
	req.Contains(got, "Villupuram Shuttle")
}

func TestBusReply_Enumeration(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("list all bus routes")
	req.Contains(got, "1. Chennai Corridor — starts Guindy (6.10), arrives University Campus (8.40)")
	req.Contains(got, "2. Puducherry Line — starts Puducherry New Bus Stand (7.00), arrives University Campus (8.35)")
	req.Contains(got, "3. Villupuram Shuttle — starts Villupuram New Bus Stand (7.10), arrives University Campus (8.30)")
	req.Contains(got, "4. Cuddalore Line — starts Cuddalore Old Town (6.50), arrives University Campus (8.40)")

	// Ascending route-number order.
	req.Less(indexOf(got, "1. Chennai"), indexOf(got, "2. Puducherry"))
	req.Less(indexOf(got, "2. Puducherry"), indexOf(got, "3. Villupuram"))
	req.Less(indexOf(got, "3. Villupuram"), indexOf(got, "4. Cuddalore"))
}

func TestBusReply_GenericBlurb(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("bus")
	req.Contains(got, "university shuttle")
}

func TestBusReply_UnknownRouteNumber(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.busReply("route 42 please")
	req.Contains(got, "don't know a route 42")
	req.Contains(got, "1. Chennai Corridor")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
