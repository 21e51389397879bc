package knowledge

import (
	"campus-chat/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteByCrew(t *testing.T) {
	req := require.New(t)
	kb := Load()

	route, ok := kb.RouteByCrew("is kannan driving today")
	req.True(ok)
	req.Equal(3, route.Number)

	_, ok = kb.RouteByCrew("is anybody driving today")
	req.False(ok)
}

// A route without an assigned crew must never match; an empty name is
// a substring of everything.
func TestRouteByCrew_UnassignedCrew(t *testing.T) {
	req := require.New(t)
	kb := &Base{Routes: []domain.Route{
		{Number: 7, Name: "Night Line"},
		{Number: 8, Name: "Airport Line", DriverName: "Bala"},
	}}

	_, ok := kb.RouteByCrew("when is the next departure")
	req.False(ok)

	route, ok := kb.RouteByCrew("does bala drive tomorrow")
	req.True(ok)
	req.Equal(8, route.Number)
}
