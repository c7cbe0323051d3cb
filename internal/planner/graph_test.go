package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistance(t *testing.T) {
	// Hanoi to Ho Chi Minh City, roughly 1138 km great-circle.
	d := Haversine(21.0285, 105.8542, 10.8231, 106.6297)
	assert.InDelta(t, 1138, d, 5)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(21.03, 105.85, 10.82, 106.63)
	b := Haversine(10.82, 106.63, 21.03, 105.85)
	assert.InDelta(t, a, b, 1e-9)
}

func TestShortestPathMatchesDirectEdge(t *testing.T) {
	places := []Place{
		attraction("a", 4.5, 21.000, 105.800),
		attraction("b", 4.5, 21.010, 105.800),
		attraction("c", 4.5, 21.020, 105.800),
	}
	g := NewGraph(places)
	require.Equal(t, 3, g.Size())

	want := Haversine(21.000, 105.800, 21.020, 105.800)
	got, path := g.ShortestPath("a", "c")
	assert.InDelta(t, want, got, 1e-9)
	assert.Equal(t, []string{"a", "c"}, path)
}

func TestShortestPathSameNode(t *testing.T) {
	g := NewGraph([]Place{attraction("a", 4.5, 21, 105)})
	d, path := g.ShortestPath("a", "a")
	assert.Zero(t, d)
	assert.Equal(t, []string{"a"}, path)
}

func TestShortestPathUnknownNode(t *testing.T) {
	g := NewGraph([]Place{attraction("a", 4.5, 21, 105)})

	d, path := g.ShortestPath("a", "missing")
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, path)

	d, path = g.ShortestPath("missing", "a")
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, path)
}

func TestOptimizeRouteOrdersByProximity(t *testing.T) {
	places := []Place{
		attraction("west", 4.5, 21.000, 105.800),
		attraction("mid", 4.5, 21.000, 105.810),
		attraction("east", 4.5, 21.000, 105.820),
	}
	g := NewGraph(places)

	route := g.OptimizeRoute([]string{"east", "west", "mid"}, "west")
	assert.Equal(t, []string{"west", "mid", "east"}, route)
}

func TestOptimizeRouteStartNotInSet(t *testing.T) {
	places := []Place{
		attraction("a", 4.5, 21.000, 105.800),
		attraction("b", 4.5, 21.000, 105.810),
	}
	g := NewGraph(places)

	route := g.OptimizeRoute([]string{"b", "a"}, "elsewhere")
	assert.Equal(t, "b", route[0])
	assert.Len(t, route, 2)
}

func TestRouteDistanceSumsLegs(t *testing.T) {
	places := []Place{
		attraction("a", 4.5, 21.000, 105.800),
		attraction("b", 4.5, 21.010, 105.800),
		attraction("c", 4.5, 21.030, 105.800),
	}
	g := NewGraph(places)

	want := Haversine(21.000, 105.800, 21.010, 105.800) +
		Haversine(21.010, 105.800, 21.030, 105.800)
	assert.InDelta(t, want, g.RouteDistance([]string{"a", "b", "c"}), 1e-9)
	assert.Zero(t, g.RouteDistance([]string{"a"}))
}
