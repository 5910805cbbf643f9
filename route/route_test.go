package route_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgen"
	"github.com/katalvlaran/gridpath/route"
)

// PlanSuite exercises multi-leg planning and export.
type PlanSuite struct {
	suite.Suite
	g *grid.Grid
}

func TestPlanSuite(t *testing.T) {
	suite.Run(t, new(PlanSuite))
}

func (s *PlanSuite) SetupTest() {
	s.g = grid.MustParse(`
		....
		.##.
		....
		##.#
	`)
}

// TestTwoLegs plans start → package → destination and checks the joint is kept once.
func (s *PlanSuite) TestTwoLegs() {
	start, pkg, dest := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 3}, grid.Cell{Row: 3, Col: 2}
	r, err := route.Plan(context.Background(), s.g, []grid.Cell{start, pkg, dest})
	require.NoError(s.T(), err)
	require.True(s.T(), r.Found)
	require.Equal(s.T(), -1, r.MissingLeg)
	require.Len(s.T(), r.Legs, 2)

	require.Equal(s.T(), 5, r.Legs[0].Cost)
	require.Equal(s.T(), 2, r.Legs[1].Cost)
	require.Equal(s.T(), 7, r.Length())
	require.Len(s.T(), r.Path, 8)
	require.Equal(s.T(), start, r.Path[0])
	require.Equal(s.T(), pkg, r.Path[5])
	require.Equal(s.T(), dest, r.Path[7])
	for i := 1; i < len(r.Path); i++ {
		require.True(s.T(), grid.Adjacent(r.Path[i-1], r.Path[i]))
	}

	require.Equal(s.T(), 0, r.LegAt(0))
	require.Equal(s.T(), 0, r.LegAt(5))
	require.Equal(s.T(), 1, r.LegAt(6))
	require.Equal(s.T(), 1, r.LegAt(7))
	require.Equal(s.T(), -1, r.LegAt(8))
}

// TestMissingLeg reports the first leg without a path as a normal outcome.
func (s *PlanSuite) TestMissingLeg() {
	g := grid.MustParse(`
		..#.
		..#.
	`)
	r, err := route.Plan(context.Background(), g, []grid.Cell{{0, 0}, {1, 1}, {0, 3}})
	require.NoError(s.T(), err)
	require.False(s.T(), r.Found)
	require.Equal(s.T(), 1, r.MissingLeg)
	require.Nil(s.T(), r.Path)
	require.Zero(s.T(), r.Length())
	require.True(s.T(), r.Legs[0].Found)
}

func (s *PlanSuite) TestErrors() {
	_, err := route.Plan(context.Background(), s.g, []grid.Cell{{0, 0}})
	require.ErrorIs(s.T(), err, route.ErrTooFewStops)

	_, err = route.Plan(context.Background(), s.g, []grid.Cell{{0, 0}, {1, 1}})
	require.ErrorIs(s.T(), err, astar.ErrInvalidEndpoint)
	require.ErrorIs(s.T(), err, astar.ErrBlocked)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = route.Plan(ctx, s.g, []grid.Cell{{0, 0}, {2, 3}})
	require.ErrorIs(s.T(), err, astar.ErrCancelled)

	_, err = route.Plan(context.Background(), s.g, []grid.Cell{{0, 0}, {3, 2}}, astar.WithMaxExpansions(1))
	require.ErrorIs(s.T(), err, astar.ErrBudgetExceeded)
}

func (s *PlanSuite) TestGeoJSON() {
	r, err := route.Plan(context.Background(), s.g, []grid.Cell{{0, 0}, {0, 3}})
	require.NoError(s.T(), err)

	ls := r.LineString()
	require.Len(s.T(), ls, 4)
	require.Equal(s.T(), orb.Point{0.5, 0.5}, ls[0])
	require.Equal(s.T(), orb.Point{3.5, 0.5}, ls[3])
	require.InDelta(s.T(), float64(r.Length()), r.PlanarLength(), 1e-9)

	raw, err := r.MarshalGeoJSON()
	require.NoError(s.T(), err)
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(s.T(), err)
	require.Len(s.T(), fc.Features, 3)
	require.Equal(s.T(), "path", fc.Features[0].Properties["kind"])
	require.Equal(s.T(), "start", fc.Features[1].Properties["role"])
	require.Equal(s.T(), "destination", fc.Features[2].Properties["role"])
}

// TestGeoJSON_NotFound omits the path feature.
func (s *PlanSuite) TestGeoJSON_NotFound() {
	g := grid.MustParse(".#.")
	r, err := route.Plan(context.Background(), g, []grid.Cell{{0, 0}, {0, 2}})
	require.NoError(s.T(), err)
	require.Empty(s.T(), r.LineString())
	require.Len(s.T(), r.FeatureCollection().Features, 2)
}

func TestConcat(t *testing.T) {
	a := []grid.Cell{{0, 0}, {0, 1}}
	b := []grid.Cell{{0, 1}, {1, 1}}
	c := []grid.Cell{{1, 1}}
	require.Equal(t, []grid.Cell{{0, 0}, {0, 1}, {1, 1}}, route.Concat(a, b, c))
	require.Empty(t, route.Concat())
}

// TestPlan_RandomDelivery mirrors the courier simulation on generated maps:
// whenever the route is found its length equals the sum of the leg costs.
func TestPlan_RandomDelivery(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := gridgen.NewRand(seed)
		g, err := gridgen.Random(gridgen.WithRand(rng))
		require.NoError(t, err)
		stops, err := gridgen.SampleFree(g, 3, rng)
		require.NoError(t, err)

		r, err := route.Plan(context.Background(), g, stops)
		require.NoError(t, err)
		want := g.Connected(stops[0], stops[1]) && g.Connected(stops[1], stops[2])
		require.Equal(t, want, r.Found, "seed %d", seed)
		if r.Found {
			require.Equal(t, r.Legs[0].Cost+r.Legs[1].Cost, r.Length())
		}
	}
}
