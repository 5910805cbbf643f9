package route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/grid"
)

// Point returns the planar center of c.
func Point(c grid.Cell) orb.Point {
	return orb.Point{float64(c.Col) + 0.5, float64(c.Row) + 0.5}
}

// LineString returns Path as cell-center points. Empty when not found.
func (r *Route) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(r.Path))
	for _, c := range r.Path {
		ls = append(ls, Point(c))
	}
	return ls
}

// PlanarLength returns the Euclidean length of LineString. Under 4-directional
// unit moves it always equals Length.
func (r *Route) PlanarLength() float64 {
	return planar.Length(r.LineString())
}

// FeatureCollection describes the route as GeoJSON: one LineString feature
// for the path (when found) and one Point feature per stop, tagged with its
// order and role.
func (r *Route) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if r.Found {
		f := geojson.NewFeature(r.LineString())
		f.Properties["kind"] = "path"
		f.Properties["length"] = r.Length()
		f.Properties["legs"] = len(r.Legs)
		fc.Append(f)
	}
	for i, s := range r.Stops {
		f := geojson.NewFeature(Point(s))
		f.Properties["kind"] = "stop"
		f.Properties["order"] = i
		f.Properties["role"] = stopRole(i, len(r.Stops))
		fc.Append(f)
	}
	return fc
}

// MarshalGeoJSON encodes FeatureCollection.
func (r *Route) MarshalGeoJSON() ([]byte, error) {
	return r.FeatureCollection().MarshalJSON()
}

func stopRole(i, n int) string {
	switch i {
	case 0:
		return "start"
	case n - 1:
		return "destination"
	default:
		return "waypoint"
	}
}
