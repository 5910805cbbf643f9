// Command gridroute simulates a courier delivery on a random obstacle map:
// it samples a start, a package pickup and a destination, plans the two legs
// with A*, and prints the map with the route overlaid.
//
// Usage:
//
//	gridroute [-size 15] [-density 0.3] [-seed N] [-geojson out.json]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgen"
	"github.com/katalvlaran/gridpath/route"
)

func main() {
	size := flag.Int("size", gridgen.DefaultSize, "map height and width")
	density := flag.Float64("density", gridgen.DefaultDensity, "obstacle probability per cell")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	geoOut := flag.String("geojson", "", "write the route as GeoJSON to this file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	if err := run(*size, *density, *seed, *geoOut); err != nil {
		log.Fatal(err)
	}
}

func run(size int, density float64, seed int64, geoOut string) error {
	rng := gridgen.NewRand(seed)
	g, err := gridgen.Random(gridgen.WithSize(size), gridgen.WithDensity(density), gridgen.WithRand(rng))
	if err != nil {
		return err
	}
	stops, err := gridgen.SampleFree(g, 3, rng)
	if err != nil {
		return err
	}

	r, err := route.Plan(context.Background(), g, stops)
	if err != nil {
		return err
	}

	fmt.Printf("Start:       %v\n", stops[0])
	fmt.Printf("Package:     %v\n", stops[1])
	fmt.Printf("Destination: %v\n", stops[2])
	fmt.Print(overlay(g, r))
	if !r.Found {
		fmt.Printf("No route: leg %d has no path. Try another map.\n", r.MissingLeg+1)
		return nil
	}
	fmt.Printf("Path to package:     %d cells\n", len(r.Legs[0].Path))
	fmt.Printf("Path to destination: %d cells\n", len(r.Legs[1].Path))

	if geoOut == "" {
		return nil
	}
	raw, err := r.MarshalGeoJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(geoOut, raw, 0o644); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	log.Printf("route written to %s", geoOut)
	return nil
}

// overlay draws the map with '*' on the route and S, P, D on the stops.
func overlay(g *grid.Grid, r *route.Route) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	cells := make([][]byte, len(rows))
	for i, row := range rows {
		cells[i] = []byte(row)
	}
	for _, c := range r.Path {
		cells[c.Row][c.Col] = '*'
	}
	marks := []byte{'S', 'P', 'D'}
	for i, s := range r.Stops {
		if i < len(marks) {
			cells[s.Row][s.Col] = marks[i]
		}
	}

	var sb strings.Builder
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
