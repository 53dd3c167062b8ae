package main

import (
	"context"
	"fmt"
	"math"

	"github.com/maseology/mmio"

	"github.com/matheuswalmeida/Landslide-LongTerm2025/fetch"
	"github.com/matheuswalmeida/Landslide-LongTerm2025/grid"
	"github.com/matheuswalmeida/Landslide-LongTerm2025/sim"
)

func main() {

	const (
		cachedir = "DEMData/"
		spacing  = 30.   // m
		dt       = 1000. // yr
		nsteps   = 25
	)
	// Boulder, CO foothills
	box := fetch.BoundingBox{South: 39.93, North: 40.0, West: -105.33, East: -105.26}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	// acquire DEM (cache hit skips the service)
	c := fetch.NewCache(cachedir)
	fp, err := c.Resolve(context.Background(), fetch.Request{DEM: fetch.SRTMGL1, Box: box, Fmt: fetch.AAIGrid})
	if err != nil {
		panic(err)
	}
	tt.Print("DEM resolved: " + mmio.FileName(fp, true))

	// prepare grids
	g, err := grid.LoadAAIGrid(fp)
	if err != nil {
		panic(err)
	}
	fmt.Printf(" %d rows x %d cols, cellsize %v deg\n", g.Nrow, g.Ncol, g.CellSize)
	p, err := g.ToMetric(spacing)
	if err != nil {
		panic(err)
	}
	fmt.Printf(" projected to UTM zone %d%s, %v m spacing\n", p.Zone, p.ZoneLetter, p.Spacing)

	// external flow-routing/landslide components slot in beside relief{}
	if err := sim.Sequence(p, dt, nsteps, relief{}); err != nil {
		panic(err)
	}
	tt.Print("simulation sequence complete")

	if err := p.SaveGob(mmio.RemoveExtension(fp) + ".prepared.gob"); err != nil {
		panic(err)
	}
}

// relief is a stand-in component: it attaches the elevation range above the
// grid minimum as a "relief" field each step.
type relief struct{}

func (relief) Name() string { return "relief" }

func (relief) Step(p *grid.Projected, dt float64) error {
	elev := p.Elevation()
	zmin := math.MaxFloat64
	for _, z := range elev {
		if z != p.NoData && z < zmin {
			zmin = z
		}
	}
	f := p.AddField("relief")
	for i, z := range elev {
		if z == p.NoData {
			f[i] = p.NoData
			continue
		}
		f[i] = z - zmin
	}
	return nil
}
