// Package sim is the handoff point between prepared grids and external
// process models (flow routers, landslide generators). The algorithms live
// elsewhere; this package only sequences them over a grid.
package sim

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/matheuswalmeida/Landslide-LongTerm2025/grid"
)

// A Component is one process model acting on a prepared grid. Each step it
// reads the grid's elevation field and attaches whatever it derives (flow
// accumulation, erosion, deposition) as named fields on the same grid.
type Component interface {
	Name() string
	Step(g *grid.Projected, dt float64) error
}

// Sequence runs the components in order for nsteps timesteps of length dt,
// aborting on the first component error. Safe to call repeatedly; each run
// owns its own progress renderer.
func Sequence(g *grid.Projected, dt float64, nsteps int, cpnts ...Component) error {
	if nsteps <= 0 {
		return fmt.Errorf(" sim.Sequence: nsteps must be positive")
	}
	prog := uiprogress.New()
	prog.Start()
	defer prog.Stop()
	bar := prog.AddBar(nsteps).AppendCompleted().PrependElapsed()
	for j := 0; j < nsteps; j++ {
		for _, c := range cpnts {
			if err := c.Step(g, dt); err != nil {
				return fmt.Errorf(" sim.Sequence: %s at step %d: %v", c.Name(), j, err)
			}
		}
		bar.Incr()
	}
	return nil
}
