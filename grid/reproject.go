package grid

import (
	"fmt"

	"github.com/im7mortal/UTM"
)

// ToMetric builds a uniformly spaced metric grid of the same extent,
// copying the elevation field value-for-value by (row, col). The origin is
// the UTM projection of the geographic lower-left corner, but the uniform
// spacing is the caller's: this is an index copy, not a geodetic warp, and
// assumes the degree-based cell anisotropy is negligible to the consuming
// simulation. The two grids are independent after construction.
func (g *Geographic) ToMetric(spacing float64) (*Projected, error) {
	if spacing <= 0. {
		return nil, &ShapeError{Reason: fmt.Sprintf("non-positive spacing %v", spacing)}
	}
	if g.Nrow <= 0 || g.Ncol <= 0 || len(g.Elev) != g.Nrow*g.Ncol {
		return nil, &ShapeError{Reason: fmt.Sprintf("source grid %d x %d with %d samples", g.Nrow, g.Ncol, len(g.Elev))}
	}
	e, n, zn, zl, err := UTM.FromLatLon(g.Yll, g.Xll, g.Yll >= 0.)
	if err != nil {
		return nil, fmt.Errorf(" grid.ToMetric: %v", err)
	}
	elev := make([]float64, len(g.Elev))
	copy(elev, g.Elev)
	return &Projected{
		Nrow:       g.Nrow,
		Ncol:       g.Ncol,
		Eorig:      e,
		Norig:      n,
		Zone:       zn,
		ZoneLetter: zl,
		Spacing:    spacing,
		NoData:     g.NoData,
		Fields:     map[string][]float64{"elevation": elev},
	}, nil
}
