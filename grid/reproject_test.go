package grid

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestToMetricCopiesByIndex(t *testing.T) {
	is := is.New(t)
	g := demoGrid()

	p, err := g.ToMetric(30.)
	is.NoErr(err)

	is.Equal(p.Nrow, g.Nrow)
	is.Equal(p.Ncol, g.Ncol)
	is.Equal(p.Spacing, 30.)
	is.Equal(p.NoData, g.NoData)
	for i := 0; i < g.Nrow; i++ {
		for j := 0; j < g.Ncol; j++ {
			is.Equal(p.At("elevation", i, j), g.At(i, j))
		}
	}
}

func TestToMetricIndependence(t *testing.T) {
	is := is.New(t)
	g := demoGrid()
	p, err := g.ToMetric(30.)
	is.NoErr(err)

	g.SetAt(0, 0, 9999.)
	is.Equal(p.At("elevation", 0, 0), 1609.344) // derived by copy, no back-reference
}

func TestToMetricOrigin(t *testing.T) {
	is := is.New(t)
	p, err := demoGrid().ToMetric(30.)
	is.NoErr(err)

	// lon -105.33 sits in UTM zone 13, west of the -105 central meridian
	is.Equal(p.Zone, 13)
	is.True(p.Eorig > 400e3 && p.Eorig < 500e3)
	is.True(p.Norig > 4.3e6 && p.Norig < 4.5e6)
}

func TestToMetricBadSpacing(t *testing.T) {
	is := is.New(t)
	for _, s := range []float64{0., -30.} {
		_, err := demoGrid().ToMetric(s)
		var se *ShapeError
		is.True(errors.As(err, &se))
	}
}

func TestToMetricBadShape(t *testing.T) {
	is := is.New(t)
	g := demoGrid()
	g.Elev = g.Elev[:5]
	_, err := g.ToMetric(30.)
	var se *ShapeError
	is.True(errors.As(err, &se))
}

func TestProjectedFields(t *testing.T) {
	is := is.New(t)
	p, err := demoGrid().ToMetric(30.)
	is.NoErr(err)

	f := p.AddField("flow accumulation")
	is.Equal(len(f), p.Nrow*p.Ncol)
	f[3] = 42.
	is.Equal(p.At("flow accumulation", 0, 3), 42.)
	is.Equal(p.AddField("flow accumulation")[3], 42.) // re-adding returns the existing field
}

func TestProjectedGobRoundTrip(t *testing.T) {
	is := is.New(t)
	p, err := demoGrid().ToMetric(30.)
	is.NoErr(err)
	p.AddField("soil depth")[0] = 1.5

	fp := filepath.Join(t.TempDir(), "prepared.gob")
	is.NoErr(p.SaveGob(fp))
	p2, err := LoadGob(fp)
	is.NoErr(err)

	is.Equal(p2.Nrow, p.Nrow)
	is.Equal(p2.Ncol, p.Ncol)
	is.Equal(p2.Zone, p.Zone)
	is.Equal(p2.Fields["soil depth"][0], 1.5)
	is.Equal(p2.Elevation(), p.Elevation())
}
