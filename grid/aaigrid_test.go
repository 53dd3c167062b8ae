package grid

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func demoGrid() *Geographic {
	return &Geographic{
		Nrow: 3, Ncol: 4,
		Xll: -105.33, Yll: 39.93,
		CellSize: 0.01,
		NoData:   -9999.,
		Elev: []float64{
			1609.344, 1610., 1612.5, 1615.,
			1620.25, -9999., 1625., 1630.125,
			1640., 1645.5, 1650., 1655.75,
		},
	}
}

func TestAAIGridRoundTrip(t *testing.T) {
	is := is.New(t)
	g := demoGrid()
	fp := filepath.Join(t.TempDir(), "demo.asc")

	is.NoErr(g.WriteAAIGrid(fp))
	g2, err := LoadAAIGrid(fp)
	is.NoErr(err)

	is.Equal(g2.Nrow, g.Nrow)
	is.Equal(g2.Ncol, g.Ncol)
	is.Equal(g2.NoData, g.NoData)
	is.True(math.Abs(g2.Xll-g.Xll) < 1e-6)
	is.True(math.Abs(g2.Yll-g.Yll) < 1e-6)
	is.True(math.Abs(g2.CellSize-g.CellSize) < 1e-6)
	for i := range g.Elev {
		is.True(math.Abs(g2.Elev[i]-g.Elev[i]) < 1e-6)
	}
}

func TestParseCellCentreOrigin(t *testing.T) {
	is := is.New(t)
	in := "ncols 2\nnrows 1\nxllcenter 10.005\nyllcenter 45.005\ncellsize 0.01\n7 8\n"
	g, err := ParseAAIGrid(strings.NewReader(in), "centre.asc")
	is.NoErr(err)
	is.True(math.Abs(g.Xll-10.) < 1e-9)
	is.True(math.Abs(g.Yll-45.) < 1e-9)
	is.Equal(g.NoData, -9999.) // default sentinel when the header omits it
}

func TestParseMalformedHeader(t *testing.T) {
	is := is.New(t)
	// empty, header-only, nrows missing, unparseable ncols, bad cellsize,
	// fractional ncols, fractional nrows
	for _, in := range []string{
		"",
		"ncols 2\nnrows 2\n",
		"ncols 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n",
		"ncols two\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n",
		"ncols 2\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize -1\n1 2\n",
		"ncols 2.5\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n",
		"ncols 2\nnrows 1.5\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n",
	} {
		_, err := ParseAAIGrid(strings.NewReader(in), "bad.asc")
		var fe *FormatError
		is.True(errors.As(err, &fe))
	}
}

func TestParseCountMismatch(t *testing.T) {
	is := is.New(t)
	hdr := "ncols 3\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n"

	_, err := ParseAAIGrid(strings.NewReader(hdr+"1 2 3 4 5\n"), "short.asc")
	var fe *FormatError
	is.True(errors.As(err, &fe))

	_, err = ParseAAIGrid(strings.NewReader(hdr+"1 2 3 4 5 6 7\n"), "long.asc")
	is.True(errors.As(err, &fe))

	_, err = ParseAAIGrid(strings.NewReader(hdr+"1 2 3 4 5 x\n"), "garbled.asc")
	is.True(errors.As(err, &fe))
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := LoadAAIGrid(filepath.Join(t.TempDir(), "nothere.asc"))
	is.True(err != nil) // fetch must be requested explicitly before load
}
