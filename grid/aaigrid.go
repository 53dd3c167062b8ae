package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadAAIGrid imports an Esri ASCII raster (the elevation service's AAIGrid
// output format) as a Geographic grid. The file must already exist; fetching
// is the cache's job, not the loader's.
func LoadAAIGrid(fp string) (*Geographic, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" grid.LoadAAIGrid: %v", err)
	}
	defer f.Close()
	return ParseAAIGrid(f, fp)
}

// ParseAAIGrid reads an Esri ASCII raster: a keyword header (ncols, nrows,
// xllcorner/xllcenter, yllcorner/yllcenter, cellsize, optional NODATA_value)
// followed by nrows*ncols row-major samples, northernmost row first.
func ParseAAIGrid(r io.Reader, path string) (*Geographic, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	g := Geographic{NoData: -9999.}
	var xcen, ycen bool
	var hnc, hnr, hx, hy, hcs bool
	var vals []float64
	header := true

	for sc.Scan() {
		tok := sc.Text()
		if header {
			key := strings.ToLower(tok)
			switch key {
			case "ncols", "nrows", "xllcorner", "xllcenter", "yllcorner", "yllcenter", "cellsize", "nodata_value":
				if !sc.Scan() {
					return nil, &FormatError{Path: path, Reason: "missing value for " + key}
				}
				v, err := strconv.ParseFloat(sc.Text(), 64)
				if err != nil {
					return nil, &FormatError{Path: path, Reason: fmt.Sprintf("cannot parse %s: %v", key, err)}
				}
				switch key {
				case "ncols", "nrows":
					if v != math.Trunc(v) {
						return nil, &FormatError{Path: path, Reason: fmt.Sprintf("non-integer %s %v", key, v)}
					}
					if key == "ncols" {
						g.Ncol, hnc = int(v), true
					} else {
						g.Nrow, hnr = int(v), true
					}
				case "xllcorner":
					g.Xll, hx = v, true
				case "xllcenter":
					g.Xll, hx, xcen = v, true, true
				case "yllcorner":
					g.Yll, hy = v, true
				case "yllcenter":
					g.Yll, hy, ycen = v, true, true
				case "cellsize":
					g.CellSize, hcs = v, true
				case "nodata_value":
					g.NoData = v
				}
				continue
			}
			// first non-keyword token starts the data block
			if !hnc || !hnr || !hx || !hy || !hcs {
				return nil, &FormatError{Path: path, Reason: "incomplete header"}
			}
			if g.Nrow <= 0 || g.Ncol <= 0 || g.CellSize <= 0. {
				return nil, &FormatError{Path: path, Reason: "non-positive grid dimensions"}
			}
			if xcen {
				g.Xll -= g.CellSize / 2.
			}
			if ycen {
				g.Yll -= g.CellSize / 2.
			}
			vals = make([]float64, 0, g.Nrow*g.Ncol)
			header = false
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("cannot parse sample %d: %v", len(vals), err)}
		}
		if len(vals) == g.Nrow*g.Ncol {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("more than nrows x ncols (%d x %d) samples", g.Nrow, g.Ncol)}
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}
	if header {
		return nil, &FormatError{Path: path, Reason: "no data block"}
	}
	if len(vals) != g.Nrow*g.Ncol {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("read %d samples, header declares %d x %d", len(vals), g.Nrow, g.Ncol)}
	}
	g.Elev = vals
	return &g, nil
}

// WriteAAIGrid exports the grid in the Esri ASCII raster format. Samples are
// written with enough precision that a re-read round-trips exactly.
func (g *Geographic) WriteAAIGrid(fp string) error {
	if len(g.Elev) != g.Nrow*g.Ncol {
		return &ShapeError{Reason: fmt.Sprintf("%d samples for a %d x %d grid", len(g.Elev), g.Nrow, g.Ncol)}
	}
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" grid.WriteAAIGrid: %v", err)
	}
	w := bufio.NewWriter(f)
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	fmt.Fprintf(w, "ncols %d\nnrows %d\nxllcorner %s\nyllcorner %s\ncellsize %s\nNODATA_value %s\n",
		g.Ncol, g.Nrow, ff(g.Xll), ff(g.Yll), ff(g.CellSize), ff(g.NoData))
	for i := 0; i < g.Nrow; i++ {
		for j := 0; j < g.Ncol; j++ {
			if j > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(ff(g.At(i, j)))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf(" grid.WriteAAIGrid: %v", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf(" grid.WriteAAIGrid: %v", err)
	}
	return nil
}
