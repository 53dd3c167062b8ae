package grid

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Geographic is a row-major elevation grid in a degree-based frame, as
// delivered by the elevation service. Rows run north to south; Elev holds
// Nrow*Ncol samples with the northernmost row first.
type Geographic struct {
	Nrow, Ncol int
	Xll, Yll   float64 // lower-left corner, decimal degrees
	CellSize   float64 // square cell width, degrees
	NoData     float64
	Elev       []float64
}

// At returns the elevation sample at (row, col).
func (g *Geographic) At(row, col int) float64 { return g.Elev[row*g.Ncol+col] }

// SetAt assigns the elevation sample at (row, col).
func (g *Geographic) SetAt(row, col int, z float64) { g.Elev[row*g.Ncol+col] = z }

// IsNoData reports whether z is the grid's no-data sentinel.
func (g *Geographic) IsNoData(z float64) bool { return z == g.NoData }

// Projected is a uniformly spaced metric grid derived from a Geographic by
// index copy. Fields holds named node scalars; "elevation" is always
// present, simulation components attach their outputs alongside it.
type Projected struct {
	Nrow, Ncol   int
	Eorig, Norig float64 // UTM coordinate of the lower-left corner, metres
	Zone         int
	ZoneLetter   string
	Spacing      float64 // metres, both axes
	NoData       float64
	Fields       map[string][]float64
}

// Elevation returns the grid's elevation field.
func (p *Projected) Elevation() []float64 { return p.Fields["elevation"] }

// At returns the named field value at (row, col).
func (p *Projected) At(name string, row, col int) float64 {
	return p.Fields[name][row*p.Ncol+col]
}

// AddField attaches (or returns the existing) named node field, zero-valued.
func (p *Projected) AddField(name string) []float64 {
	if f, ok := p.Fields[name]; ok {
		return f
	}
	f := make([]float64, p.Nrow*p.Ncol)
	p.Fields[name] = f
	return f
}

// SaveGob persists the prepared grid for later pipeline stages.
func (p *Projected) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" grid.SaveGob: %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf(" grid.SaveGob: %v", err)
	}
	return nil
}

// LoadGob reads a grid saved with SaveGob.
func LoadGob(fp string) (*Projected, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" grid.LoadGob: %v", err)
	}
	defer f.Close()
	var p Projected
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf(" grid.LoadGob: %v", err)
	}
	return &p, nil
}
