package fetch

import (
	"fmt"
	"strconv"
)

// Dataset identifies a global DEM catalogued by the elevation service.
type Dataset string

const (
	SRTMGL1 Dataset = "SRTMGL1" // SRTM GL1 30m
	SRTMGL3 Dataset = "SRTMGL3" // SRTM GL3 90m
	NASADEM Dataset = "NASADEM" // NASADEM global 30m
	COP30   Dataset = "COP30"   // Copernicus global 30m
	COP90   Dataset = "COP90"   // Copernicus global 90m
)

func (d Dataset) supported() bool {
	switch d {
	case SRTMGL1, SRTMGL3, NASADEM, COP30, COP90:
		return true
	}
	return false
}

// Format is the raster format requested from the elevation service.
type Format string

const (
	AAIGrid Format = "AAIGrid" // Esri ASCII grid
	GTiff   Format = "GTiff"   // GeoTIFF
)

func (f Format) ext() string {
	switch f {
	case AAIGrid:
		return "asc"
	case GTiff:
		return "tif"
	}
	return ""
}

// BoundingBox is a geographic extent in decimal degrees.
type BoundingBox struct {
	South, North float64
	West, East   float64
}

// Request fully describes one raster to be fetched. Immutable; its fields
// define the cache key.
type Request struct {
	DEM Dataset
	Box BoundingBox
	Fmt Format
}

// Validate checks the request parameters before any side effect.
func (r Request) Validate() error {
	if !r.DEM.supported() {
		return &RequestError{Reason: fmt.Sprintf("unsupported dataset %q", string(r.DEM))}
	}
	if r.Fmt.ext() == "" {
		return &RequestError{Reason: fmt.Sprintf("unsupported output format %q", string(r.Fmt))}
	}
	if r.Box.South >= r.Box.North {
		return &RequestError{Reason: fmt.Sprintf("south (%v) must be less than north (%v)", r.Box.South, r.Box.North)}
	}
	if r.Box.West >= r.Box.East {
		return &RequestError{Reason: fmt.Sprintf("west (%v) must be less than east (%v)", r.Box.West, r.Box.East)}
	}
	return nil
}

// Key returns the deterministic cache filename for the request.
func (r Request) Key() string {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("%s_%s_%s_%s_%s.%s", r.DEM, ff(r.Box.South), ff(r.Box.North), ff(r.Box.West), ff(r.Box.East), r.Fmt.ext())
}
