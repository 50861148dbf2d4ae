// Package pixelgraph defines core types, options, and sentinel errors
// for the pixelgraph subpackage of github.com/katalvlaran/livewire.
package pixelgraph

import (
	"errors"
	"image"
)

// Sentinel errors for pixelgraph operations.
var (
	// ErrNilImage indicates a nil image was passed to New.
	ErrNilImage = errors.New("pixelgraph: image must be non-nil")
	// ErrEmptyImage indicates the input raster has no pixels.
	ErrEmptyImage = errors.New("pixelgraph: image must have at least one pixel")
	// ErrOutOfBounds indicates a point outside the working raster.
	ErrOutOfBounds = errors.New("pixelgraph: point outside the raster")
	// ErrInvalidVertex indicates a vertex id outside [0, VertexCount).
	ErrInvalidVertex = errors.New("pixelgraph: vertex id out of range")
	// ErrBadMaxDimension indicates a negative MaxDimension option value.
	ErrBadMaxDimension = errors.New("pixelgraph: MaxDimension must be non-negative")
	// ErrUnknownWeigher indicates a weigher name with no registered factory.
	ErrUnknownWeigher = errors.New("pixelgraph: unknown weigher name")
	// ErrEmptyWeigherName indicates an attempt to register under an empty name.
	ErrEmptyWeigherName = errors.New("pixelgraph: weigher name must be non-empty")
	// ErrNilWeigherFactory indicates an attempt to register a nil factory.
	ErrNilWeigherFactory = errors.New("pixelgraph: weigher factory must be non-nil")
	// ErrDuplicateWeigher indicates the name is already registered.
	ErrDuplicateWeigher = errors.New("pixelgraph: weigher name already registered")
)

// Weigher computes the cost of traversing the edge between adjacent vertices
// a and b of g. Implementations must be pure, return non-negative values,
// and may assume a and b are valid, 8-connected neighbors.
type Weigher func(g *Graph, a, b int) int64

// WeigherFactory builds a Weigher bound to a specific graph, letting the
// formula precompute against the raster it will read.
type WeigherFactory func(g *Graph) Weigher

// Options contains tunable parameters for graph construction.
type Options struct {
	// MaxDimension caps the working raster: when the source image's larger
	// side exceeds it, the capture is resampled to fit before the graph is
	// built. Zero disables resampling.
	MaxDimension int
}

// DefaultOptions returns an Options with default settings: MaxDimension=0
// (the graph is built over the source raster as-is).
func DefaultOptions() Options {
	return Options{MaxDimension: 0}
}

// Polyline is an ordered sequence of pixel coordinates, the drawable form of
// a vertex walk.
type Polyline []image.Point

// Start returns the first point of the polyline, or the zero point when the
// polyline is empty.
func (p Polyline) Start() image.Point {
	if len(p) == 0 {
		return image.Point{}
	}

	return p[0]
}

// End returns the last point of the polyline, or the zero point when the
// polyline is empty.
func (p Polyline) End() image.Point {
	if len(p) == 0 {
		return image.Point{}
	}

	return p[len(p)-1]
}

// Reversed returns a fresh copy of the polyline in the opposite direction.
func (p Polyline) Reversed() Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}

	return out
}

// Graph treats a raster image as an 8-connected graph over its pixels.
// It is immutable once built. Vertex ids are dense: id = y*Width + x.
// The captured RGBA buffer is the "working raster"; when MaxDimension
// triggered resampling, ids refer to the resampled pixels.
type Graph struct {
	width, height int
	pix           []uint8 // RGBA, 4 bytes per pixel, row-major
}
