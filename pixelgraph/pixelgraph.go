package pixelgraph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// neighborOffsets enumerates the 8-connected neighborhood in clockwise order
// starting north: N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// New builds an immutable Graph over the pixels of img.
//
// The raster is captured into a dense RGBA buffer at construction; later
// changes to img are not observed. When opts.MaxDimension is set and the
// image's larger side exceeds it, the capture is resampled with Catmull-Rom
// interpolation to fit, and all vertex ids refer to the resampled raster.
//
// Returns ErrNilImage, ErrEmptyImage, or ErrBadMaxDimension on invalid input.
func New(img image.Image, opts Options) (*Graph, error) {
	// 1) Validate the input raster and options.
	if img == nil {
		return nil, ErrNilImage
	}
	if opts.MaxDimension < 0 {
		return nil, ErrBadMaxDimension
	}
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	// 2) Decide the working raster size. Integer scaling keeps the aspect
	//    ratio; either side degenerating to zero is clamped back to one pixel.
	resample := false
	if m := opts.MaxDimension; m > 0 && (w > m || h > m) {
		longer := w
		if h > longer {
			longer = h
		}
		w = max(1, w*m/longer)
		h = max(1, h*m/longer)
		resample = true
	}

	// 3) Capture the pixels into a dense RGBA buffer, resampling if needed.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if resample {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	}

	return &Graph{width: w, height: h, pix: dst.Pix}, nil
}

// Width returns the working raster width in pixels.
func (g *Graph) Width() int { return g.width }

// Height returns the working raster height in pixels.
func (g *Graph) Height() int { return g.height }

// Bounds returns the working raster rectangle, anchored at the origin.
func (g *Graph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// VertexCount returns the number of vertices, one per pixel.
func (g *Graph) VertexCount() int { return g.width * g.height }

// VertexIDAt maps a pixel coordinate to its dense vertex id.
// Returns ErrOutOfBounds for coordinates outside the working raster.
func (g *Graph) VertexIDAt(p image.Point) (int, error) {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}

	return p.Y*g.width + p.X, nil
}

// VertexAt maps a dense vertex id back to its pixel coordinate.
// Returns ErrInvalidVertex for ids outside [0, VertexCount).
func (g *Graph) VertexAt(id int) (image.Point, error) {
	if id < 0 || id >= g.width*g.height {
		return image.Point{}, fmt.Errorf("%w: %d", ErrInvalidVertex, id)
	}

	return image.Point{X: id % g.width, Y: id / g.width}, nil
}

// Neighbors returns the in-bounds 8-connected neighbors of id. Interior
// vertices have 8, edge vertices 5, corner vertices 3.
// Returns ErrInvalidVertex for ids outside [0, VertexCount).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if id < 0 || id >= g.width*g.height {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, id)
	}

	return g.AppendNeighbors(id, make([]int, 0, len(neighborOffsets))), nil
}

// AppendNeighbors appends the in-bounds neighbors of id to dst and returns
// the extended slice. It allocates nothing when dst has capacity, making it
// suitable for relaxation loops. Invalid ids leave dst unchanged.
func (g *Graph) AppendNeighbors(id int, dst []int) []int {
	if id < 0 || id >= g.width*g.height {
		return dst
	}
	x, y := id%g.width, id/g.width
	var nx, ny int
	for _, off := range neighborOffsets {
		nx, ny = x+off[0], y+off[1]
		if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
			continue
		}
		dst = append(dst, ny*g.width+nx)
	}

	return dst
}

// Weight answers the cost of the edge between adjacent vertices a and b by
// delegating to w. The graph carries no weight state of its own; a and b
// must be valid, 8-connected neighbors.
func (g *Graph) Weight(w Weigher, a, b int) int64 {
	return w(g, a, b)
}

// PathToPolyline maps a vertex walk to its drawable pixel coordinates.
// Returns ErrInvalidVertex if any id is out of range; an empty walk maps to
// an empty polyline.
func (g *Graph) PathToPolyline(ids []int) (Polyline, error) {
	line := make(Polyline, 0, len(ids))
	for _, id := range ids {
		pt, err := g.VertexAt(id)
		if err != nil {
			return nil, err
		}
		line = append(line, pt)
	}

	return line, nil
}

// RGBAAt samples the working raster at (x, y). Coordinates outside the
// raster clamp to the nearest edge pixel, so weighers may sample the flanks
// of border edges without bounds juggling.
func (g *Graph) RGBAAt(x, y int) color.RGBA {
	if x < 0 {
		x = 0
	} else if x >= g.width {
		x = g.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.height {
		y = g.height - 1
	}
	o := (y*g.width + x) * 4

	return color.RGBA{R: g.pix[o], G: g.pix[o+1], B: g.pix[o+2], A: g.pix[o+3]}
}
