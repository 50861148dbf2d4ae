package pixelgraph

import (
	"image/color"
	"sort"
	"sync"
)

// Names of the built-in weigher factories.
const (
	// WeigherCrossGradMono weighs edges by the luminance gradient measured
	// across them: strong perpendicular contrast makes an edge cheap.
	WeigherCrossGradMono = "CrossGradMono"
	// WeigherCrossGradColor is the same construction applied per RGB channel,
	// keeping the strongest channel gradient.
	WeigherCrossGradColor = "CrossGradColor"
)

// GradScale is the maximum weight the built-in weighers return. An edge
// sitting on maximal contrast costs 0; an edge in a flat region costs
// GradScale.
const GradScale int64 = 255

var (
	weigherMu        sync.RWMutex
	weigherFactories = make(map[string]WeigherFactory)
)

func init() {
	RegisterWeigher(WeigherCrossGradMono, newCrossGradMono)
	RegisterWeigher(WeigherCrossGradColor, newCrossGradColor)
}

// RegisterWeigher makes a weigher factory available to NewWeigher under the
// given name. Names and formulas are caller configuration: anything beyond
// the built-ins is registered by the embedding application.
// Panics with ErrEmptyWeigherName, ErrNilWeigherFactory or
// ErrDuplicateWeigher on invalid registration.
func RegisterWeigher(name string, f WeigherFactory) {
	if name == "" {
		panic(ErrEmptyWeigherName)
	}
	if f == nil {
		panic(ErrNilWeigherFactory)
	}

	weigherMu.Lock()
	defer weigherMu.Unlock()
	if _, dup := weigherFactories[name]; dup {
		panic(ErrDuplicateWeigher)
	}
	weigherFactories[name] = f
}

// NewWeigher builds the named weigher bound to g.
// Returns ErrUnknownWeigher for names with no registered factory.
func NewWeigher(name string, g *Graph) (Weigher, error) {
	weigherMu.RLock()
	f, ok := weigherFactories[name]
	weigherMu.RUnlock()
	if !ok {
		return nil, ErrUnknownWeigher
	}

	return f(g), nil
}

// WeigherNames returns the registered weigher names in sorted order, ready
// for a selection widget.
func WeigherNames() []string {
	weigherMu.RLock()
	defer weigherMu.RUnlock()

	names := make([]string, 0, len(weigherFactories))
	for name := range weigherFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// newCrossGradMono precomputes a luminance plane for g and returns a weigher
// reading it. The returned weigher is bound to g: using it with another
// graph samples the wrong plane.
func newCrossGradMono(g *Graph) Weigher {
	w, h := g.Width(), g.Height()
	plane := make([]int32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			plane[y*w+x] = luma(g.RGBAAt(x, y))
		}
	}

	// sample clamps to the nearest edge pixel, mirroring Graph.RGBAAt, so
	// border edges read a flat flank instead of wrapping.
	sample := func(x, y int) int32 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}

		return plane[y*w+x]
	}

	return func(_ *Graph, a, b int) int64 {
		ax, ay := a%w, a/w
		bx, by := b%w, b/w

		// 1) Rotate the step by 90 degrees to get the cross direction.
		px, py := ay-by, bx-ax

		// 2) Sum the luminance of the two pixels flanking the edge on each
		//    side, then take half the absolute difference as the gradient.
		s1 := sample(ax+px, ay+py) + sample(bx+px, by+py)
		s2 := sample(ax-px, ay-py) + sample(bx-px, by-py)
		grad := s1 - s2
		if grad < 0 {
			grad = -grad
		}

		// 3) Invert: strong contrast across the edge means a cheap edge.
		return GradScale - int64(grad/2)
	}
}

// newCrossGradColor returns the stateless per-channel variant; it reads the
// raster through the graph passed at call time, so one instance serves any
// graph.
func newCrossGradColor(*Graph) Weigher {
	return crossGradColor
}

// crossGradColor computes the cross-edge gradient separately for R, G and B
// and keeps the strongest channel. A boundary visible in any single channel
// still attracts the path.
func crossGradColor(g *Graph, a, b int) int64 {
	w := g.Width()
	ax, ay := a%w, a/w
	bx, by := b%w, b/w
	px, py := ay-by, bx-ax

	c1a := g.RGBAAt(ax+px, ay+py)
	c1b := g.RGBAAt(bx+px, by+py)
	c2a := g.RGBAAt(ax-px, ay-py)
	c2b := g.RGBAAt(bx-px, by-py)

	grad := channelGrad(c1a.R, c1b.R, c2a.R, c2b.R)
	if gr := channelGrad(c1a.G, c1b.G, c2a.G, c2b.G); gr > grad {
		grad = gr
	}
	if gb := channelGrad(c1a.B, c1b.B, c2a.B, c2b.B); gb > grad {
		grad = gb
	}

	return GradScale - grad
}

// channelGrad is half the absolute flank difference for one channel.
func channelGrad(p1a, p1b, p2a, p2b uint8) int64 {
	s1 := int32(p1a) + int32(p1b)
	s2 := int32(p2a) + int32(p2b)
	d := s1 - s2
	if d < 0 {
		d = -d
	}

	return int64(d / 2)
}

// luma converts a pixel to integer luminance on the BT.601 weights.
func luma(c color.RGBA) int32 {
	return (299*int32(c.R) + 587*int32(c.G) + 114*int32(c.B)) / 1000
}
