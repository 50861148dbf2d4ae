package pixelgraph_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livewire/pixelgraph"
)

// ---------------------------------------------------------------------------
// 1. Registry behavior
// ---------------------------------------------------------------------------

func TestWeigherRegistry(t *testing.T) {
	g, err := pixelgraph.New(grayRaster(3, 3, 50), pixelgraph.DefaultOptions())
	require.NoError(t, err)

	_, err = pixelgraph.NewWeigher("NoSuchWeigher", g)
	assert.ErrorIs(t, err, pixelgraph.ErrUnknownWeigher)

	for _, name := range []string{pixelgraph.WeigherCrossGradMono, pixelgraph.WeigherCrossGradColor} {
		w, err := pixelgraph.NewWeigher(name, g)
		require.NoError(t, err, name)
		require.NotNil(t, w, name)
	}

	names := pixelgraph.WeigherNames()
	assert.Contains(t, names, pixelgraph.WeigherCrossGradMono)
	assert.Contains(t, names, pixelgraph.WeigherCrossGradColor)
	assert.IsIncreasing(t, names, "names must come back sorted")
}

func TestRegisterWeigher_Validation(t *testing.T) {
	factory := func(*pixelgraph.Graph) pixelgraph.Weigher {
		return func(*pixelgraph.Graph, int, int) int64 { return 1 }
	}

	assert.PanicsWithValue(t, pixelgraph.ErrEmptyWeigherName, func() {
		pixelgraph.RegisterWeigher("", factory)
	})
	assert.PanicsWithValue(t, pixelgraph.ErrNilWeigherFactory, func() {
		pixelgraph.RegisterWeigher("Custom", nil)
	})
	assert.PanicsWithValue(t, pixelgraph.ErrDuplicateWeigher, func() {
		pixelgraph.RegisterWeigher(pixelgraph.WeigherCrossGradMono, factory)
	})
}

// ---------------------------------------------------------------------------
// 2. Cross-gradient semantics
// ---------------------------------------------------------------------------

// TestCrossGradMono_BoundaryIsCheap verifies the defining property: edges
// running along a hard tone boundary cost less than edges in flat regions
// or edges crossing the boundary.
func TestCrossGradMono_BoundaryIsCheap(t *testing.T) {
	g, err := pixelgraph.New(twoToneRaster(10, 6, 5), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	w, err := pixelgraph.NewWeigher(pixelgraph.WeigherCrossGradMono, g)
	require.NoError(t, err)

	id := func(x, y int) int {
		v, err := g.VertexIDAt(image.Pt(x, y))
		require.NoError(t, err)

		return v
	}

	// Vertical edge hugging the boundary (dark side, columns 4|5 split).
	along := g.Weight(w, id(4, 2), id(4, 3))
	// Vertical edge deep in the flat bright region.
	flat := g.Weight(w, id(8, 2), id(8, 3))
	// Horizontal edge stepping across the boundary.
	across := g.Weight(w, id(4, 2), id(5, 2))

	assert.Less(t, along, flat, "boundary edges must undercut flat-region edges")
	assert.Less(t, along, across, "boundary edges must undercut crossing edges")
	assert.Equal(t, int64(0), along, "maximal contrast costs nothing")
	assert.Equal(t, pixelgraph.GradScale, flat, "flat regions cost the full scale")
}

// TestCrossGradColor_SeesEqualLumaBoundary uses two tones chosen to collapse
// to the same integer luminance: the mono weigher is blind to the boundary,
// the per-channel weigher is not.
func TestCrossGradColor_SeesEqualLumaBoundary(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			// luma(200,0,0) == luma(0,101,0) == 59 under BT.601 integer math.
			c := color.RGBA{R: 200, A: 255}
			if x >= 5 {
				c = color.RGBA{G: 101, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	g, err := pixelgraph.New(img, pixelgraph.DefaultOptions())
	require.NoError(t, err)

	mono, err := pixelgraph.NewWeigher(pixelgraph.WeigherCrossGradMono, g)
	require.NoError(t, err)
	colorW, err := pixelgraph.NewWeigher(pixelgraph.WeigherCrossGradColor, g)
	require.NoError(t, err)

	a, err := g.VertexIDAt(image.Pt(4, 2))
	require.NoError(t, err)
	b, err := g.VertexIDAt(image.Pt(4, 3))
	require.NoError(t, err)

	assert.Equal(t, pixelgraph.GradScale, g.Weight(mono, a, b),
		"equal-luma boundary is invisible to the mono weigher")
	assert.Less(t, g.Weight(colorW, a, b), pixelgraph.GradScale,
		"per-channel weigher must still see the boundary")
}

// TestWeighers_NonNegativeEverywhere walks every 8-connected edge of a small
// busy raster and checks both built-ins stay inside [0, GradScale].
func TestWeighers_NonNegativeEverywhere(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 36), G: uint8(y * 51), B: uint8((x + y) * 21), A: 255,
			})
		}
	}
	g, err := pixelgraph.New(img, pixelgraph.DefaultOptions())
	require.NoError(t, err)

	for _, name := range []string{pixelgraph.WeigherCrossGradMono, pixelgraph.WeigherCrossGradColor} {
		w, err := pixelgraph.NewWeigher(name, g)
		require.NoError(t, err)

		for id := 0; id < g.VertexCount(); id++ {
			ns, err := g.Neighbors(id)
			require.NoError(t, err)
			for _, n := range ns {
				got := g.Weight(w, id, n)
				assert.GreaterOrEqual(t, got, int64(0), "%s edge %d-%d", name, id, n)
				assert.LessOrEqual(t, got, pixelgraph.GradScale, "%s edge %d-%d", name, id, n)
			}
		}
	}
}
