package dijkstra_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/katalvlaran/livewire/dijkstra"
	"github.com/katalvlaran/livewire/pixelgraph"
)

// noiseRaster builds a w×h raster of seeded random gray levels so gradient
// weighers see realistic variation.
func noiseRaster(w, h int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := uint8(rng.Intn(256))
			img.SetRGBA(x, y, color.RGBA{R: l, G: l, B: l, A: 255})
		}
	}

	return img
}

// BenchmarkFullSearch measures a complete solve on a 128×128 raster with the
// built-in luminance-gradient weigher, the workload of one committed point.
func BenchmarkFullSearch(b *testing.B) {
	g, err := pixelgraph.New(noiseRaster(128, 128, 7), pixelgraph.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	weigh, err := pixelgraph.NewWeigher(pixelgraph.WeigherCrossGradMono, g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := dijkstra.NewPathfinder(g, weigh, 0)
		if err != nil {
			b.Fatal(err)
		}
		for !p.AllPathsFound() {
			if _, err = p.ExtendSearch(1 << 30); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkSlicedSearch measures the same solve cut into 10k-vertex slices,
// the incremental mode the coordination layer drives, including the O(V)
// snapshot copy taken per slice.
func BenchmarkSlicedSearch(b *testing.B) {
	g, err := pixelgraph.New(noiseRaster(128, 128, 7), pixelgraph.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	weigh, err := pixelgraph.NewWeigher(pixelgraph.WeigherCrossGradMono, g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := dijkstra.NewPathfinder(g, weigh, 0)
		if err != nil {
			b.Fatal(err)
		}
		for !p.AllPathsFound() {
			if _, err = p.ExtendSearch(10_000); err != nil {
				b.Fatal(err)
			}
		}
	}
}
