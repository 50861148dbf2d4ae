// Package livewire is an interactive image-boundary tracing core: click
// points on a raster and let each committed segment snap to strong image
// edges via a background shortest-path search.
//
// 🚀 What is livewire?
//
//	An embeddable "intelligent scissors" engine that brings together:
//		• Indexed min-priority queue: true decrease-key, O(1) lookups
//		• Pixel graph: 8-connected raster graph with pluggable edge weighers
//		• Incremental Dijkstra: bounded slices, immutable progress snapshots
//		• Selection state machine: typed events, straight-line & search variants
//		• Async coordination: one worker, generation tokens, safe cancellation
//
// ✨ Why choose livewire?
//
//   - Responsive by construction – searches run in bounded slices, so
//     cancellation latency is one slice, never the whole image
//   - Race-free by design – generation tokens make late results from
//     abandoned searches harmless, not just unlikely
//   - UI-agnostic – consumes image.Image, produces polylines and events;
//     no toolkit, no file I/O
//
// Everything is organized under five subpackages:
//
//	minqueue/   — indexed binary min-heap over (key, priority) pairs
//	pixelgraph/ — raster ⇄ graph bijection, neighbors, weigher registry
//	dijkstra/   — incremental single-source solver + snapshots
//	selection/  — states, events, capability interface, straight-line variant
//	scissors/   — the graph-search variant with background coordination
//
// Quick ASCII example:
//
//	click ●────────╮ committed segment hugs the contour
//	               ╰──────● click
//	                      ┊ live wire follows the cursor
//	                      ●  cursor
//
// Minimal usage:
//
//	m, err := scissors.NewModel("CrossGradMono")
//	if err != nil { ... }
//	if err := m.SetImage(img); err != nil { ... }
//	m.AddListener(func(e selection.Event) { ... })
//	if err := m.AddPoint(image.Pt(10, 12)); err != nil { ... }
//	// later, while Selecting:
//	wire, err := m.LiveWire(image.Pt(40, 33))
//
// See each subpackage's doc.go for contracts, complexity and error
// semantics, and the examples/ directory for full walkthroughs.
package livewire
