// Package pixelgraph treats a raster image as an 8-connected graph over its
// pixels, with pluggable edge weighing.
//
// Overview:
//
//   - Graph captures an image.Image into an immutable RGBA buffer and maps
//     every pixel (x, y) to the dense vertex id y*Width+x, a total bijection
//     over the working raster.
//   - Neighbors enumerates the up-to-8 in-bounds neighbors of a vertex;
//     AppendNeighbors is the allocation-free variant for relaxation loops.
//   - Edges carry no stored weight: Weight delegates to a Weigher, a pure
//     function of (graph, edge) chosen by the caller.
//   - PathToPolyline converts a vertex walk into drawable pixel coordinates.
//
// Weighers:
//
//   - A WeigherFactory builds a Weigher bound to a graph, so formulas can
//     precompute raster-derived planes once.
//   - Factories are registered by name (RegisterWeigher / NewWeigher /
//     WeigherNames); the built-ins CrossGradMono and CrossGradColor invert
//     the contrast measured across an edge, making edges that sit on strong
//     image boundaries cheap, in [0, GradScale].
//
// Raster capture:
//
//   - Construction copies the pixels; later changes to the source image are
//     not observed.
//   - Options.MaxDimension caps the working raster: oversized sources are
//     resampled with Catmull-Rom interpolation before the graph is built,
//     trading boundary precision for a smaller search space. Vertex ids
//     always refer to the working raster reported by Width and Height.
//
// Performance and complexity:
//
//   - Space: O(W·H) for the RGBA capture.
//   - VertexIDAt, VertexAt, Weight: O(1). Neighbors: O(1) with at most 8
//     results. PathToPolyline: O(path length).
//
// Error handling (sentinel errors):
//
//   - ErrNilImage, ErrEmptyImage, ErrBadMaxDimension: invalid construction.
//   - ErrOutOfBounds: VertexIDAt outside the working raster.
//   - ErrInvalidVertex: VertexAt, Neighbors or PathToPolyline beyond
//     [0, VertexCount).
//   - ErrUnknownWeigher: NewWeigher with an unregistered name.
//   - ErrEmptyWeigherName, ErrNilWeigherFactory, ErrDuplicateWeigher:
//     invalid registration (via panic, registration is programmer territory).
//
// Concurrency:
//
//   - Graph is immutable after New and safe for concurrent readers. The
//     weigher registry is guarded internally; register at init time.
package pixelgraph
