// Package render paints a computed transaction-graph layout onto a
// drawing surface.
//
// The renderer is decoupled from any concrete graphics backend through
// the [Surface] capability interface. Backends provided in subpackages:
//
//   - raster: software rasterizer producing PNG bytes
//   - svg: vector output for embedding and inspection
//
// A headless recording surface in the package tests exercises the same
// contract, so the draw order and geometry are verifiable without pixels.
//
// # Draw Order
//
// [Render] clears the previous frame, then draws edges (translucent
// strokes), the center node (larger, distinct color pair), peer nodes,
// and finally the elided focal-address label above the center. Nodes are
// drawn after edges so they visually sit on top.
//
// # Failure Semantics
//
// Rendering has no fallible operations: a nil surface is a no-op, not an
// error, and is expected to be retried once a surface is attached.
package render
