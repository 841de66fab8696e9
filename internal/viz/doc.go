// Package viz paints the three bodies onto a raster surface.
//
//   - [Surface]: minimal 2D raster contract (clear, fill color, fill rect,
//     smoothing mode)
//   - [ImageSurface]: in-memory [Surface] backed by an *image.RGBA
//   - [Renderer]: projects simulation coordinates onto a 4-pixel grid and
//     draws trails then markers
//   - [Canvas]: Braille-based terminal canvas built from a raster
//   - [Palette]: named body color schemes
//
// # Grid
//
// Every projected point snaps to a multiple of [DefaultGrid] pixels, which
// gives the blocky look and hides sub-pixel jitter between frames.
package viz
