// Package scan is a coverage rasterizer and anti-aliased clip mask.
//
// # Overview
//
// scan turns rectangles, lines and paths into horizontal coverage spans and
// hands them to a [Blitter]. Coverage is either binary (BlitH, BlitRect) or
// 8-bit (BlitAntiH, BlitV), so the same scan converters drive pixel
// compositors, mask builders and clip recorders alike.
//
// The second half of the package is [AAClip], a run-length encoded 8-bit
// clip mask. It is built by rasterizing into a recording blitter, combined
// with other clips row by row without ever expanding to a bitmap, and
// applied to drawing through [AAClipBlitter].
//
// # Quick Start
//
//	img := image.NewAlpha(image.Rect(0, 0, 256, 256))
//	b := scan.NewAlphaBlitter(img)
//
//	p := scan.NewPath()
//	p.Circle(128, 128, 100)
//
//	r := scan.NewRasterizer(scan.WithAAMode(scan.AAAnalytic))
//	r.AntiFillPath(p, scan.NewRegion(scan.IRectFromImage(img.Rect)), b)
//
// # Clipping
//
// Every entry point takes a *[Region]. A nil region leaves drawing
// unclipped; a rectangular region wraps the blitter in a [RectClipBlitter]
// only when the geometry crosses it; a complex region either iterates its
// rectangles or wraps the blitter in a [RegionClipBlitter].
//
// To clip to soft edges, build an [AAClip] and draw through
// [NewAAClipBlitter]:
//
//	var clip scan.AAClip
//	clip.SetPath(circle, nil, true)
//	r.FillIRect(rect, scan.NewRegion(clip.Bounds()), scan.NewAAClipBlitter(b, &clip))
//
// # Architecture
//
// The package is organized into:
//   - Public API: Rasterizer, AAClip, Region, Path, Blitter implementations
//   - Internal: raster (scan converters, hairlines, rect fills), path
//     (flattening), fixed (FDot6/FDot8/16.16 arithmetic), blend (8-bit
//     coverage math), clip (line clipping)
//
// # Logging
//
// scan is silent by default. Call [SetLogger] to receive debug records about
// clip construction and engine selection.
package scan
