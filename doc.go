// Package textimg places multi-line text onto a raster image.
//
// # Overview
//
// textimg takes a string, a font, and an anchor point and draws the text
// onto any image that implements draw.Image. It supports horizontal
// justification, vertical anchoring, and optional width-constrained line
// wrapping with mid-word hyphenation for words that cannot fit on a line
// of their own.
//
// The pipeline has three stages:
//
//   - splitting: input text is split on explicit line breaks and trimmed
//   - wrapping: each line is wrapped to a pixel budget (optional)
//   - layout: each wrapped line gets a draw origin relative to the anchor
//
// Measuring and rasterizing glyphs is delegated to a font backend; the
// layout math itself never touches pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/textimg"
//
//	// Load font (do once, share across the application)
//	source, err := textimg.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a face at a specific pixel size (lightweight)
//	face := source.Face(24)
//
//	// Bundle the face with a scale and color
//	fc := textimg.NewFontContext(face, textimg.ScaleUniform(1), color.Black)
//
//	// Draw centered text, wrapped to 300px, anchored at (400, 300)
//	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	err = textimg.Draw(img, "hello world", fc, 400, 300, textimg.Options{
//	    Wrap: textimg.WrapAt(300),
//	})
//
// # Anchoring
//
// The anchor point is the caller-supplied coordinate from which all line
// offsets are computed. Justification moves each line horizontally
// relative to the anchor x; the vertical anchor moves the whole block
// relative to the anchor y. Both default to centered. DrawDebug draws a
// small cross at the anchor, which is useful when tuning placement.
//
// # Measuring Backends
//
// Advance widths come from a pluggable measuring backend. The default
// ("ximage") sums glyph advances via golang.org/x/image/font/sfnt. An
// opt-in "gotext" backend measures through go-text/typesetting's HarfBuzz
// shaper, so widths account for kerning and ligatures:
//
//	face := source.Face(24, textimg.WithBackend("gotext"))
//
// Custom backends can be registered with RegisterBackend.
//
// # Logging
//
// By default textimg produces no log output. Call SetLogger with a
// *slog.Logger to see per-word wrap decisions and the final line list at
// debug level.
package textimg
