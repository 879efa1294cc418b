package textimg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer draws single lines of text and the debug marker. The default
// implementation rasterizes through golang.org/x/image/font.Drawer;
// callers can substitute their own (e.g. to record placements, or to
// target a different rasterizer).
type Renderer interface {
	// DrawLine draws one line of text with the context's font and color.
	// (x, y) is the top-left corner of the line box.
	DrawLine(dst draw.Image, fc *FontContext, x, y int, text string)

	// DrawMarker marks a single point, used by DrawDebug to show the
	// anchor.
	DrawMarker(dst draw.Image, col color.Color, x, y int)
}

// markerColor is the color DrawDebug marks the anchor with.
var markerColor = color.RGBA{R: 0xff, A: 0xff}

// markerArm is the length of each cross arm in pixels.
const markerArm = 4

// Draw places text onto dst relative to the anchor point (x, y).
//
// The text is split on explicit line breaks and trimmed; if opts.Wrap is
// enabled, each line is wrapped to the pixel budget first. Each resulting
// line is then positioned according to opts.Justify and opts.Anchor and
// drawn with the context's font, scale and color.
//
// A configuration error (wrap budget below MinWrapWidth) is returned
// before anything is drawn; dst is never touched in that case. Draw
// requires exclusive access to dst for the duration of the call.
func Draw(dst draw.Image, text string, fc *FontContext, x, y int, opts Options) error {
	lines, err := resolveLines(text, fc, opts.Wrap)
	if err != nil {
		return err
	}

	r := opts.Renderer
	if r == nil {
		r = defaultRenderer{}
	}

	placements := LayoutText(lines, fc, x, y, opts.Justify, opts.Anchor)
	Logger().Debug("drawing text block",
		"lines", len(placements), "anchor", image.Pt(x, y),
		"justify", opts.Justify.String(), "vanchor", opts.Anchor.String())

	for _, p := range placements {
		r.DrawLine(dst, fc, p.X, p.Y, p.Text)
	}
	return nil
}

// DrawDebug is Draw plus a small cross at the anchor point, drawn first.
// Useful for visually verifying anchor placement.
func DrawDebug(dst draw.Image, text string, fc *FontContext, x, y int, opts Options) error {
	// Validate configuration before mutating the canvas, so a bad wrap
	// budget leaves dst untouched even in debug mode.
	if _, err := resolveLines(text, fc, opts.Wrap); err != nil {
		return err
	}

	r := opts.Renderer
	if r == nil {
		r = defaultRenderer{}
	}
	r.DrawMarker(dst, markerColor, x, y)

	return Draw(dst, text, fc, x, y, opts)
}

// MeasureText returns the pixel size of the block Draw would produce:
// the width of the widest physical line and the total height of all
// lines. Useful for sizing a canvas before drawing.
func MeasureText(text string, fc *FontContext, wrap WrapPolicy) (w, h int, err error) {
	lines, err := resolveLines(text, fc, wrap)
	if err != nil {
		return 0, 0, err
	}

	for _, line := range lines {
		if lw := fc.Width(line); lw > w {
			w = lw
		}
	}
	return w, fc.LineHeight() * len(lines), nil
}

// resolveLines turns raw input into physical lines per the wrap policy.
func resolveLines(text string, fc *FontContext, wrap WrapPolicy) ([]string, error) {
	if !wrap.Enabled() {
		return splitLines(text), nil
	}
	return WrapText(text, fc, wrap.MaxWidth())
}

// defaultRenderer rasterizes text through golang.org/x/image/font.Drawer.
type defaultRenderer struct{}

// DrawLine implements Renderer.DrawLine.
// Lines drawn with a face not created by this package are skipped; use a
// custom Renderer for such faces.
func (defaultRenderer) DrawLine(dst draw.Image, fc *FontContext, x, y int, text string) {
	sf, ok := fc.Face().(*sourceFace)
	if !ok {
		return
	}
	parsed := sf.source.sfntFont()
	if parsed == nil {
		return
	}

	// The raster size follows the vertical scale; the horizontal scale is
	// a measuring concern and is not synthesized by this renderer.
	otFace, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sf.size * fc.Scale().Y,
		DPI:     72,
		Hinting: mapHinting(sf.config.hinting),
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	// (x, y) is the top-left of the line box; the drawer wants a baseline
	// dot.
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fc.Color()),
		Face: otFace,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + otFace.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// DrawMarker implements Renderer.DrawMarker by drawing a small cross.
func (defaultRenderer) DrawMarker(dst draw.Image, col color.Color, x, y int) {
	for d := -markerArm; d <= markerArm; d++ {
		dst.Set(x+d, y, col)
		dst.Set(x, y+d, col)
	}
}
