package textimg

import (
	"fmt"
	"image/color"
)

// FontContext bundles the values a text placement needs: a Face, a Scale
// applied on top of the face's size, and a draw color.
//
// A FontContext is owned by the caller and may outlive many Draw calls.
// It is read-only for the duration of a call; do not call SetScale or
// SetColor concurrently with Draw on the same context.
type FontContext struct {
	face  Face
	scale Scale
	color color.Color
}

// NewFontContext creates a FontContext.
//
// Panics if face is nil or either scale factor is not positive. A
// non-positive scale is a programming mistake, not a recoverable
// condition, so it fails fast at construction rather than producing
// garbage geometry later.
func NewFontContext(face Face, scale Scale, col color.Color) *FontContext {
	if face == nil {
		panic("textimg: FontContext face cannot be nil")
	}
	if !scale.valid() {
		panic(fmt.Sprintf("textimg: FontContext scale factors must be positive, got (%v, %v)", scale.X, scale.Y))
	}
	if col == nil {
		col = color.Black
	}
	return &FontContext{
		face:  face,
		scale: scale,
		color: col,
	}
}

// Face returns the context's face.
func (fc *FontContext) Face() Face { return fc.face }

// Scale returns the context's scale.
func (fc *FontContext) Scale() Scale { return fc.scale }

// Color returns the context's draw color.
func (fc *FontContext) Color() color.Color { return fc.color }

// SetScale replaces the scale. Panics if either factor is not positive,
// same as NewFontContext.
func (fc *FontContext) SetScale(scale Scale) {
	if !scale.valid() {
		panic(fmt.Sprintf("textimg: FontContext scale factors must be positive, got (%v, %v)", scale.X, scale.Y))
	}
	fc.scale = scale
}

// SetColor replaces the draw color.
func (fc *FontContext) SetColor(col color.Color) {
	if col == nil {
		col = color.Black
	}
	fc.color = col
}

// Width returns the advance width of text in device pixels: the face's
// measured advance scaled by Scale.X, truncated to an integer.
func (fc *FontContext) Width(text string) int {
	return int(fc.face.Advance(text) * fc.scale.X)
}

// LineHeight returns the baseline-to-baseline distance in device pixels:
// the face's line height scaled by Scale.Y, truncated to an integer.
func (fc *FontContext) LineHeight() int {
	return int(fc.face.Metrics().LineHeight() * fc.scale.Y)
}

// String implements fmt.Stringer.
func (fc *FontContext) String() string {
	name := "?"
	if src := fc.face.Source(); src != nil {
		name = src.Name()
	}
	return fmt.Sprintf("FontContext{font: %s, size: %g, scale: (%g, %g)}",
		name, fc.face.Size(), fc.scale.X, fc.scale.Y)
}
