package textimg

import "fmt"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Justify specifies how each line extends horizontally from the anchor x
// coordinate.
type Justify int

const (
	// JustifyCenter centers each line on the anchor (default, zero value).
	JustifyCenter Justify = iota
	// JustifyLeft extends each line to the right of the anchor.
	JustifyLeft
	// JustifyRight extends each line to the left of the anchor.
	JustifyRight
)

// String returns the string representation of the justification.
func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "Center"
	case JustifyLeft:
		return "Left"
	case JustifyRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAnchor specifies where the text block sits relative to the
// anchor y coordinate.
type VerticalAnchor int

const (
	// AnchorCenter centers the block vertically on the anchor
	// (default, zero value).
	AnchorCenter VerticalAnchor = iota
	// AnchorTop places the first line at the anchor; lines stack downward.
	AnchorTop
	// AnchorBottom places the last line just above the anchor; lines stack
	// upward.
	AnchorBottom
)

// String returns the string representation of the vertical anchor.
func (a VerticalAnchor) String() string {
	switch a {
	case AnchorCenter:
		return "Center"
	case AnchorTop:
		return "Top"
	case AnchorBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// WrapPolicy specifies whether text wraps when it would extend beyond a
// pixel budget. The zero value disables wrapping.
type WrapPolicy struct {
	enabled  bool
	maxWidth int
}

// NoWrap returns a policy that disables wrapping. Lines are drawn as
// delimited by explicit line breaks in the input, only trimmed.
func NoWrap() WrapPolicy {
	return WrapPolicy{}
}

// WrapAt returns a policy that wraps lines to at most maxWidth pixels.
// maxWidth must be at least MinWrapWidth for the font context in use;
// Draw and WrapText report a *MinWidthError otherwise.
func WrapAt(maxWidth int) WrapPolicy {
	return WrapPolicy{enabled: true, maxWidth: maxWidth}
}

// Enabled reports whether wrapping is enabled.
func (p WrapPolicy) Enabled() bool { return p.enabled }

// MaxWidth returns the wrap budget in pixels. It is meaningful only when
// Enabled reports true.
func (p WrapPolicy) MaxWidth() int { return p.maxWidth }

// String returns the string representation of the wrap policy.
func (p WrapPolicy) String() string {
	if !p.enabled {
		return "NoWrap"
	}
	return fmt.Sprintf("Wrap(%d)", p.maxWidth)
}

// Scale is a pair of multipliers applied to a face's metrics: X scales
// advance widths, Y scales the line height. Both must be positive.
type Scale struct {
	X, Y float64
}

// ScaleUniform returns a Scale with the same factor on both axes.
func ScaleUniform(s float64) Scale {
	return Scale{X: s, Y: s}
}

// valid reports whether both factors are positive.
func (s Scale) valid() bool {
	return s.X > 0 && s.Y > 0
}
