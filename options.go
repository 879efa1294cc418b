package textimg

import "golang.org/x/text/language"

// Options configures a single Draw call. The zero value is ready to use:
// centered justification, centered vertical anchor, no wrapping, and the
// default renderer.
type Options struct {
	// Justify specifies horizontal justification relative to the anchor x.
	// Defaults to JustifyCenter.
	Justify Justify

	// Anchor specifies vertical anchoring relative to the anchor y.
	// Defaults to AnchorCenter.
	Anchor VerticalAnchor

	// Wrap specifies the wrapping policy. Defaults to no wrapping.
	Wrap WrapPolicy

	// Renderer draws individual lines and the debug marker. If nil, a
	// renderer based on golang.org/x/image/font.Drawer is used.
	Renderer Renderer
}

// Hinting specifies font hinting for the ximage measuring backend.
type Hinting int

const (
	// HintingFull applies full hinting (default).
	HintingFull Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingNone disables hinting.
	HintingNone
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingFull:
		return "Full"
	case HintingVertical:
		return "Vertical"
	case HintingNone:
		return "None"
	default:
		return unknownStr
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for a Face.
type faceConfig struct {
	backend  string
	hinting  Hinting
	language string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		backend:  defaultBackendName,
		hinting:  HintingFull,
		language: "en",
	}
}

// WithBackend selects the measuring backend for the face.
// The default is "ximage" which sums glyph advances via
// golang.org/x/image/font/sfnt. "gotext" measures through
// go-text/typesetting's HarfBuzz shaper.
//
// Custom backends can be registered with RegisterBackend. Unknown names
// fall back to the default backend.
func WithBackend(name string) FaceOption {
	return func(c *faceConfig) {
		c.backend = name
	}
}

// WithHinting sets the hinting mode used when measuring glyph advances.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the BCP-47 language tag for the face (e.g. "en",
// "ja", "tr"). The tag influences shaping-based measurement; malformed
// tags are ignored and the default "en" is kept.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		if tag, err := language.Parse(lang); err == nil {
			c.language = tag.String()
		}
	}
}
