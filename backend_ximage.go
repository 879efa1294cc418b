package textimg

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend implements MeasuringBackend by summing glyph advances
// via golang.org/x/image/font/sfnt.
type ximageBackend struct{}

// NewMeasurer implements MeasuringBackend.NewMeasurer.
func (b *ximageBackend) NewMeasurer(source *FontSource, size float64, cfg MeasurerConfig) Measurer {
	return &ximageMeasurer{
		source:  source,
		ppem:    floatToFixed(size),
		hinting: mapHinting(cfg.Hinting),
	}
}

// ximageMeasurer measures text by summing per-glyph advance widths.
// A fresh sfnt.Buffer is used per call (sfnt.Buffer is not safe for
// concurrent use), so the measurer itself is.
type ximageMeasurer struct {
	source  *FontSource
	ppem    fixed.Int26_6
	hinting font.Hinting
}

// Advance implements Measurer.Advance.
func (m *ximageMeasurer) Advance(text string) float64 {
	f := m.source.sfntFont()
	if f == nil {
		return 0
	}

	var buf sfnt.Buffer
	var total fixed.Int26_6

	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, idx, m.ppem, m.hinting)
		if err != nil {
			continue
		}
		total += adv
	}

	return fixedToFloat(total)
}

// Metrics implements Measurer.Metrics.
func (m *ximageMeasurer) Metrics() Metrics {
	f := m.source.sfntFont()
	if f == nil {
		return Metrics{}
	}

	var buf sfnt.Buffer
	fm, err := f.Metrics(&buf, m.ppem, m.hinting)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(fm.Ascent)
	descent := fixedToFloat(fm.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		// Height is the recommended baseline-to-baseline distance, so the
		// gap is whatever it adds beyond ascent+descent.
		LineGap: fixedToFloat(fm.Height) - ascent - descent,
	}
}

// mapHinting converts textimg.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
