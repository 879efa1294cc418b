package textimg

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// gotextBackend implements MeasuringBackend using go-text/typesetting's
// HarfBuzz shaper. Unlike the default advance-summing backend, measured
// widths account for kerning pairs, ligatures and contextual alternates.
//
// gotextBackend is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per measurement (font.Face is NOT safe for concurrent use).
// HarfbuzzShaper instances are pooled since they are not concurrent-safe
// either.
type gotextBackend struct {
	// shaperPool pools HarfbuzzShaper instances across goroutines.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fonts maps FontSource pointers to parsed go-text Font objects,
	// avoiding a re-parse of the font data on every measurement.
	fonts map[*FontSource]*gtfont.Font
}

// newGotextBackend creates the backend registered under "gotext".
func newGotextBackend() *gotextBackend {
	return &gotextBackend{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[*FontSource]*gtfont.Font),
	}
}

// NewMeasurer implements MeasuringBackend.NewMeasurer.
func (b *gotextBackend) NewMeasurer(source *FontSource, size float64, cfg MeasurerConfig) Measurer {
	return &gotextMeasurer{
		backend: b,
		source:  source,
		size:    size,
		lang:    language.NewLanguage(cfg.Language),
		// Vertical metrics come from the same sfnt tables either way, so
		// they are shared with the default backend. Only advance widths
		// differ between backends.
		metrics: (&ximageBackend{}).NewMeasurer(source, size, cfg),
	}
}

// gotextMeasurer measures text by shaping it with HarfBuzz.
type gotextMeasurer struct {
	backend *gotextBackend
	source  *FontSource
	size    float64
	lang    language.Language
	metrics Measurer
}

// Advance implements Measurer.Advance.
// If the font data cannot be parsed by go-text, the measurer falls back
// to the default advance-summing path and logs a warning.
func (m *gotextMeasurer) Advance(text string) float64 {
	if text == "" {
		return 0
	}

	f, err := m.backend.getOrParseFont(m.source)
	if err != nil {
		Logger().Warn("textimg: gotext backend falling back to ximage measuring",
			"font", m.source.Name(), "error", err)
		return m.metrics.Advance(text)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f),
		Size:      floatToFixed(m.size),
		Script:    detectScript(runes),
		Language:  m.lang,
	}

	shaper := m.backend.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.backend.shaperPool.Put(shaper)

	return fixedToFloat(output.Advance)
}

// Metrics implements Measurer.Metrics.
func (m *gotextMeasurer) Metrics() Metrics {
	return m.metrics.Metrics()
}

// getOrParseFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not the Face).
// font.Font is read-only and safe for concurrent use.
func (b *gotextBackend) getOrParseFont(source *FontSource) (*gtfont.Font, error) {
	// Fast path: check cache with read lock.
	b.mu.RLock()
	if f, ok := b.fonts[source]; ok {
		b.mu.RUnlock()
		return f, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := b.fonts[source]; ok {
		return f, nil
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(source.rawData()))
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	b.fonts[source] = face.Font
	return face.Font, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; complex-script runs
// are out of scope for this package.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
