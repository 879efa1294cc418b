package textimg

// MeasuringBackend creates measurers for a parsed font at a given size.
// This abstraction allows swapping the measuring implementation
// (e.g. plain advance summing vs. HarfBuzz shaping).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type MeasuringBackend interface {
	// NewMeasurer returns a Measurer for source at size (pixels per em).
	NewMeasurer(source *FontSource, size float64, cfg MeasurerConfig) Measurer
}

// MeasurerConfig carries the face configuration a backend may honor.
type MeasurerConfig struct {
	// Hinting is the hinting mode for advance measurement.
	Hinting Hinting
	// Language is a canonical BCP-47 tag for shaping-based backends.
	Language string
}

// Measurer computes advance widths and metrics for one face.
// Implementations must be deterministic for a fixed face and input,
// and safe for concurrent use.
type Measurer interface {
	// Advance returns the total advance width of text in pixels.
	Advance(text string) float64

	// Metrics returns the font metrics at the measurer's size.
	Metrics() Metrics
}

// backendRegistry holds registered measuring backends.
// The default backend is "ximage" (golang.org/x/image).
var backendRegistry = map[string]MeasuringBackend{
	"ximage": &ximageBackend{},
	"gotext": newGotextBackend(),
}

// defaultBackendName is the name of the default measuring backend.
const defaultBackendName = "ximage"

// RegisterBackend registers a custom measuring backend.
// This allows users to provide their own measuring implementation.
func RegisterBackend(name string, b MeasuringBackend) {
	backendRegistry[name] = b
}

// getBackend returns the backend by name, or the default if not found.
func getBackend(name string) MeasuringBackend {
	if b, ok := backendRegistry[name]; ok {
		return b
	}
	return backendRegistry[defaultBackendName]
}
