package textimg

// Face represents a font face at a specific pixel size. It supplies the
// two measurements the layout pipeline needs: advance widths and font
// metrics. Face is safe for concurrent use.
type Face interface {
	// Advance returns the total advance width of the text in pixels.
	Advance(text string) float64

	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source   *FontSource
	size     float64
	config   faceConfig
	measurer Measurer
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	return f.measurer.Advance(text)
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	return f.measurer.Metrics()
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements Face.
func (f *sourceFace) private() {}
