package textimg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textimg package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textimg: empty font data")
)

// MinWidthError is returned when a wrap width is below the minimum the
// active font and scale can support. The minimum is the measured width of
// a two-character "mm" probe, so that at least two em-sized characters fit
// on every wrapped line.
type MinWidthError struct {
	// Width is the wrap width that was requested.
	Width int
	// Min is the minimum acceptable wrap width for the font context.
	Min int
}

func (e *MinWidthError) Error() string {
	return fmt.Sprintf("textimg: wrap width %d is below the minimum %d for this font and scale", e.Width, e.Min)
}
