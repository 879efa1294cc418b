package textimg

import (
	"image/color"
	"strings"
	"testing"
)

// mustPanic fails the test if fn does not panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// TestNewFontContextScalePanics tests the fail-fast scale contract.
func TestNewFontContextScalePanics(t *testing.T) {
	face := &fakeFace{def: 10}

	tests := []struct {
		name  string
		scale Scale
	}{
		{"negative x", Scale{X: -1, Y: 1}},
		{"negative y", Scale{X: 1, Y: -1}},
		{"zero x", Scale{X: 0, Y: 1}},
		{"zero y", Scale{X: 1, Y: 0}},
		{"both negative", Scale{X: -2, Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, "NewFontContext", func() {
				NewFontContext(face, tt.scale, color.White)
			})
		})
	}
}

// TestNewFontContextNilFace tests that a nil face is rejected at
// construction.
func TestNewFontContextNilFace(t *testing.T) {
	mustPanic(t, "NewFontContext", func() {
		NewFontContext(nil, ScaleUniform(1), color.White)
	})
}

// TestSetScale tests scale mutation and its contract.
func TestSetScale(t *testing.T) {
	fc := newFakeContext()

	fc.SetScale(ScaleUniform(2))
	if got := fc.Scale(); got != (Scale{X: 2, Y: 2}) {
		t.Errorf("Scale() = %+v, want {2 2}", got)
	}

	mustPanic(t, "SetScale", func() {
		fc.SetScale(Scale{X: 0, Y: 1})
	})

	// The failed mutation must not have corrupted the context.
	if got := fc.Scale(); got != (Scale{X: 2, Y: 2}) {
		t.Errorf("Scale() after failed SetScale = %+v, want {2 2}", got)
	}
}

// TestSetColor tests color mutation.
func TestSetColor(t *testing.T) {
	fc := newFakeContext()
	fc.SetColor(color.RGBA{R: 1, G: 2, B: 3, A: 4})
	if got := fc.Color(); got != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Color() = %v", got)
	}

	// nil resets to black rather than propagating a nil color.
	fc.SetColor(nil)
	if fc.Color() == nil {
		t.Error("Color() = nil after SetColor(nil)")
	}
}

// TestFontContextWidth tests pixel quantization of scaled advances.
func TestFontContextWidth(t *testing.T) {
	face := &fakeFace{def: 10}

	tests := []struct {
		name  string
		scale Scale
		text  string
		want  int
	}{
		{"unit scale", ScaleUniform(1), "abc", 30},
		{"double x", Scale{X: 2, Y: 1}, "abc", 60},
		{"fractional truncates", Scale{X: 0.25, Y: 1}, "abc", 7}, // 7.5 -> 7
		{"empty text", ScaleUniform(1), "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := NewFontContext(face, tt.scale, color.White)
			if got := fc.Width(tt.text); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// TestFontContextLineHeight tests pixel quantization of the scaled line
// height (fake face: ascent 16 + descent 4 = 20).
func TestFontContextLineHeight(t *testing.T) {
	face := &fakeFace{def: 10}

	tests := []struct {
		name  string
		scale Scale
		want  int
	}{
		{"unit scale", ScaleUniform(1), 20},
		{"scaled y", Scale{X: 1, Y: 1.5}, 30},
		{"x does not affect height", Scale{X: 3, Y: 1}, 20},
		{"fractional truncates", Scale{X: 1, Y: 0.33}, 6}, // 6.6 -> 6
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := NewFontContext(face, tt.scale, color.White)
			if got := fc.LineHeight(); got != tt.want {
				t.Errorf("LineHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestFontContextString tests the Stringer output with a sourceless face.
func TestFontContextString(t *testing.T) {
	fc := newFakeContext()
	s := fc.String()
	if !strings.HasPrefix(s, "FontContext{") {
		t.Errorf("String() = %q", s)
	}
}
