package textimg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestLayoutTextJustify tests horizontal offsets against the anchor x.
func TestLayoutTextJustify(t *testing.T) {
	fc := newFakeContext()
	// Ten runes at 10px = 100px wide.
	const line = "abcdefghij"

	tests := []struct {
		name    string
		justify Justify
		wantX   int
	}{
		{"left", JustifyLeft, 400},
		{"center", JustifyCenter, 350},
		{"right", JustifyRight, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutText([]string{line}, fc, 400, 0, tt.justify, AnchorTop)
			if len(got) != 1 {
				t.Fatalf("LayoutText returned %d placements, want 1", len(got))
			}
			if got[0].X != tt.wantX {
				t.Errorf("X = %d, want %d", got[0].X, tt.wantX)
			}
		})
	}
}

// TestLayoutTextVerticalAnchor tests block offsets against the anchor y.
// The fake face's line height is 20px.
func TestLayoutTextVerticalAnchor(t *testing.T) {
	fc := newFakeContext()

	tests := []struct {
		name   string
		lines  []string
		anchor VerticalAnchor
		wantY  []int
	}{
		{"top three lines", []string{"a", "b", "c"}, AnchorTop, []int{0, 20, 40}},
		{"top single line", []string{"a"}, AnchorTop, []int{0}},
		{"bottom three lines", []string{"a", "b", "c"}, AnchorBottom, []int{-60, -40, -20}},
		{"bottom single line", []string{"a"}, AnchorBottom, []int{-20}},
		// Center uses integer division; even counts sit one pixel toward
		// the first line.
		{"center two lines", []string{"a", "b"}, AnchorCenter, []int{-20, 0}},
		{"center three lines", []string{"a", "b", "c"}, AnchorCenter, []int{-30, -10, 10}},
		{"center single line", []string{"a"}, AnchorCenter, []int{-10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutText(tt.lines, fc, 0, 0, JustifyLeft, tt.anchor)
			if len(got) != len(tt.wantY) {
				t.Fatalf("LayoutText returned %d placements, want %d", len(got), len(tt.wantY))
			}
			for i, p := range got {
				if p.Y != tt.wantY[i] {
					t.Errorf("line %d: Y = %d, want %d", i, p.Y, tt.wantY[i])
				}
			}
		})
	}
}

// TestLayoutTextBottomLastLine tests that with AnchorBottom the last line
// always ends one line height above the anchor, regardless of line count.
func TestLayoutTextBottomLastLine(t *testing.T) {
	fc := newFakeContext()

	for n := 1; n <= 5; n++ {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = "x"
		}
		got := LayoutText(lines, fc, 0, 100, JustifyLeft, AnchorBottom)
		last := got[len(got)-1]
		if want := 100 - 20; last.Y != want {
			t.Errorf("n=%d: last line Y = %d, want %d", n, last.Y, want)
		}
	}
}

// TestLayoutTextAnchorOffsetsCombine tests that the anchor point shifts
// every placement by the same amount.
func TestLayoutTextAnchorOffsetsCombine(t *testing.T) {
	fc := newFakeContext()
	lines := []string{"one", "two words", "x"}

	base := LayoutText(lines, fc, 0, 0, JustifyRight, AnchorCenter)
	moved := LayoutText(lines, fc, 37, -12, JustifyRight, AnchorCenter)

	for i := range base {
		if moved[i].X != base[i].X+37 || moved[i].Y != base[i].Y-12 {
			t.Errorf("line %d: moved = (%d, %d), base = (%d, %d)",
				i, moved[i].X, moved[i].Y, base[i].X, base[i].Y)
		}
	}
}

// TestLayoutTextIdempotent tests that layout is pure: identical inputs
// produce identical placement sequences.
func TestLayoutTextIdempotent(t *testing.T) {
	fc := newFakeContext()
	lines := []string{"hello", "wide world", ""}

	first := LayoutText(lines, fc, 123, 456, JustifyCenter, AnchorCenter)
	second := LayoutText(lines, fc, 123, 456, JustifyCenter, AnchorCenter)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated LayoutText differs (-first +second):\n%s", diff)
	}
}

// TestLayoutTextEmpty tests the empty input edge.
func TestLayoutTextEmpty(t *testing.T) {
	fc := newFakeContext()
	if got := LayoutText(nil, fc, 0, 0, JustifyCenter, AnchorCenter); len(got) != 0 {
		t.Errorf("LayoutText(nil) = %v, want empty", got)
	}
}
