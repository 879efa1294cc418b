package textimg

// Placement is one line of text with its computed draw origin. The origin
// is the top-left corner of the line box in image coordinates.
type Placement struct {
	Text string
	X, Y int
}

// LayoutText computes the draw origin of each line relative to the anchor
// point (x, y). It is pure arithmetic: identical inputs always produce
// identical placements, and nothing is drawn.
//
// Vertical offsets place the whole block: with AnchorTop the first line
// starts at the anchor; with AnchorBottom the last line ends at it; with
// AnchorCenter the block midpoint sits on it. Centering uses integer
// division, so blocks with an even number of lines land one pixel closer
// to the first line.
//
// Horizontal offsets are per line, using that line's measured width.
func LayoutText(lines []string, fc *FontContext, x, y int, justify Justify, anchor VerticalAnchor) []Placement {
	n := len(lines)
	h := fc.LineHeight()

	placements := make([]Placement, 0, n)
	for i, line := range lines {
		var vOff int
		switch anchor {
		case AnchorTop:
			vOff = h * i
		case AnchorBottom:
			vOff = -h * (n - i)
		default: // AnchorCenter
			vOff = (h*i - h*(n-i)) / 2
		}

		var hOff int
		switch justify {
		case JustifyLeft:
			hOff = 0
		case JustifyRight:
			hOff = fc.Width(line)
		default: // JustifyCenter
			hOff = fc.Width(line) / 2
		}

		placements = append(placements, Placement{
			Text: line,
			X:    x - hOff,
			Y:    y + vOff,
		})
	}
	return placements
}
