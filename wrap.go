package textimg

import (
	"context"
	"log/slog"
	"strings"
)

// minWidthProbe is the two-character string whose measured width is the
// smallest wrap budget the engine accepts. Two em-ish characters must fit
// on every line or hyphenation cannot make progress.
const minWidthProbe = "mm"

// MinWrapWidth returns the minimum wrap width, in pixels, that WrapAt can
// be configured with for the given font context. Callers can use it to
// clamp a requested budget before drawing.
func MinWrapWidth(fc *FontContext) int {
	return fc.Width(minWidthProbe)
}

// splitLines splits text on explicit line breaks, normalizing \r\n and \r
// to \n, and trims surrounding whitespace from each line. Empty lines are
// kept so blank-line spacing survives.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// WrapText splits text into physical lines none of which measures wider
// than maxWidth. Explicit line breaks are respected; each logical line is
// wrapped independently and the results concatenated in order.
//
// Wrapping is word-greedy: words are joined by single spaces until the
// next word would overflow the budget. A word too wide for a line of its
// own is consumed rune by rune and broken with a trailing hyphen. A rune
// wider than the whole budget still gets its own line (runes are atomic).
// An empty or all-whitespace logical line yields a single empty physical
// line.
//
// Returns a *MinWidthError without wrapping anything if maxWidth is below
// MinWrapWidth(fc).
func WrapText(text string, fc *FontContext, maxWidth int) ([]string, error) {
	if min := MinWrapWidth(fc); maxWidth < min {
		return nil, &MinWidthError{Width: maxWidth, Min: min}
	}

	w := &wrapper{
		fc:       fc,
		maxWidth: maxWidth,
		log:      Logger(),
	}
	for _, line := range splitLines(text) {
		w.wrapLine(line)
	}

	if w.log.Enabled(context.Background(), slog.LevelDebug) {
		w.log.Debug("wrapped text into physical lines",
			"maxWidth", maxWidth, "lines", w.out)
	}
	return w.out, nil
}

// wrapState is the state of the wrap buffer.
type wrapState uint8

const (
	// stateEmpty: the buffer holds no text; the next word starts a line.
	stateEmpty wrapState = iota
	// stateAccumulating: the buffer holds a partial line.
	stateAccumulating
)

// wrapper accumulates physical lines for one wrap run. It is a small
// state machine over {stateEmpty, stateAccumulating}; emitting a finished
// line is a transition action, which keeps the algorithm testable without
// any canvas involved.
type wrapper struct {
	fc       *FontContext
	maxWidth int
	log      *slog.Logger

	state wrapState
	buf   strings.Builder
	out   []string
}

// wrapLine wraps one logical line, appending its physical lines to out.
// The buffer never carries over between logical lines.
func (w *wrapper) wrapLine(line string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		// Preserve blank-line spacing.
		w.out = append(w.out, "")
		return
	}

	for _, word := range words {
		w.pushWord(word)
	}
	if w.state == stateAccumulating {
		w.flush()
	}
}

// pushWord feeds the next word into the state machine.
func (w *wrapper) pushWord(word string) {
	// Candidate line if the word were appended. An empty buffer measures
	// the bare word so no phantom leading space is counted.
	candidate := word
	if w.state == stateAccumulating {
		candidate = w.buf.String() + " " + word
	}

	width := w.fc.Width(candidate)
	fits := width <= w.maxWidth
	w.log.Debug("wrap decision",
		"word", word, "candidate", candidate, "width", width,
		"maxWidth", w.maxWidth, "fits", fits)

	if fits {
		w.append(word)
		return
	}

	if w.state == stateAccumulating {
		// Emit the partial line and retry the word on a fresh buffer.
		w.flush()
		if w.fc.Width(word) <= w.maxWidth {
			w.append(word)
			return
		}
	}

	// The word alone overflows the budget: break it with hyphens.
	w.hyphenate(word)
}

// append adds a word to the buffer, joined by a single space unless the
// buffer is empty.
func (w *wrapper) append(word string) {
	if w.state == stateAccumulating {
		w.buf.WriteByte(' ')
	}
	w.buf.WriteString(word)
	w.state = stateAccumulating
}

// hyphenate consumes an overlong word rune by rune. Whenever the buffer
// plus a trailing hyphen would no longer fit, the buffer is emitted with
// the hyphen and the current rune starts a new buffer. The final runes
// stay in the buffer so a following word can share the line.
//
// A single rune wider than the whole budget is left on its own line
// unbroken; runes are atomic.
func (w *wrapper) hyphenate(word string) {
	for _, r := range word {
		if w.fc.Width(w.buf.String()+"-") <= w.maxWidth {
			w.buf.WriteRune(r)
			w.state = stateAccumulating
			continue
		}
		line := w.buf.String() + "-"
		w.out = append(w.out, line)
		w.log.Debug("hyphen break", "line", line)
		w.buf.Reset()
		w.buf.WriteRune(r)
	}
}

// flush emits the buffer as a physical line and resets to stateEmpty.
func (w *wrapper) flush() {
	w.out = append(w.out, w.buf.String())
	w.buf.Reset()
	w.state = stateEmpty
}
