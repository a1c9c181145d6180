package watermark

import "unicode/utf8"

// Direction is the direction of a caret movement.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Selection is a byte range [Start, End) of a field value. A collapsed
// selection is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// NextVisiblePosition scans text from the byte offset from in direction dir
// and returns the offset of the first visible codepoint it meets.
//
// Continuation bytes of multi-byte codepoints and marker codepoints are
// skipped. When the scan runs off either end the result is clamped to 0 or
// len(text).
func NextVisiblePosition(text string, from int, dir Direction) int {
	step := 1
	if dir == Left {
		step = -1
	}

	i := clamp(from, 0, len(text)) + step
	for ; i > 0 && i < len(text); i += step {
		if !utf8.RuneStart(text[i]) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(text[i:])
		if IsMarker(r) {
			continue
		}
		return i
	}

	return clamp(i, 0, len(text))
}

// MoveSelection applies an arrow key to sel. With extend set the selection
// grows on the side of dir, otherwise it collapses to the new caret.
func MoveSelection(text string, sel Selection, dir Direction, extend bool) Selection {
	from := sel.End
	if dir == Left {
		from = sel.Start
	}
	next := NextVisiblePosition(text, from, dir)

	switch {
	case extend && dir == Left:
		return Selection{Start: next, End: sel.End}
	case extend:
		return Selection{Start: sel.Start, End: next}
	default:
		return Caret(next)
	}
}

// DeletionRange returns the range a backspace (Left) or delete (Right) key
// removes. A caret is first extended by one visible position so that the
// markers around the deleted character go with it.
func DeletionRange(text string, sel Selection, dir Direction) Selection {
	if !sel.Collapsed() {
		return sel
	}
	return MoveSelection(text, sel, dir, true)
}

// visibleOffset counts the visible codepoints in text[:pos].
func visibleOffset(text string, pos int) int {
	n := 0
	for _, r := range text[:clamp(pos, 0, len(text))] {
		if !IsMarker(r) {
			n++
		}
	}
	return n
}

// positionOfVisible returns the byte offset of the visible codepoint that
// follows n visible codepoints, or len(text) when there is none.
func positionOfVisible(text string, n int) int {
	seen := 0
	for i, r := range text {
		if IsMarker(r) {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return len(text)
}

func clamp(v, low, high int) int {
	return max(low, min(v, high))
}
