package watermark

import "unicode/utf8"

// Field is an editable text value bound to a Session. It applies the
// visible-navigation rules to key events and re-marks its value on blur and
// after a multi-character selection is replaced, never on plain keystrokes
// so that an in-progress composition is not disturbed.
//
// Field is not safe for concurrent use; it belongs to one UI event loop.
type Field struct {
	session *Session
	value   string
	sel     Selection
	dirty   bool
}

// NewField returns a field holding the marked form of value with the caret
// at the end. A nil session gives a plain field that never marks.
func NewField(session *Session, value string) *Field {
	f := &Field{session: session, value: value, sel: Caret(len(value)), dirty: true}
	f.remark()
	return f
}

// Value returns the raw value including markers.
func (f *Field) Value() string { return f.value }

// Visible returns the value with all markers removed.
func (f *Field) Visible() string { return Clean(f.value) }

// Selection returns the current selection as byte offsets into Value.
func (f *Field) Selection() Selection { return f.sel }

// VisibleSelection returns the selection counted in visible codepoints.
func (f *Field) VisibleSelection() Selection {
	return Selection{Start: visibleOffset(f.value, f.sel.Start), End: visibleOffset(f.value, f.sel.End)}
}

// Dirty reports whether the value changed since it was last marked.
func (f *Field) Dirty() bool { return f.dirty }

// SetValue replaces the whole value, as an input event would. The caret
// moves to the end.
func (f *Field) SetValue(value string) {
	f.value = value
	f.sel = Caret(len(value))
	f.dirty = true
}

// Select sets the selection. Offsets are clamped and moved back to the start
// of the codepoint they fall into. Selecting more than one character re-marks
// the value first, so the replacement that usually follows keeps its markers.
func (f *Field) Select(start, end int) {
	start, end = f.snap(start), f.snap(end)
	if start > end {
		start, end = end, start
	}
	f.sel = Selection{Start: start, End: end}
	if !f.sel.Collapsed() {
		f.remark()
	}
}

// Move handles the left and right arrow keys, with extend for shift.
func (f *Field) Move(dir Direction, extend bool) {
	f.sel = MoveSelection(f.value, f.sel, dir, extend)
}

// Delete handles backspace (Left) and delete (Right).
func (f *Field) Delete(dir Direction) {
	sel := DeletionRange(f.value, f.sel, dir)
	if sel.Collapsed() {
		return
	}
	f.replace(sel, "")
}

// Insert replaces the selection with s.
func (f *Field) Insert(s string) {
	replacedRange := !f.sel.Collapsed()
	f.replace(f.sel, s)
	if replacedRange {
		f.remark()
	}
}

// Blur re-marks the value if it changed since the last marking.
func (f *Field) Blur() {
	f.remark()
}

func (f *Field) replace(sel Selection, s string) {
	f.value = f.value[:sel.Start] + s + f.value[sel.End:]
	f.sel = Caret(sel.Start + len(s))
	f.dirty = true
}

func (f *Field) remark() {
	if !f.dirty {
		return
	}
	if f.session == nil {
		f.dirty = false
		return
	}
	vis := f.VisibleSelection()
	collapsed := f.sel.Collapsed()
	f.value = f.session.Mark(f.value)

	start, end := positionOfVisible(f.value, vis.Start), positionOfVisible(f.value, vis.End)
	if !collapsed {
		// A range touching a text boundary keeps the runs there.
		if vis.Start == 0 {
			start = 0
		}
		if vis.End == visibleOffset(f.value, len(f.value)) {
			end = len(f.value)
		}
	}
	f.sel = Selection{Start: start, End: end}
	f.dirty = false
}

func (f *Field) snap(pos int) int {
	pos = clamp(pos, 0, len(f.value))
	for pos > 0 && pos < len(f.value) && !utf8.RuneStart(f.value[pos]) {
		pos--
	}
	return pos
}
