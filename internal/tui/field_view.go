// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
)

// renderField draws the visible text of f. Markers never reach the screen.
// A focused field shows its caret or selection.
func renderField(f *watermark.Field, focused bool) string {
	text := []rune(f.Visible())
	if !focused {
		if len(text) == 0 {
			return helpStyle.Render("(no answer)")
		}
		return string(text)
	}

	sel := f.VisibleSelection()
	start := min(max(sel.Start, 0), len(text))
	end := min(max(sel.End, start), len(text))

	var b strings.Builder
	b.WriteString(string(text[:start]))

	if start == end {
		caret := " "
		rest := text[start:]
		if len(rest) > 0 && rest[0] != '\n' {
			caret = string(rest[0])
			rest = rest[1:]
		}
		b.WriteString(caretStyle.Render(caret))
		b.WriteString(string(rest))
		return b.String()
	}

	b.WriteString(selectionStyle.Render(string(text[start:end])))
	b.WriteString(string(text[end:]))
	return b.String()
}
