package watermark

import (
	"strings"
	"unicode/utf8"
)

type expectation int

const (
	expectZeroWidth expectation = iota
	expectTag
	expectOther
)

// Mark returns text with the zero-width run in front of the first codepoint
// and of every space, the tag run after every space, and the tag run at the
// end.
//
// Runs already in place are left alone, so marking is idempotent and a
// partially damaged text only gets the missing runs back. Empty text gets
// only the tag run, as it has no first codepoint to put a zero-width run in
// front of; marking that result once more adds the zero-width run.
func Mark(text, zeroWidthRun, tagRun string) string {
	var b strings.Builder
	b.Grow(len(text) + (strings.Count(text, " ")+1)*(len(zeroWidthRun)+len(tagRun)))

	// last is the last codepoint written to b, not the last one read.
	last := rune(-1)
	emit := func(run string) {
		if run == "" {
			return
		}
		b.WriteString(run)
		last, _ = utf8.DecodeLastRuneInString(run)
	}

	state := expectZeroWidth
	for _, r := range text {
		switch state {
		case expectZeroWidth:
			if !IsZeroWidthMarker(r) {
				emit(zeroWidthRun)
			}
		case expectTag:
			if !IsTagMarker(r) {
				emit(tagRun)
			}
		}
		state = expectOther

		if r == ' ' {
			if !IsZeroWidthMarker(last) {
				emit(zeroWidthRun)
			}
			state = expectTag
		}

		b.WriteRune(r)
		last = r
	}

	if !IsTagMarker(last) {
		emit(tagRun)
	}

	return b.String()
}

// Clean removes every marker codepoint of both channels from text.
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if IsMarker(r) {
			return -1
		}
		return r
	}, text)
}
