package watermark

import "unicode/utf8"

const (
	zeroWidthFirst rune = 0x2060
	zeroWidthLast  rune = 0x2064

	tagFirst rune = 0xE0000
	tagLast  rune = 0xE007F
)

// IsZeroWidthMarker reports whether r belongs to the zero-width channel.
func IsZeroWidthMarker(r rune) bool {
	return zeroWidthFirst <= r && r <= zeroWidthLast
}

// IsTagMarker reports whether r belongs to the tag channel.
func IsTagMarker(r rune) bool {
	return tagFirst <= r && r <= tagLast
}

// IsMarker reports whether r belongs to either channel.
func IsMarker(r rune) bool {
	return IsZeroWidthMarker(r) || IsTagMarker(r)
}

// IsZeroWidthMarkerString is IsZeroWidthMarker applied to the first codepoint
// of s. An empty string is never a marker.
func IsZeroWidthMarkerString(s string) bool {
	return IsZeroWidthMarker(firstRune(s))
}

// IsTagMarkerString is IsTagMarker applied to the first codepoint of s.
func IsTagMarkerString(s string) bool {
	return IsTagMarker(firstRune(s))
}

func firstRune(s string) rune {
	if s == "" {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
