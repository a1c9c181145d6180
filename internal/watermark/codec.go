package watermark

import (
	"strings"
	"unicode/utf8"
)

// Channel identifies one of the two invisible encodings sharing a text body.
type Channel int

const (
	// ZeroWidth encodes every hex digit as two 2-bit symbols and is placed
	// before spaces.
	ZeroWidth Channel = iota
	// Tag encodes every hex digit as one 4-bit symbol and is placed after
	// spaces.
	Tag
)

type channelLayout struct {
	name      string
	base      rune
	bits      int
	maxDigits int
	observer  rune
}

var channels = [...]channelLayout{
	ZeroWidth: {name: "zero-width", base: 0x2060, bits: 2, maxDigits: 8, observer: 0x2064},
	Tag:       {name: "tag", base: 0xE0061, bits: 4, maxDigits: 16, observer: 0xE007A},
}

func (c Channel) layout() channelLayout {
	if c == Tag {
		return channels[Tag]
	}
	return channels[ZeroWidth]
}

// String returns the channel name.
func (c Channel) String() string {
	return c.layout().name
}

// MaxDigits returns how many leading hex digits of a token the channel
// carries. Longer tokens are truncated.
func (c Channel) MaxDigits() int {
	return c.layout().maxDigits
}

// ObserverMarker returns the sentinel codepoint prepended to the channel run
// when the text belongs to an observer.
func (c Channel) ObserverMarker() rune {
	return c.layout().observer
}

// EncodeToken converts the first MaxDigits hex digits of token into marker
// codepoints of channel c.
func EncodeToken(token Token, c Channel) string {
	l := c.layout()
	digits := string(token)
	if len(digits) > l.maxDigits {
		digits = digits[:l.maxDigits]
	}

	var b strings.Builder
	b.Grow(len(digits) * 4 * (4 / l.bits))
	for i := 0; i < len(digits); i++ {
		d, ok := hexValue(digits[i])
		if !ok {
			continue
		}
		if l.bits == 4 {
			b.WriteRune(l.base + rune(d))
			continue
		}
		b.WriteRune(l.base + rune((d>>2)&3))
		b.WriteRune(l.base + rune(d&3))
	}
	return b.String()
}

// DecodeRun reconstructs the hex string carried by a run of channel c.
//
// Codepoints outside the channel's symbol range are ignored. A zero-width
// run of odd length loses its last codepoint. The result is never an error;
// callers filter short results as noise.
func DecodeRun(run string, c Channel) string {
	l := c.layout()
	maxSymbol := rune(1)<<l.bits - 1

	var b strings.Builder
	pending := rune(-1)
	for i := 0; i < len(run); {
		r, size := utf8.DecodeRuneInString(run[i:])
		i += size

		v := r - l.base
		if v < 0 || v > maxSymbol {
			continue
		}
		if l.bits == 4 {
			b.WriteByte(hexDigits[v])
			continue
		}
		if pending < 0 {
			pending = v
			continue
		}
		b.WriteByte(hexDigits[pending<<2|v])
		pending = -1
	}
	return b.String()
}
