package watermark

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// DotMatrixSize is the side length of the pattern grid in cells.
const DotMatrixSize = 9

// cellPitch is the SVG size of one grid cell.
const cellPitch = 10

// Anchor cell painted with the start color. It sits left of the first row of
// bits so a cropped screenshot can be realigned.
const (
	anchorRow = 1
	anchorCol = 0
)

// Cell is the color class of one grid cell.
type Cell uint8

const (
	CellBackground Cell = iota
	CellStart
	CellBit
)

// DotMatrix is the token rendered as a 9×9 grid. Row 0 and column 0 are
// background except for the anchor; the remaining 8×8 block holds 64 bits.
type DotMatrix [DotMatrixSize][DotMatrixSize]Cell

// DefaultPalette is the pale blue palette of the pattern.
var DefaultPalette = models.Palette{
	Background: "#e7f3f5",
	Start:      "#e0ebed",
	Bit:        "#eefbfd",
}

// RenderDotMatrix renders token into a grid. Bits are taken from the token's
// hex digits, most significant bit first, in row-major order. Cells past the
// end of the token stay background, and digits past the 16th do not fit.
func RenderDotMatrix(token Token) DotMatrix {
	var m DotMatrix
	m[anchorRow][anchorCol] = CellStart

	bit := 0
	for row := 1; row < DotMatrixSize; row++ {
		for col := 1; col < DotMatrixSize; col++ {
			if tokenBit(token, bit) == 1 {
				m[row][col] = CellBit
			}
			bit++
		}
	}

	return m
}

// Bits returns the 64 bits carried by the grid in stream order.
func (m DotMatrix) Bits() []byte {
	bits := make([]byte, 0, (DotMatrixSize-1)*(DotMatrixSize-1))
	for row := 1; row < DotMatrixSize; row++ {
		for col := 1; col < DotMatrixSize; col++ {
			var b byte
			if m[row][col] == CellBit {
				b = 1
			}
			bits = append(bits, b)
		}
	}
	return bits
}

// SVG renders the grid as a 90×90 SVG tile. Every colored cell is a single
// pixel at the top-left corner of its 10×10 area, which keeps the pattern
// faint on screen but recoverable from a screenshot.
func (m DotMatrix) SVG(p models.Palette) string {
	size := DotMatrixSize * cellPitch

	var b strings.Builder
	fmt.Fprintf(&b, `<svg version="1.1" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, size, size)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, size, size, p.Background)
	b.WriteByte('\n')
	// The anchor is offset by one pixel so it never coincides with a bit.
	fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`,
		anchorCol*cellPitch+1, anchorRow*cellPitch, p.Start)
	b.WriteByte('\n')

	for row := 1; row < DotMatrixSize; row++ {
		for col := 1; col < DotMatrixSize; col++ {
			if m[row][col] != CellBit {
				continue
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`,
				col*cellPitch, row*cellPitch, p.Bit)
		}
	}
	b.WriteString(`</svg>`)

	return b.String()
}

// DataURI returns the SVG tile as a base64 data URI.
func (m DotMatrix) DataURI(p models.Palette) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(m.SVG(p)))
}

// BackgroundCSS returns a style rule that tiles the pattern behind the
// elements matched by selector.
func (m DotMatrix) BackgroundCSS(selector string, p models.Palette) string {
	size := DotMatrixSize * cellPitch
	return fmt.Sprintf("%s {\n    background-repeat: repeat;\n    background-size: %dpx %dpx;\n    background-image: url(%s);\n}",
		selector, size, size, m.DataURI(p))
}

func tokenBit(token Token, i int) byte {
	digit := i / 4
	if digit >= len(token) {
		return 0
	}
	v, ok := hexValue(token[digit])
	if !ok {
		return 0
	}
	return (v >> (3 - i%4)) & 1
}
