package watermark

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-exam-watermark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDotMatrix_Deterministic(t *testing.T) {
	token := Token("1234abcd5678ef90")

	first := RenderDotMatrix(token)
	second := RenderDotMatrix(token)

	assert.Equal(t, first, second)
	assert.Equal(t, first.SVG(DefaultPalette), second.SVG(DefaultPalette))
}

func TestRenderDotMatrix_Frame(t *testing.T) {
	m := RenderDotMatrix("ffffffffffffffff")

	assert.Equal(t, CellBackground, m[0][0])
	assert.Equal(t, CellStart, m[1][0])
	for i := 1; i < DotMatrixSize; i++ {
		assert.Equal(t, CellBackground, m[0][i], "top row cell %d", i)
		if i != 1 {
			assert.Equal(t, CellBackground, m[i][0], "left column cell %d", i)
		}
	}
	for _, b := range m.Bits() {
		assert.Equal(t, byte(1), b)
	}
}

func TestRenderDotMatrix_BitOrder(t *testing.T) {
	m := RenderDotMatrix("8")
	bits := m.Bits()

	require.Len(t, bits, 64)
	assert.Equal(t, byte(1), bits[0])
	assert.Equal(t, CellBit, m[1][1])
	for i, b := range bits[1:] {
		assert.Zero(t, b, "bit %d", i+1)
	}

	// 0x1 sets the last bit of the first nibble, 0xa is 1010.
	bits = RenderDotMatrix("1a").Bits()
	assert.Equal(t, []byte{0, 0, 0, 1, 1, 0, 1, 0}, bits[:8])
	// The ninth bit starts the second row.
	m = RenderDotMatrix("00f")
	assert.Equal(t, CellBit, m[2][1])
	assert.Equal(t, CellBackground, m[1][8])
}

func TestRenderDotMatrix_ZeroPadding(t *testing.T) {
	short := RenderDotMatrix("ab")
	padded := RenderDotMatrix("ab00000000000000")

	assert.Equal(t, padded, short)
}

func TestRenderDotMatrix_SensitiveToEveryDigit(t *testing.T) {
	const base = "0123456789abcdef"
	reference := RenderDotMatrix(base)

	for i := range len(base) {
		changed := []byte(base)
		v, _ := hexValue(changed[i])
		changed[i] = hexDigits[v^1]

		assert.NotEqual(t, reference, RenderDotMatrix(Token(changed)), "digit %d", i)
	}

	// Digits past the 64-bit window are not rendered.
	assert.Equal(t, reference, RenderDotMatrix(base+"7"))
}

func TestDotMatrix_SVG(t *testing.T) {
	m := RenderDotMatrix("f000000000000001")
	svg := m.SVG(DefaultPalette)

	assert.True(t, strings.HasPrefix(svg, `<svg version="1.1" viewBox="0 0 90 90"`))
	assert.True(t, strings.HasSuffix(svg, `</svg>`))
	assert.Contains(t, svg, `<rect x="0" y="0" width="90" height="90" fill="#e7f3f5"/>`)
	assert.Contains(t, svg, `<rect x="1" y="10" width="1" height="1" fill="#e0ebed"/>`)
	assert.Contains(t, svg, `<rect x="10" y="10" width="1" height="1" fill="#eefbfd"/>`)
	assert.Contains(t, svg, `<rect x="40" y="10" width="1" height="1" fill="#eefbfd"/>`)
	assert.Contains(t, svg, `<rect x="80" y="80" width="1" height="1" fill="#eefbfd"/>`)
	assert.NotContains(t, svg, `<rect x="50" y="10"`)

	// background + anchor + five set bits
	assert.Equal(t, 7, strings.Count(svg, "<rect"))
}

func TestDotMatrix_SVG_CustomPalette(t *testing.T) {
	svg := RenderDotMatrix("1").SVG(models.Palette{Background: "#000000", Start: "#ff0000", Bit: "#00ff00"})

	assert.Contains(t, svg, `fill="#000000"`)
	assert.Contains(t, svg, `fill="#ff0000"`)
	assert.Contains(t, svg, `fill="#00ff00"`)
	assert.NotContains(t, svg, DefaultPalette.Bit)
}

func TestDotMatrix_DataURI(t *testing.T) {
	m := RenderDotMatrix("1234abcd5678ef90")
	uri := m.DataURI(DefaultPalette)

	encoded, ok := strings.CutPrefix(uri, "data:image/svg+xml;base64,")
	require.True(t, ok)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, m.SVG(DefaultPalette), string(decoded))
}

func TestDotMatrix_BackgroundCSS(t *testing.T) {
	m := RenderDotMatrix("1234abcd5678ef90")
	css := m.BackgroundCSS(".que .formulation", DefaultPalette)

	assert.True(t, strings.HasPrefix(css, ".que .formulation {"))
	assert.Contains(t, css, "background-repeat: repeat;")
	assert.Contains(t, css, "background-size: 90px 90px;")
	assert.Contains(t, css, "url("+m.DataURI(DefaultPalette)+")")
}
