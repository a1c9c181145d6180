// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	questionStyle    = lipgloss.NewStyle().Bold(true)
	fieldStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	focusedStyle     = fieldStyle.BorderForeground(lipgloss.Color("63"))
	selectionStyle   = lipgloss.NewStyle().Reverse(true)
	caretStyle       = lipgloss.NewStyle().Underline(true)
)

// patternCellWidth is the number of terminal columns of one matrix cell.
// Terminal cells are about twice as tall as wide.
const patternCellWidth = 2

// patternStyles paints the dot matrix cells in the palette colors.
type patternStyles map[watermark.Cell]lipgloss.Style

func newPatternStyles(p models.Palette) patternStyles {
	return patternStyles{
		watermark.CellBackground: lipgloss.NewStyle().Background(lipgloss.Color(p.Background)),
		watermark.CellStart:      lipgloss.NewStyle().Background(lipgloss.Color(p.Start)),
		watermark.CellBit:        lipgloss.NewStyle().Background(lipgloss.Color(p.Bit)),
	}
}

// renderPattern tiles the dot matrix horizontally until it fills width
// columns. A zero width renders one tile.
func renderPattern(m watermark.DotMatrix, styles patternStyles, width int) string {
	tileWidth := watermark.DotMatrixSize * patternCellWidth
	tiles := 1
	if width > tileWidth {
		tiles = width / tileWidth
	}

	cell := strings.Repeat(" ", patternCellWidth)
	lines := make([]string, 0, watermark.DotMatrixSize)
	for row := range watermark.DotMatrixSize {
		var b strings.Builder
		for range tiles {
			for col := range watermark.DotMatrixSize {
				b.WriteString(styles[m[row][col]].Render(cell))
			}
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}
