package cmd

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/KikaPereira03/cakesort/internal/board"
)

// kindColors maps layer kinds to terminal color names.
var kindColors = map[byte]string{
	'R': "red",
	'G': "green",
	'B': "blue",
	'Y': "yellow",
	'P': "purple",
	'O': "orange",
	'C': "cyan",
	'M': "pink",
}

// renderBoard returns the board one tube per line with color-coded layer
// tokens.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	for idx := range b.Geometry().Tubes() {
		t := b.Tube(idx)
		fmt.Fprintf(&sb, "%3d:", idx)
		for i := range t.Len() {
			l := t.Layer(i)
			sb.WriteByte(' ')
			sb.WriteString(ansi.FGColorName(kindColors[l.Kind]))
			sb.WriteString(l.String())
		}
		sb.WriteString(ansi.Clear)
		sb.WriteByte('\n')
	}
	return sb.String()
}
