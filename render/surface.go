package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the cell grid the renderer draws into, satisfied by tcell.Screen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// put writes one cell, clipping to the surface
func put(s Surface, x, y int, r rune, style tcell.Style) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, style)
}

// fill paints a rectangle with r
func fill(s Surface, x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			put(s, col, row, r, style)
		}
	}
}

// text prints str from (x,y), newlines restart at x on the next row
// Returns the column after the last rune of the final line
func text(s Surface, x, y int, str string, style tcell.Style) int {
	col := x
	for _, r := range str {
		if r == '\n' {
			y++
			col = x
			continue
		}
		put(s, col, y, r, style)
		col += max(1, runewidth.RuneWidth(r))
	}
	return col
}

// textWidth returns the widest line of str in cells
func textWidth(str string) int {
	w := 0
	for _, line := range strings.Split(str, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// centered prints each line of str centered on column cx
func centered(s Surface, cx, y int, str string, style tcell.Style) {
	for i, line := range strings.Split(str, "\n") {
		text(s, cx-runewidth.StringWidth(line)/2, y+i, line, style)
	}
}
