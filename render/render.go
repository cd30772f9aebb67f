// Package render draws completed fills. The solver guarantees that any
// assignment it hands back is complete and consistent, so nothing in here
// re-validates; it only projects words onto the grid and formats the
// result.
package render

import (
	"fmt"
	"strings"

	"github.com/domino14/crossfill/solver"
	"github.com/domino14/crossfill/xword"
)

// Letters projects an assignment onto a height by width rune grid. Cells
// not covered by any assigned word, blocked cells included, hold the zero
// rune.
func Letters(xw *xword.Crossword, a solver.Assignment) [][]rune {
	letters := make([][]rune, xw.Height())
	for i := range letters {
		letters[i] = make([]rune, xw.Width())
	}
	for slot, word := range a {
		for k, ch := range word {
			r, c := slot.Cell(k)
			letters[r][c] = ch
		}
	}
	return letters
}

// Text renders the filled grid for a terminal: blocked cells as full
// blocks, open unfilled cells as spaces, with row numbers and column
// letters around the border.
func Text(xw *xword.Crossword, a solver.Assignment) string {
	letters := Letters(xw, a)
	var str string
	row := "   "
	for j := 0; j < xw.Width(); j++ {
		row = row + fmt.Sprintf("%c", 'A'+j) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", xw.Width()*2) + "\n"
	for i := 0; i < xw.Height(); i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < xw.Width(); j++ {
			switch {
			case !xw.Open(i, j):
				row = row + "█ "
			case letters[i][j] != 0:
				row = row + string(letters[i][j]) + " "
			default:
				row = row + "  "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", xw.Width()*2) + "\n"
	return "\n" + str
}
