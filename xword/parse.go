package xword

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Grid is the open/blocked cell pattern of a puzzle, before any slots are
// derived from it. In the text form an underscore marks an open cell and
// every other character blocks its cell.
type Grid struct {
	width  int
	height int
	open   [][]bool
}

// NewGrid builds a grid straight from rows of open flags. Ragged rows are
// padded with blocked cells. The batch runner uses this to skip the text
// round trip.
func NewGrid(open [][]bool) (*Grid, error) {
	height := len(open)
	width := 0
	for _, row := range open {
		if len(row) > width {
			width = len(row)
		}
	}
	if height == 0 || width == 0 {
		return nil, errors.New("grid has no cells")
	}
	g := &Grid{width: width, height: height, open: make([][]bool, height)}
	for i, row := range open {
		g.open[i] = make([]bool, width)
		copy(g.open[i], row)
	}
	return g, nil
}

// ParseStructure reads the text form of a grid. Lines may be ragged; short
// lines are padded with blocked cells. A blank line inside the grid is a
// fully blocked row.
func ParseStructure(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]rune
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	open := make([][]bool, len(lines))
	for i, line := range lines {
		open[i] = make([]bool, len(line))
		for j, ch := range line {
			open[i][j] = ch == '_'
		}
	}
	g, err := NewGrid(open)
	if err != nil {
		return nil, errors.New("structure is empty")
	}
	return g, nil
}

// LoadStructure reads a structure file from disk.
func LoadStructure(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStructure(f)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Open reports whether the cell at row, col is open. Out of range cells
// count as blocked.
func (g *Grid) Open(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.open[row][col]
}

// Text renders the grid back into its canonical text form, underscores for
// open cells and '#' for blocked ones. Fingerprints hash this form.
func (g *Grid) Text() string {
	var sb strings.Builder
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if g.open[i][j] {
				sb.WriteByte('_')
			} else {
				sb.WriteByte('#')
			}
		}
		if i != g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
