// Package xword contains the crossword puzzle model: the grid of open and
// blocked cells, the answer slots derived from it, and the overlap relation
// between crossing slots. Everything in here is computed once at
// construction time; the solver only ever reads it.
package xword

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash"
)

// Direction is the orientation of a slot on the grid.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Slot identifies a single answer slot: where it starts, which way it runs,
// and how many cells it covers. It is a plain value type and is used
// directly as a map key; two slots are identical iff all four fields match.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %v len=%d)", s.Row, s.Col, s.Dir, s.Length)
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Across {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}

// Less is the canonical slot order: row, then column, then direction, then
// length. All slot iteration in this module uses it, which keeps solver
// runs reproducible.
func (s Slot) Less(o Slot) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	if s.Col != o.Col {
		return s.Col < o.Col
	}
	if s.Dir != o.Dir {
		return s.Dir < o.Dir
	}
	return s.Length < o.Length
}

// Overlap is where two crossing slots share a cell: the word for the first
// slot must agree with the word for the second at these in-word indices.
type Overlap struct {
	XIdx int
	YIdx int
}

type slotPair struct {
	x, y Slot
}

// Crossword is a fully ingested puzzle: the grid, the slots, the pairwise
// overlaps, the neighbor sets, and the word list the domains get seeded
// from. It is immutable after New.
type Crossword struct {
	grid      *Grid
	slots     []Slot
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
	words     []string
	fprint    uint64
}

// New derives the slots, overlaps and neighbor sets from the grid. Slots
// are maximal runs of at least two open cells; a single open cell belongs
// only to whatever crossing run covers it. The word list is stored as
// given; the caller should hand over a normalized list (see the lexicon
// package) and not modify it afterwards.
func New(g *Grid, words []string) (*Crossword, error) {
	if g == nil || g.width == 0 || g.height == 0 {
		return nil, errors.New("cannot build a crossword from an empty grid")
	}
	openCells := 0
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if g.open[i][j] {
				openCells++
			}
		}
	}
	if openCells == 0 {
		return nil, errors.New("grid has no open cells")
	}
	c := &Crossword{
		grid:      g,
		overlaps:  map[slotPair]Overlap{},
		neighbors: map[Slot][]Slot{},
		words:     words,
		fprint:    xxhash.Sum64String(g.Text()),
	}

	c.slots = deriveSlots(g)
	sort.Slice(c.slots, func(i, j int) bool { return c.slots[i].Less(c.slots[j]) })

	// Index every covered cell by direction. Two parallel slots can never
	// share a cell (runs are maximal), so one across and one down entry
	// per cell is enough.
	type cover struct {
		slot Slot
		idx  int
	}
	across := map[[2]int]cover{}
	down := map[[2]int]cover{}
	for _, s := range c.slots {
		for k := 0; k < s.Length; k++ {
			r, cl := s.Cell(k)
			if r < 0 || r >= g.height || cl < 0 || cl >= g.width || !g.open[r][cl] {
				return nil, fmt.Errorf("slot %v extends outside the open grid", s)
			}
			if s.Dir == Across {
				across[[2]int{r, cl}] = cover{s, k}
			} else {
				down[[2]int{r, cl}] = cover{s, k}
			}
		}
	}
	for cell, a := range across {
		d, ok := down[cell]
		if !ok {
			continue
		}
		c.overlaps[slotPair{a.slot, d.slot}] = Overlap{XIdx: a.idx, YIdx: d.idx}
		c.overlaps[slotPair{d.slot, a.slot}] = Overlap{XIdx: d.idx, YIdx: a.idx}
	}

	for _, s := range c.slots {
		var ns []Slot
		for _, o := range c.slots {
			if o == s {
				continue
			}
			if _, ok := c.overlaps[slotPair{s, o}]; ok {
				ns = append(ns, o)
			}
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i].Less(ns[j]) })
		c.neighbors[s] = ns
	}
	return c, nil
}

// deriveSlots scans for maximal horizontal and vertical runs of open cells.
// A run starts at an open cell whose predecessor is blocked or off-grid.
func deriveSlots(g *Grid) []Slot {
	var slots []Slot
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.open[i][j] {
				continue
			}
			if j == 0 || !g.open[i][j-1] {
				length := 1
				for k := j + 1; k < g.width && g.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
			if i == 0 || !g.open[i-1][j] {
				length := 1
				for k := i + 1; k < g.height && g.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
		}
	}
	return slots
}

func (c *Crossword) Width() int  { return c.grid.width }
func (c *Crossword) Height() int { return c.grid.height }

// Open reports whether the cell at row, col is an open (fillable) cell.
func (c *Crossword) Open(row, col int) bool {
	return c.grid.Open(row, col)
}

// Slots returns every slot in the canonical order. The caller must not
// modify the returned slice.
func (c *Crossword) Slots() []Slot {
	return c.slots
}

// Overlap returns the in-word indices at which x and y share a cell, if
// they do. It is symmetric with the indices swapped.
func (c *Crossword) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := c.overlaps[slotPair{x, y}]
	return ov, ok
}

// Neighbors returns the slots that share a cell with x, in the canonical
// order. The caller must not modify the returned slice.
func (c *Crossword) Neighbors(x Slot) []Slot {
	return c.neighbors[x]
}

// Words returns the word list the puzzle was built with.
func (c *Crossword) Words() []string {
	return c.words
}

// Fingerprint is a hash of the structure text, independent of the word
// list. The batch runner uses it to dedupe generated grids.
func (c *Crossword) Fingerprint() uint64 {
	return c.fprint
}
