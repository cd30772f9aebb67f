package automatic

import (
	"encoding/binary"
	"errors"

	"lukechampine.com/frand"

	"github.com/domino14/crossfill/xword"
)

// GenerateGrid builds a random open/blocked pattern with 180 degree
// rotational symmetry, the convention for published grids. Blocked cells
// go in mirror pairs; an unpaired final block can only go to the center
// cell, so on even-sided grids an odd budget stops one short. The same
// RNG state always produces the same grid.
func GenerateGrid(rng *frand.RNG, width, height, blocks int) (*xword.Grid, error) {
	if width < 2 || height < 2 {
		return nil, errors.New("grid dimensions must be at least 2x2")
	}
	if blocks >= width*height {
		return nil, errors.New("more blocked cells than cells")
	}
	open := make([][]bool, height)
	for i := range open {
		open[i] = make([]bool, width)
		for j := range open[i] {
			open[i][j] = true
		}
	}
	placed := 0
	for tries := 0; placed < blocks && tries < blocks*20; tries++ {
		if blocks-placed == 1 {
			if height%2 == 1 && width%2 == 1 && open[height/2][width/2] {
				open[height/2][width/2] = false
				placed++
			}
			break
		}
		cell := rng.Intn(width * height)
		r, c := cell/width, cell%width
		if !open[r][c] {
			continue
		}
		open[r][c] = false
		placed++
		rr, cc := height-1-r, width-1-c
		// The mirror of an open off-center cell is always open too; only
		// the center mirrors onto itself.
		if open[rr][cc] {
			open[rr][cc] = false
			placed++
		}
	}
	return xword.NewGrid(open)
}

// puzzleRNG derives a deterministic per-puzzle RNG from the campaign seed.
// Retries get their own stream so a rejected grid does not shift every
// grid after it.
func puzzleRNG(seed uint64, n, try int) *frand.RNG {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:], seed)
	binary.LittleEndian.PutUint64(b[8:], uint64(n))
	binary.LittleEndian.PutUint64(b[16:], uint64(try))
	return frand.NewCustom(b[:], 1024, 12)
}

// generatePuzzle makes a grid the campaign has not seen yet and pairs it
// with the word list. It gives up after a bounded number of tries, which
// can happen for tiny dimensions where few distinct grids exist.
func generatePuzzle(opts Options, n int, words []string, seen map[uint64]bool) *xword.Crossword {
	for try := 0; try < 25; try++ {
		g, err := GenerateGrid(puzzleRNG(opts.Seed, n, try), opts.Width, opts.Height, opts.Blocks)
		if err != nil {
			return nil
		}
		xw, err := xword.New(g, words)
		if err != nil || len(xw.Slots()) == 0 {
			continue
		}
		if seen[xw.Fingerprint()] {
			continue
		}
		seen[xw.Fingerprint()] = true
		return xw
	}
	return nil
}
