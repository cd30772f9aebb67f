// Package solver fills crossword puzzles by treating them as constraint
// satisfaction problems: a node consistency pass first, then AC-3 arc
// consistency, then backtracking search guided by the usual variable and
// value ordering heuristics. The first complete, consistent assignment
// wins; there is no search for further solutions.
package solver

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/crossfill/xword"
)

var ErrNoSolution = errors.New("no assignment satisfies the puzzle")

// Assignment maps slots to the words chosen for them. Solve returns a
// complete, consistent one, or ErrNoSolution.
type Assignment map[xword.Slot]string

// Solver owns the candidate domains for one puzzle. It is not safe for
// concurrent use; a solve runs on a single goroutine from start to finish.
type Solver struct {
	xw      *xword.Crossword
	domains map[xword.Slot][]string

	nodes      uint64
	backtracks uint64
}

// New creates a solver for the given crossword. Every slot's domain starts
// out as its own copy of the puzzle's word list, so pruning one slot never
// touches another.
func New(xw *xword.Crossword) *Solver {
	s := &Solver{
		xw:      xw,
		domains: make(map[xword.Slot][]string, len(xw.Slots())),
	}
	words := xw.Words()
	for _, x := range xw.Slots() {
		dom := make([]string, len(words))
		copy(dom, words)
		s.domains[x] = dom
	}
	return s
}

// Solve enforces node and arc consistency and then searches for a complete
// assignment. A puzzle with no slots solves to an empty assignment. When
// the search exhausts every candidate it returns ErrNoSolution; a
// cancelled context returns the context's error instead.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	tstart := time.Now()
	s.nodes = 0
	s.backtracks = 0
	log.Debug().
		Int("slots", len(s.xw.Slots())).
		Int("words", len(s.xw.Words())).
		Msg("solve-config")

	s.enforceNodeConsistency()
	// An emptied domain here means the search below fails on its own;
	// a puzzle with no slots at all must still succeed.
	if !s.ac3(nil) {
		log.Debug().Msg("ac3-emptied-a-domain")
	}
	log.Debug().
		Int("candidates-left", lo.SumBy(s.xw.Slots(), func(x xword.Slot) int {
			return len(s.domains[x])
		})).
		Msg("propagation-done")

	a := Assignment{}
	solved, err := s.backtrack(ctx, a)
	log.Info().
		Bool("solved", solved).
		Uint64("nodes", s.nodes).
		Uint64("backtracks", s.backtracks).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	if err != nil {
		return nil, err
	}
	if !solved {
		return nil, ErrNoSolution
	}
	return a, nil
}

// enforceNodeConsistency drops every candidate whose length does not match
// its slot. Afterwards any word left in a domain fits its slot exactly,
// which the rest of the solver relies on when it indexes crossing letters.
func (s *Solver) enforceNodeConsistency() {
	for _, x := range s.xw.Slots() {
		kept := s.domains[x][:0]
		for _, w := range s.domains[x] {
			if len(w) == x.Length {
				kept = append(kept, w)
			}
		}
		s.domains[x] = kept
	}
}

// revise makes x arc consistent with y: it drops every candidate of x with
// no possible partner in the domain of y. The identical word does not
// count as a partner; it could never be played in both slots. Reports
// whether anything was dropped.
func (s *Solver) revise(x, y xword.Slot) bool {
	ov, ok := s.xw.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	kept := s.domains[x][:0]
	for _, w := range s.domains[x] {
		found := false
		for _, u := range s.domains[y] {
			if w != u && w[ov.XIdx] == u[ov.YIdx] {
				found = true
				break
			}
		}
		if found {
			kept = append(kept, w)
		} else {
			revised = true
		}
	}
	s.domains[x] = kept
	return revised
}

type arc struct {
	x, y xword.Slot
}

// ac3 runs the AC-3 worklist algorithm. With a nil argument it seeds the
// queue with every constrained ordered pair; callers can also hand it
// specific arcs. Returns false as soon as a domain is emptied, which means
// no complete assignment can exist.
func (s *Solver) ac3(initial []arc) bool {
	queue := initial
	if queue == nil {
		for _, x := range s.xw.Slots() {
			for _, y := range s.xw.Neighbors(x) {
				queue = append(queue, arc{x, y})
			}
		}
	}
	revisions := 0
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !s.revise(next.x, next.y) {
			continue
		}
		revisions++
		if len(s.domains[next.x]) == 0 {
			log.Debug().Msgf("domain emptied for %v", next.x)
			return false
		}
		// Everything that constrains x needs another look, except the
		// arc we just used.
		for _, z := range s.xw.Neighbors(next.x) {
			if z != next.y {
				queue = append(queue, arc{z, next.x})
			}
		}
	}
	log.Debug().Int("revisions", revisions).Msg("ac3-done")
	return true
}

// assignmentComplete reports whether every slot has a word.
func (s *Solver) assignmentComplete(a Assignment) bool {
	return len(a) == len(s.xw.Slots())
}

// consistent reports whether the partial assignment holds up: every word
// fits its slot, crossing words agree on their shared cell, and no word
// appears twice anywhere in the puzzle.
func (s *Solver) consistent(a Assignment) bool {
	used := make(map[string]bool, len(a))
	for x, w := range a {
		if len(w) != x.Length {
			return false
		}
		if used[w] {
			return false
		}
		used[w] = true
		for _, y := range s.xw.Neighbors(x) {
			u, bound := a[y]
			if !bound {
				continue
			}
			ov, _ := s.xw.Overlap(x, y)
			if w[ov.XIdx] != u[ov.YIdx] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedSlot picks the next slot to fill: fewest remaining
// candidates first, most neighbors on a tie, canonical slot order on a
// double tie. At least one slot must be unassigned.
func (s *Solver) selectUnassignedSlot(a Assignment) xword.Slot {
	var best xword.Slot
	found := false
	for _, x := range s.xw.Slots() {
		if _, bound := a[x]; bound {
			continue
		}
		if !found {
			best = x
			found = true
			continue
		}
		dx, dbest := len(s.domains[x]), len(s.domains[best])
		if dx < dbest {
			best = x
		} else if dx == dbest && len(s.xw.Neighbors(x)) > len(s.xw.Neighbors(best)) {
			best = x
		}
	}
	return best
}

// orderDomainValues returns the candidates for x, least constraining
// first: ascending by how many candidates they would rule out across the
// unassigned neighbors of x. A neighbor's candidate is ruled out when it
// is the same word or when it disagrees on the crossing letter. Ties keep
// the domain order.
func (s *Solver) orderDomainValues(x xword.Slot, a Assignment) []string {
	type scoredWord struct {
		word string
		out  int
	}
	scored := make([]scoredWord, 0, len(s.domains[x]))
	for _, w := range s.domains[x] {
		out := 0
		for _, y := range s.xw.Neighbors(x) {
			if _, bound := a[y]; bound {
				continue
			}
			ov, _ := s.xw.Overlap(x, y)
			if len(w) <= ov.XIdx {
				// Too short to reach the crossing; rules nothing out.
				continue
			}
			for _, u := range s.domains[y] {
				if u == w || w[ov.XIdx] != u[ov.YIdx] {
					out++
				}
			}
		}
		scored = append(scored, scoredWord{word: w, out: out})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].out < scored[j].out })
	return lo.Map(scored, func(sw scoredWord, _ int) string { return sw.word })
}

// backtrack searches depth first, binding one word at a time. Every
// binding that does not pan out is removed again before returning, on the
// error path included, so the assignment a caller passed in is never left
// half-written.
func (s *Solver) backtrack(ctx context.Context, a Assignment) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.nodes++
	if s.assignmentComplete(a) {
		return true, nil
	}
	x := s.selectUnassignedSlot(a)
	for _, w := range s.orderDomainValues(x, a) {
		a[x] = w
		if s.consistent(a) {
			solved, err := s.backtrack(ctx, a)
			if err != nil {
				delete(a, x)
				return false, err
			}
			if solved {
				return true, nil
			}
		}
		delete(a, x)
		s.backtracks++
	}
	return false, nil
}

// Nodes returns how many search nodes the last Solve visited.
func (s *Solver) Nodes() uint64 { return s.nodes }

// Backtracks returns how many bindings the last Solve undid.
func (s *Solver) Backtracks() uint64 { return s.backtracks }
