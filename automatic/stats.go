package automatic

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
)

// Aggregate accumulates a running mean and variance with Welford's
// algorithm, along with the extremes. The zero value is ready to use.
type Aggregate struct {
	n    int
	oldM float64
	newM float64
	oldS float64
	newS float64
	min  float64
	max  float64
}

func (a *Aggregate) Push(val float64) {
	a.n++
	if a.n == 1 {
		a.oldM = val
		a.newM = val
		a.oldS = 0
		a.min = val
		a.max = val
		return
	}
	a.newM = a.oldM + (val-a.oldM)/float64(a.n)
	a.newS = a.oldS + (val-a.oldM)*(val-a.newM)
	a.oldM = a.newM
	a.oldS = a.newS
	if val < a.min {
		a.min = val
	}
	if val > a.max {
		a.max = val
	}
}

func (a *Aggregate) N() int {
	return a.n
}

func (a *Aggregate) Mean() float64 {
	if a.n > 0 {
		return a.newM
	}
	return 0.0
}

func (a *Aggregate) Variance() float64 {
	if a.n <= 1 {
		return 0.0
	}
	return a.newS / float64(a.n-1)
}

func (a *Aggregate) Stdev() float64 {
	return math.Sqrt(a.Variance())
}

func (a *Aggregate) Min() float64 {
	return a.min
}

func (a *Aggregate) Max() float64 {
	return a.max
}

// CampaignStats is what a campaign hands back: outcome counts and
// aggregates over the individual solves.
type CampaignStats struct {
	Puzzles  int
	Solved   int
	Unsolved int
	TimedOut int

	SolveMS Aggregate
	Nodes   Aggregate

	durations []float64
}

func (cs *CampaignStats) add(oc outcome) {
	cs.Puzzles++
	switch {
	case oc.solved:
		cs.Solved++
	case oc.timedOut:
		cs.TimedOut++
	default:
		cs.Unsolved++
	}
	ms := oc.elapsed.Seconds() * 1000
	cs.SolveMS.Push(ms)
	cs.Nodes.Push(float64(oc.nodes))
	cs.durations = append(cs.durations, ms)
}

// Histogram writes a text histogram of the per-puzzle solve times, in
// milliseconds.
func (cs *CampaignStats) Histogram(w io.Writer) error {
	if len(cs.durations) == 0 {
		return errors.New("no puzzles to plot")
	}
	hist := histogram.Hist(15, cs.durations)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func (cs *CampaignStats) Summary() string {
	var s string
	s = fmt.Sprintf("puzzles: %d (solved %d, unsolved %d, timed out %d)\n",
		cs.Puzzles, cs.Solved, cs.Unsolved, cs.TimedOut)
	s += fmt.Sprintf("solve ms: mean %.2f stdev %.2f min %.2f max %.2f\n",
		cs.SolveMS.Mean(), cs.SolveMS.Stdev(), cs.SolveMS.Min(), cs.SolveMS.Max())
	s += fmt.Sprintf("nodes: mean %.1f max %.0f\n",
		cs.Nodes.Mean(), cs.Nodes.Max())
	return s
}
