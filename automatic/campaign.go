// Package automatic runs batch fill campaigns: generate random grids,
// solve every one of them against a lexicon, and collect statistics. It is
// data collection tooling; an individual solve behaves exactly as it does
// anywhere else.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/crossfill/lexicon"
	"github.com/domino14/crossfill/solver"
	"github.com/domino14/crossfill/xword"
)

var (
	PuzzleCounter *expvar.Int
	IsFilling     *expvar.Int
)

func init() {
	PuzzleCounter = expvar.NewInt("puzzleCounter")
	IsFilling = expvar.NewInt("isFilling")
}

// Options configures a campaign.
type Options struct {
	Width   int
	Height  int
	Blocks  int           // blocked cells per generated grid
	Count   int           // how many puzzles to run
	Threads int           // concurrent solvers, 1 if zero
	Seed    uint64        // campaign seed, random if zero
	Timeout time.Duration // per-puzzle cutoff, none if zero
	LogFile string        // optional per-puzzle CSV log
}

func (o *Options) validate() error {
	if o.Width < 2 || o.Height < 2 {
		return errors.New("grid dimensions must be at least 2x2")
	}
	if o.Count < 1 {
		return errors.New("campaign needs at least one puzzle")
	}
	if o.Blocks < 0 || o.Blocks >= o.Width*o.Height {
		return errors.New("bad number of blocked cells")
	}
	if o.Threads < 1 {
		o.Threads = 1
	}
	if o.Seed == 0 {
		o.Seed = frand.Uint64n(math.MaxUint64)
	}
	return nil
}

type job struct {
	n  int
	xw *xword.Crossword
}

type outcome struct {
	fingerprint uint64
	slots       int
	solved      bool
	timedOut    bool
	nodes       uint64
	backtracks  uint64
	elapsed     time.Duration
}

// RunCampaign generates opts.Count random grids and solves each one
// against the lexicon on opts.Threads workers. Every puzzle gets its own
// solver; workers share nothing but the read-only word list. On
// cancellation the stats collected so far come back along with the error.
func RunCampaign(ctx context.Context, lex *lexicon.Lexicon, opts Options) (*CampaignStats, error) {
	if IsFilling.Value() > 0 {
		return nil, errors.New("a campaign is already running, wait for it to finish")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log.Info().
		Int("count", opts.Count).
		Int("threads", opts.Threads).
		Uint64("seed", opts.Seed).
		Msgf("starting campaign on %dx%d grids", opts.Width, opts.Height)

	var logChan chan string
	writerDone := make(chan struct{})
	if opts.LogFile != "" {
		logfile, err := os.Create(opts.LogFile)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		go func() {
			logfile.WriteString("fingerprint,slots,solved,nodes,backtracks,ms\n")
			for msg := range logChan {
				logfile.WriteString(msg)
			}
			logfile.Close()
			close(writerDone)
		}()
	}

	jobs := make(chan job, 100)
	outcomes := make(chan outcome, 100)
	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < opts.Threads; t++ {
		g.Go(func() error {
			IsFilling.Add(1)
			defer IsFilling.Add(-1)
			for jb := range jobs {
				oc, err := solveOne(gctx, jb, opts.Timeout)
				if err != nil {
					return err
				}
				outcomes <- oc
				if logChan != nil {
					logChan <- fmt.Sprintf("%x,%d,%t,%d,%d,%.2f\n",
						oc.fingerprint, oc.slots, oc.solved, oc.nodes,
						oc.backtracks, oc.elapsed.Seconds()*1000)
				}
				PuzzleCounter.Add(1)
			}
			return nil
		})
	}

	// The feeder generates grids on its own; generation is cheap compared
	// to solving, so a single goroutine keeps the workers fed.
	go func() {
		defer close(jobs)
		seen := make(map[uint64]bool, opts.Count)
		for i := 0; i < opts.Count; i++ {
			xw := generatePuzzle(opts, i, lex.Words(), seen)
			if xw == nil {
				log.Debug().Int("puzzle", i).Msg("no-fresh-grid")
				continue
			}
			select {
			case jobs <- job{n: i, xw: xw}:
			case <-gctx.Done():
				log.Info().Msg("stop signal, not queueing more puzzles")
				return
			}
			if (i+1)%100 == 0 {
				log.Debug().Msgf("queued %v puzzles", i+1)
			}
		}
	}()

	stats := &CampaignStats{}
	collectDone := make(chan struct{})
	go func() {
		for oc := range outcomes {
			stats.add(oc)
		}
		close(collectDone)
	}()

	err := g.Wait()
	close(outcomes)
	<-collectDone
	if logChan != nil {
		close(logChan)
		<-writerDone
	}
	log.Info().
		Int("puzzles", stats.Puzzles).
		Int("solved", stats.Solved).
		Int("unsolved", stats.Unsolved).
		Int("timed-out", stats.TimedOut).
		Msg("campaign-finished")
	return stats, err
}

// solveOne fills a single generated puzzle. A timeout only marks this
// puzzle's outcome; an error means the whole campaign should stop.
func solveOne(ctx context.Context, jb job, timeout time.Duration) (outcome, error) {
	sctx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		sctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	s := solver.New(jb.xw)
	start := time.Now()
	_, err := s.Solve(sctx)
	oc := outcome{
		fingerprint: jb.xw.Fingerprint(),
		slots:       len(jb.xw.Slots()),
		nodes:       s.Nodes(),
		backtracks:  s.Backtracks(),
		elapsed:     time.Since(start),
	}
	switch {
	case err == nil:
		oc.solved = true
	case errors.Is(err, solver.ErrNoSolution):
	case ctx.Err() != nil:
		return oc, ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		oc.timedOut = true
	default:
		return oc, err
	}
	return oc, nil
}
