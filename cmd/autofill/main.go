package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/automatic"
	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/lexicon"
)

func main() {
	width := flag.Int("width", 5, "grid width")
	height := flag.Int("height", 5, "grid height")
	blocks := flag.Int("blocks", 4, "blocked cells per grid")
	count := flag.Int("count", 100, "number of puzzles to fill")
	threads := flag.Int("threads", runtime.NumCPU(), "concurrent solvers")
	seed := flag.Uint64("seed", 0, "campaign seed; 0 picks one at random")
	words := flag.String("words", "", "path to the word list")
	latin1 := flag.Bool("latin1", false, "the word list is ISO 8859-1 encoded")
	timeout := flag.Duration("timeout", 15*time.Second, "per-puzzle cutoff; 0 means none")
	logfile := flag.String("logfile", "", "write per-puzzle results here as csv")
	debug := flag.Bool("debug", false, "debug logging on")
	flag.Parse()

	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		panic(err)
	}
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *debug || cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	path := *words
	if path == "" {
		path = filepath.Join(cfg.GetString(config.ConfigDataPath),
			cfg.GetString(config.ConfigDefaultLexicon))
	}
	var opts []lexicon.Option
	if *latin1 {
		opts = append(opts, lexicon.Latin1())
	}
	lex, err := lexicon.Cached(path, opts...)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("could not load the word list")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal, finishing the puzzles in flight...")
		cancel()
	}()

	stats, err := automatic.RunCampaign(ctx, lex, automatic.Options{
		Width:   *width,
		Height:  *height,
		Blocks:  *blocks,
		Count:   *count,
		Threads: *threads,
		Seed:    *seed,
		Timeout: *timeout,
		LogFile: *logfile,
	})
	if err != nil && stats == nil {
		log.Fatal().Err(err).Msg("campaign failed")
	}
	if err != nil {
		log.Err(err).Msg("campaign stopped early")
	}
	if stats.Puzzles > 0 {
		if err := stats.Histogram(os.Stdout); err != nil {
			log.Err(err).Msg("could not plot the histogram")
		}
	}
	fmt.Print(stats.Summary())
}
