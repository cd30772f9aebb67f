package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/lexicon"
	"github.com/domino14/crossfill/render"
	"github.com/domino14/crossfill/solver"
	"github.com/domino14/crossfill/xword"
)

func main() {
	structure := flag.String("structure", "", "path to the grid structure file")
	words := flag.String("words", "", "path to the word list")
	bundlePath := flag.String("bundle", "", "path to a yaml puzzle bundle, instead of -structure and -words")
	output := flag.String("output", "", "also save the filled grid as a png here")
	sqlitePath := flag.String("sqlite", "", "read the word list from this sqlite database instead of -words")
	latin1 := flag.Bool("latin1", false, "the word list is ISO 8859-1 encoded")
	timeout := flag.Duration("timeout", 0, "give up after this long; 0 means never")
	debug := flag.Bool("debug", false, "debug logging on")
	flag.Parse()

	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		panic(err)
	}
	// Data files are searched relative to the executable if the data path
	// is not absolute.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	out.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	out.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	out.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if *debug || cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Debug().Interface("settings", cfg.AllSettings()).Msg("loaded-config")

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	xw, err := ingest(cfg, *bundlePath, *structure, *words, *sqlitePath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read the puzzle")
	}

	cutoff := *timeout
	if cutoff == 0 {
		cutoff = cfg.GetDuration(config.ConfigSolveTimeout)
	}
	ctx := context.Background()
	if cutoff > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cutoff)
		defer cancel()
	}

	asg, err := solver.New(xw).Solve(ctx)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Println("No solution.")
		return
	case err != nil:
		log.Fatal().Err(err).Msg("solve failed")
	}
	fmt.Print(render.Text(xw, asg))

	if *output != "" {
		if err := render.SavePNG(xw, asg, *output); err != nil {
			log.Fatal().Err(err).Msg("could not save the image")
		}
		log.Info().Str("path", *output).Msg("image saved")
	}
}

// ingest builds the puzzle from whichever input flags were given: a yaml
// bundle, or a structure file plus a word list. With no word list flags
// the configured default lexicon is used.
func ingest(cfg *config.Config, bundlePath, structure, words, sqlitePath string, latin1 bool) (*xword.Crossword, error) {
	if bundlePath != "" {
		return xword.LoadBundle(bundlePath)
	}
	if structure == "" {
		return nil, errors.New("a -structure or -bundle file is required")
	}
	g, err := xword.LoadStructure(structure)
	if err != nil {
		return nil, err
	}
	var lex *lexicon.Lexicon
	switch {
	case sqlitePath != "":
		lex, err = lexicon.LoadSQLite(sqlitePath, "")
	case words != "":
		var opts []lexicon.Option
		if latin1 {
			opts = append(opts, lexicon.Latin1())
		}
		lex, err = lexicon.Cached(words, opts...)
	default:
		path := filepath.Join(cfg.GetString(config.ConfigDataPath),
			cfg.GetString(config.ConfigDefaultLexicon))
		log.Info().Str("path", path).Msg("no word list given, using the default")
		lex, err = lexicon.Cached(path)
	}
	if err != nil {
		return nil, err
	}
	return xword.New(g, lex.Words())
}
