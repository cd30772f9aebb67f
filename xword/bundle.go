package xword

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/crossfill/lexicon"
)

// bundle is the YAML form of a self-contained puzzle: the grid lines plus
// either an inline word list or a path to one.
type bundle struct {
	Grid    []string `yaml:"grid"`
	Words   []string `yaml:"words"`
	Lexicon string   `yaml:"lexicon"`
}

// ParseBundle reads a YAML puzzle bundle. A lexicon path inside the bundle
// is resolved relative to dir, which should be the directory the bundle
// came from.
func ParseBundle(data []byte, dir string) (*Crossword, error) {
	var b bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}
	if len(b.Grid) == 0 {
		return nil, errors.New("bundle has no grid")
	}
	g, err := ParseStructure(strings.NewReader(strings.Join(b.Grid, "\n")))
	if err != nil {
		return nil, fmt.Errorf("bundle grid: %w", err)
	}

	var words []string
	switch {
	case len(b.Words) > 0 && b.Lexicon != "":
		return nil, errors.New("bundle has both inline words and a lexicon path")
	case len(b.Words) > 0:
		words = lexicon.Normalize(b.Words)
	case b.Lexicon != "":
		path := b.Lexicon
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		lex, err := lexicon.Load(path)
		if err != nil {
			return nil, fmt.Errorf("bundle lexicon: %w", err)
		}
		words = lex.Words()
	default:
		return nil, errors.New("bundle has neither words nor a lexicon path")
	}
	return New(g, words)
}

// LoadBundle reads a puzzle bundle from disk.
func LoadBundle(path string) (*Crossword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBundle(data, filepath.Dir(path))
}
