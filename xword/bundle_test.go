package xword

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestParseBundleInlineWords(t *testing.T) {
	is := is.New(t)
	data := []byte(`grid:
  - "___"
  - "##_"
  - "##_"
words:
  - cat
  - dog
  - tan
`)
	xw, err := ParseBundle(data, ".")
	is.NoErr(err)
	is.Equal(len(xw.Slots()), 2)
	// Inline words go through the usual normalization.
	is.Equal(xw.Words(), []string{"CAT", "DOG", "TAN"})
}

func TestParseBundleLexiconPath(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("dog\ncat\n"), 0644)
	is.NoErr(err)
	data := []byte(`grid:
  - "__"
lexicon: words.txt
`)
	xw, err := ParseBundle(data, dir)
	is.NoErr(err)
	is.Equal(xw.Words(), []string{"CAT", "DOG"})
}

func TestLoadBundle(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("ab\nba\n"), 0644)
	is.NoErr(err)
	// The lexicon path resolves relative to the bundle's own directory.
	err = os.WriteFile(filepath.Join(dir, "puzzle.yaml"),
		[]byte("grid:\n  - \"__\"\nlexicon: words.txt\n"), 0644)
	is.NoErr(err)

	xw, err := LoadBundle(filepath.Join(dir, "puzzle.yaml"))
	is.NoErr(err)
	is.Equal(xw.Words(), []string{"AB", "BA"})
	is.Equal(len(xw.Slots()), 1)
}

func TestParseBundleErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no grid", "words:\n  - cat\n"},
		{"no words or lexicon", "grid:\n  - \"__\"\n"},
		{"both words and lexicon", "grid:\n  - \"__\"\nwords:\n  - cat\nlexicon: w.txt\n"},
		{"bad yaml", "grid: [\n"},
		{"blocked grid", "grid:\n  - \"##\"\nwords:\n  - cat\n"},
	}
	for _, c := range cases {
		if _, err := ParseBundle([]byte(c.data), "."); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
