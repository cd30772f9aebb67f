// Package lexicon loads the word lists that crossword domains are seeded
// from. Lists are normalized on the way in: upper-cased, deduplicated,
// restricted to the letters A through Z, and sorted. The solver depends on
// domains starting out as ordered sets.
package lexicon

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lexicon is a normalized word list.
type Lexicon struct {
	name  string
	words []string
}

type options struct {
	latin1    bool
	maxLength int
}

type Option func(*options)

// Latin1 decodes the file as ISO 8859-1 instead of UTF-8. Several of the
// older published word lists still ship in that encoding.
func Latin1() Option {
	return func(o *options) { o.latin1 = true }
}

// MaxLength drops words longer than n letters at load time. The limit
// applies to the normalized word, so CAFÉ counts four letters, not five
// bytes.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// Load reads a plain-text word list, one word per line. Blank lines and
// lines starting with '#' are skipped.
func Load(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lex, err := Read(f, opts...)
	if err != nil {
		return nil, err
	}
	lex.name = filepath.Base(path)
	return lex, nil
}

// Read is Load for an arbitrary reader.
func Read(r io.Reader, opts ...Option) (*Lexicon, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	scanner := bufio.NewScanner(r)
	var raw []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	words := Normalize(raw)
	if o.maxLength > 0 {
		// Normalized words are plain A-Z, so the byte length is the
		// letter count.
		kept := words[:0]
		for _, w := range words {
			if len(w) <= o.maxLength {
				kept = append(kept, w)
			}
		}
		words = kept
	}
	lex := &Lexicon{words: words}
	log.Debug().Int("words", len(lex.words)).Msg("loaded-lexicon")
	return lex, nil
}

// deaccent decomposes accented letters and strips the combining marks, the
// usual crossword convention (CAFÉ is entered as CAFE).
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize upper-cases, strips accents, deduplicates and sorts a raw word
// list. Words still containing anything besides the letters A through Z
// after that are dropped; the grid model has no cells for them.
func Normalize(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	words := make([]string, 0, len(raw))
	dropped := 0
	for _, w := range raw {
		if folded, _, err := transform.String(deaccent, w); err == nil {
			w = folded
		}
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		if !alphabetic(w) {
			dropped++
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("skipped-non-alphabetic-words")
	}
	sort.Strings(words)
	return words
}

func alphabetic(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Words returns the normalized list. The caller must not modify it.
func (l *Lexicon) Words() []string {
	return l.words
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Name is the base name of the file the lexicon came from, if it came
// from one.
func (l *Lexicon) Name() string {
	return l.name
}

// Has reports whether the lexicon contains the word, which must already be
// in normalized form.
func (l *Lexicon) Has(word string) bool {
	i := sort.SearchStrings(l.words, word)
	return i < len(l.words) && l.words[i] == word
}
