package lexicon

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// A process-wide cache of loaded lexica, keyed by path. Big word lists run
// to hundreds of thousands of entries and several commands want the same
// one; they should only ever be read and normalized once.
type cache struct {
	sync.Mutex
	lexica map[string]*Lexicon
}

var globalCache = &cache{lexica: map[string]*Lexicon{}}

// Cached returns the lexicon at path, loading it on first use. Later calls
// with the same path return the same object; options only apply to the
// call that actually loads.
func Cached(path string, opts ...Option) (*Lexicon, error) {
	globalCache.Lock()
	defer globalCache.Unlock()
	if lex, ok := globalCache.lexica[path]; ok {
		log.Debug().Str("path", path).Msg("lexicon-cache-hit")
		return lex, nil
	}
	log.Debug().Str("path", path).Msg("loading-into-cache")
	lex, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	globalCache.lexica[path] = lex
	return lex, nil
}
