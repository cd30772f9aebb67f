package lexicon

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	_ "modernc.org/sqlite"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads a word list out of a SQLite database. The table needs a
// text column named word; pass an empty table name for the default
// "words". The same normalization applies as for text files.
func LoadSQLite(path, table string) (*Lexicon, error) {
	if table == "" {
		table = "words"
	}
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("bad table name %q", table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon db: %w", err)
	}
	defer rows.Close()

	var raw []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		raw = append(raw, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("lexicon db has no words")
	}
	return &Lexicon{name: filepath.Base(path), words: Normalize(raw)}, nil
}
