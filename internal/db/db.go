// Package db opens the SQLite catalog store and manages its schema and
// transactions.
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SourcePrefix marks a catalog source as a SQLite store regardless of its
// file extension.
const SourcePrefix = "sqlite:"

// StorePath reports whether src names a SQLite catalog store and returns the
// database path. Sources with the "sqlite:" prefix or a ".db" extension
// qualify.
func StorePath(src string) (string, bool) {
	if rest, ok := strings.CutPrefix(src, SourcePrefix); ok {
		return rest, rest != ""
	}
	if strings.EqualFold(filepath.Ext(src), ".db") {
		return src, true
	}
	return "", false
}

// connPragmas run on every pooled connection, not only the first one;
// course_tags relies on foreign keys to follow its course.
var connPragmas = []string{"foreign_keys(1)", "journal_mode(WAL)", "busy_timeout(5000)"}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
