package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		number   TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_courses_position ON courses(position)`,

	`CREATE TABLE IF NOT EXISTS course_tags (
		course_number TEXT NOT NULL REFERENCES courses(number) ON DELETE CASCADE,
		tag           TEXT NOT NULL CHECK(tag <> ''),
		position      INTEGER NOT NULL,
		PRIMARY KEY (course_number, tag)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_course_tags_tag ON course_tags(tag)`,

	// Add notes to courses
	`ALTER TABLE courses ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS catalog_meta (
		id          TEXT PRIMARY KEY CHECK(id = 'default'),
		source      TEXT NOT NULL DEFAULT '',
		imported_at TEXT
	)`,

	`INSERT OR IGNORE INTO catalog_meta (id) VALUES ('default')`,
}
