package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) ReplaceAll(ctx context.Context, courses []domain.Course) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM course_tags`); err != nil {
		return fmt.Errorf("clearing course tags: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	for i, c := range courses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO courses (number, name, notes, position) VALUES (?, ?, ?, ?)`,
			c.Number, c.Name, c.Notes, i,
		)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", c.Number, err)
		}
		for j, t := range c.Tags {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO course_tags (course_number, tag, position) VALUES (?, ?, ?)`,
				c.Number, string(domain.NormalizeTag(string(t))), j,
			)
			if err != nil {
				return fmt.Errorf("inserting tag %s for course %s: %w", t, c.Number, err)
			}
		}
	}
	return nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT c.number, c.name, c.notes, t.tag
		FROM courses c
		LEFT JOIN course_tags t ON t.course_number = c.number
		ORDER BY c.position, t.position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) GetByNumber(ctx context.Context, number string) (*domain.Course, error) {
	query := `SELECT c.number, c.name, c.notes, t.tag
		FROM courses c
		LEFT JOIN course_tags t ON t.course_number = c.number
		WHERE c.number = ?
		ORDER BY t.position`
	rows, err := r.db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, fmt.Errorf("getting course %s: %w", number, err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("course %s: %w", number, ErrNotFound)
	}
	return &courses[0], nil
}

func (r *SQLiteCourseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

// scanCourses folds joined course/tag rows into courses. Rows must arrive
// grouped by course.
func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	var courses []domain.Course
	for rows.Next() {
		var (
			number, name, notes string
			tag                 sql.NullString
		)
		if err := rows.Scan(&number, &name, &notes, &tag); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		if n := len(courses); n == 0 || courses[n-1].Number != number {
			courses = append(courses, domain.Course{
				Number: number,
				Name:   name,
				Tags:   []domain.Tag{},
				Notes:  notes,
			})
		}
		if tag.Valid {
			last := &courses[len(courses)-1]
			last.Tags = append(last.Tags, domain.Tag(tag.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

// SQLiteCatalogMetaRepo implements CatalogMetaRepo using a SQLite database.
type SQLiteCatalogMetaRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogMetaRepo creates a new SQLiteCatalogMetaRepo.
func NewSQLiteCatalogMetaRepo(conn db.DBTX) *SQLiteCatalogMetaRepo {
	return &SQLiteCatalogMetaRepo{db: conn}
}

func (r *SQLiteCatalogMetaRepo) Get(ctx context.Context) (*CatalogMeta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT source, imported_at FROM catalog_meta WHERE id = 'default'`)

	var (
		m          CatalogMeta
		importedAt sql.NullString
	)
	if err := row.Scan(&m.Source, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog meta: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning catalog meta: %w", err)
	}
	m.ImportedAt = parseNullableTime(importedAt, timeLayout)
	return &m, nil
}

func (r *SQLiteCatalogMetaRepo) Upsert(ctx context.Context, m *CatalogMeta) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO catalog_meta (id, source, imported_at) VALUES ('default', ?, ?)`,
		m.Source, nullableTimeToString(m.ImportedAt, timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting catalog meta: %w", err)
	}
	return nil
}
