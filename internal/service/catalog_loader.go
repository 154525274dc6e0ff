package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
)

// LoaderDeps carries what LoadCatalog needs to reach each kind of source.
type LoaderDeps struct {
	HTTPClient *http.Client
	// Timeout bounds remote fetches. Zero means no bound beyond ctx.
	Timeout  time.Duration
	Observer UseCaseObserver
}

// LoadCatalog loads the catalog once from src: an http(s) URL, a SQLite
// store ("sqlite:PATH" or *.db), or a JSON file. Every failure is a
// *catalog.LoadError.
func LoadCatalog(ctx context.Context, src string, deps LoaderDeps) (cat *catalog.Catalog, err error) {
	obs := useCaseObserverOrNoop([]UseCaseObserver{deps.Observer})
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": src}
	defer func() {
		if cat != nil {
			fields["course_count"] = cat.Len()
		}
		observe(ctx, obs, "load-catalog", startedAt, err, fields)
	}()

	switch {
	case isRemote(src):
		fields["kind"] = "http"
		if deps.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deps.Timeout)
			defer cancel()
		}
		return catalog.LoadURL(ctx, deps.HTTPClient, src)
	default:
		if path, ok := db.StorePath(src); ok {
			fields["kind"] = "sqlite"
			return loadStore(ctx, src, path)
		}
		fields["kind"] = "file"
		return catalog.LoadFile(src)
	}
}

func isRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func loadStore(ctx context.Context, src, path string) (*catalog.Catalog, error) {
	fail := func(err error) (*catalog.Catalog, error) {
		return nil, &catalog.LoadError{Source: src, Errs: []error{err}}
	}

	// OpenDB would create a missing store.
	if _, err := os.Stat(path); err != nil {
		return fail(fmt.Errorf("opening catalog store: %w", err))
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return fail(err)
	}
	defer database.Close()

	var courses []domain.Course
	err = db.NewSQLiteUnitOfWork(database).WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		courses, err = repository.NewSQLiteCourseRepo(tx).List(ctx)
		return err
	})
	if err != nil {
		return fail(err)
	}
	if len(courses) == 0 {
		return fail(errors.New("catalog store is empty; run \"courseplan catalog import\" first"))
	}

	cat, err := catalog.New(courses)
	if err != nil {
		var le *catalog.LoadError
		if errors.As(err, &le) {
			le.Source = src
		}
		return nil, err
	}
	return cat, nil
}
