package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
)

// CatalogLoader produces the session catalog. It is called at most once.
type CatalogLoader func(ctx context.Context) (*catalog.Catalog, error)

type catalogService struct {
	load     CatalogLoader
	uow      db.UnitOfWork
	observer UseCaseObserver

	mu     sync.Mutex
	cached *catalog.Catalog
}

// NewCatalogService builds a catalog service. load supplies the catalog for
// queries; uow is the store written by Import.
func NewCatalogService(load CatalogLoader, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		load:     load,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Catalog loads the catalog on first use. A failed load is not cached.
func (s *catalogService) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = cat
	return cat, nil
}

func (s *catalogService) Search(ctx context.Context, q catalog.Query) (courses []domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"tags":  len(q.Tags),
		"query": q.Text,
	}
	defer func() {
		fields["result_count"] = len(courses)
		observe(ctx, s.observer, "search-courses", startedAt, err, fields)
	}()

	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Collect(cat.Search(q)), nil
}

func (s *catalogService) Lookup(ctx context.Context, courseNumber string) (*domain.Course, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	course, ok := cat.Lookup(courseNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseNumber)
	}
	return &course, nil
}

func (s *catalogService) Tags(ctx context.Context) ([]catalog.TagCount, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Schema().TagCounts(), nil
}

func (s *catalogService) Index(ctx context.Context, csvPath, outPath string) (res *app.IndexResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"input": csvPath, "output": outPath}
	defer func() {
		if res != nil {
			fields["course_count"] = res.Courses
		}
		observe(ctx, s.observer, "index-catalog", startedAt, err, fields)
	}()

	in, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening course list: %w", err)
	}
	defer in.Close()

	schema, err := catalog.IndexCSV(in)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := catalog.WriteSchema(out, schema); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outPath, err)
	}

	return &app.IndexResult{
		Input:   csvPath,
		Output:  outPath,
		Courses: len(schema.Courses),
		Tags:    schema.TagCounts(),
	}, nil
}

func (s *catalogService) Import(ctx context.Context, jsonPath string) (res *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": jsonPath}
	defer func() {
		if res != nil {
			fields["course_count"] = res.Courses
		}
		observe(ctx, s.observer, "import-catalog", startedAt, err, fields)
	}()

	cat, err := catalog.LoadFile(jsonPath)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCourseRepo(tx).ReplaceAll(ctx, cat.All()); err != nil {
			return err
		}
		meta := &repository.CatalogMeta{Source: jsonPath, ImportedAt: &now}
		return repository.NewSQLiteCatalogMetaRepo(tx).Upsert(ctx, meta)
	})
	if err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}
	return &app.ImportResult{Source: jsonPath, Courses: cat.Len()}, nil
}

func (s *catalogService) Export(ctx context.Context, w io.Writer) (int, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	if err := catalog.ExportCSV(w, cat.All()); err != nil {
		return 0, err
	}
	return cat.Len(), nil
}
