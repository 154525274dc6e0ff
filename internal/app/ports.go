package app

import (
	"context"
	"io"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
)

// PlannerUseCase drives one in-memory planning session.
type PlannerUseCase interface {
	SetConcentration(ctx context.Context, raw string) (domain.Concentration, error)
	Assign(ctx context.Context, req AssignRequest) (*AssignResponse, error)
	AutoAssign(ctx context.Context, courseNumber string) (*AssignResponse, error)
	Clear(ctx context.Context)
	IsAssigned(courseNumber string) bool
	View() ScheduleView
	Offered(courseNumber string) ([]domain.Designation, error)
}

// CatalogUseCase answers catalog queries and maintains catalog files.
type CatalogUseCase interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	Search(ctx context.Context, q catalog.Query) ([]domain.Course, error)
	Lookup(ctx context.Context, courseNumber string) (*domain.Course, error)
	Tags(ctx context.Context) ([]catalog.TagCount, error)
	Index(ctx context.Context, csvPath, outPath string) (*IndexResult, error)
	Import(ctx context.Context, jsonPath string) (*ImportResult, error)
	Export(ctx context.Context, w io.Writer) (int, error)
}
