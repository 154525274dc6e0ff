package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// CourseRepo stores the catalog's courses in their catalog order.
type CourseRepo interface {
	// ReplaceAll deletes every stored course and inserts courses in order.
	// Callers run it inside a unit of work so a failed import leaves the
	// previous catalog intact.
	ReplaceAll(ctx context.Context, courses []domain.Course) error
	List(ctx context.Context) ([]domain.Course, error)
	GetByNumber(ctx context.Context, number string) (*domain.Course, error)
	Count(ctx context.Context) (int, error)
}

// CatalogMeta records where the stored catalog came from.
type CatalogMeta struct {
	Source     string
	ImportedAt *time.Time
}

type CatalogMetaRepo interface {
	Get(ctx context.Context) (*CatalogMeta, error)
	Upsert(ctx context.Context, m *CatalogMeta) error
}
