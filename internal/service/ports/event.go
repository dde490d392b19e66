package ports

import (
	"context"
	"time"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/query"
)

type EventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Save rewrites the event together with its whole attendance list in
	// one transaction.
	Save(ctx context.Context, e *domain.Event) error
	Find(ctx context.Context, q query.SearchQuery) ([]*domain.Event, error)
	DisablePast(ctx context.Context, before time.Time) ([]*domain.Event, error)
}
