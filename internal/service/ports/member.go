package ports

import (
	"context"

	"github.com/charism-app/charism-events/internal/domain"
)

type MemberStore interface {
	// Resolve returns the members it could find keyed by user id; ids with
	// no backing record are simply absent from the map.
	Resolve(ctx context.Context, userIDs []string) (map[string]*domain.Member, error)
}
