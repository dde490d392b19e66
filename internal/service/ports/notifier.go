package ports

import (
	"context"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/registration"
)

type RegistrationNotifier interface {
	NotifyBatchProcessed(ctx context.Context, event *domain.Event, outcomes []registration.Outcome)
}
