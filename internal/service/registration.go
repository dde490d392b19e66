package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/charism-app/charism-events/internal/registration"
	"github.com/charism-app/charism-events/internal/service/ports"
)

type RegistrationService struct {
	store    ports.EventStore
	notifier ports.RegistrationNotifier
	logger   logger.Logger
}

func NewRegistrationService(
	store ports.EventStore,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Register applies the whole request list to one event and persists the
// result with a single save. Concurrent calls against the same event race
// on that save (last writer wins); there is no optimistic locking here.
// Capacity is not checked: callers wanting a hard cap consult the event's
// stats first.
func (s *RegistrationService) Register(ctx context.Context, eventID string, requests []registration.Request) ([]registration.Outcome, error) {
	event, err := s.store.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	outcomes := registration.ApplyRegistrations(event, requests)

	if err = s.store.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event %s: %w", eventID, err)
	}

	var succeeded, duplicates, failed int
	for _, o := range outcomes {
		switch o.Status {
		case registration.ResultSuccess:
			succeeded++
		case registration.ResultAlreadyRegistered:
			duplicates++
		case registration.ResultError:
			failed++
		}
	}

	s.logger.Info("registration batch processed",
		logger.String("event_id", eventID),
		logger.Int("requested", len(requests)),
		logger.Int("registered", succeeded),
		logger.Int("duplicates", duplicates),
		logger.Int("failed", failed),
	)

	if len(outcomes) > 0 {
		go s.notifier.NotifyBatchProcessed(context.WithoutCancel(ctx), event, outcomes)
	}

	return outcomes, nil
}
