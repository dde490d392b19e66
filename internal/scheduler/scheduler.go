package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/charism-app/charism-events/internal/domain"
)

type eventArchiver interface {
	DisablePast(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically disables events whose date has gone by so they
// drop out of non-admin queries.
type Scheduler struct {
	events   eventArchiver
	interval time.Duration
	logger   logger.Logger
}

func New(
	events eventArchiver,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		events:   events,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	disabled, err := s.events.DisablePast(ctx)
	if err != nil {
		s.logger.Error("failed to disable past events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range disabled {
		s.logger.Info("event disabled",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
