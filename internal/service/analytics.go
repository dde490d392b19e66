package service

import (
	"context"
	"fmt"

	"github.com/charism-app/charism-events/internal/analytics"
	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/service/ports"
)

type AnalyticsService struct {
	events  ports.EventStore
	members ports.MemberStore
}

func NewAnalyticsService(events ports.EventStore, members ports.MemberStore) *AnalyticsService {
	return &AnalyticsService{events: events, members: members}
}

// EventAnalytics fetches the event, joins each attendance entry to its
// member record and hands the populated event to the aggregator. Entries
// whose member no longer exists stay unresolved and are skipped from the
// breakdowns.
func (s *AnalyticsService) EventAnalytics(ctx context.Context, eventID string) (*domain.EventAnalytics, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	userIDs := make([]string, 0, len(event.Attendance))
	for _, entry := range event.Attendance {
		userIDs = append(userIDs, entry.UserID)
	}

	if len(userIDs) > 0 {
		members, err := s.members.Resolve(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve members: %w", err)
		}
		for i := range event.Attendance {
			if m, ok := members[event.Attendance[i].UserID]; ok {
				event.Attendance[i].Member = m
			}
		}
	}

	result := analytics.ComputeEventAnalytics(event)

	return &result, nil
}
