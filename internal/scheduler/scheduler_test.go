package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_DisablesPastEvents(t *testing.T) {
	archiver := mocks.NewMockEventArchiver(t)
	log := newTestLogger(t)

	s := New(archiver, 50*time.Millisecond, log)

	disabled := []*domain.Event{
		{ID: "e1", Title: "Old Drive", Status: domain.EventStatusDisabled},
	}
	archiver.EXPECT().DisablePast(mock.Anything).Return(disabled, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(archiver.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	archiver := mocks.NewMockEventArchiver(t)
	log := newTestLogger(t)

	s := New(archiver, 50*time.Millisecond, log)

	archiver.EXPECT().DisablePast(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(archiver.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	archiver := mocks.NewMockEventArchiver(t)
	log := newTestLogger(t)

	s := New(archiver, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
