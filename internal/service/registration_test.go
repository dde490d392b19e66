package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/registration"
	"github.com/charism-app/charism-events/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRegistrationService_Register_Success(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(store, notifier, log)

	event := &domain.Event{ID: "e1", Title: "Food Drive"}

	store.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	store.EXPECT().Save(mock.Anything, event).Return(nil)
	notifier.EXPECT().NotifyBatchProcessed(mock.Anything, event, mock.Anything).Return()

	outcomes, err := svc.Register(context.Background(), "e1", []registration.Request{
		{UserID: "u1"}, {UserID: "u2"},
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, registration.ResultSuccess, outcomes[0].Status)
	assert.Equal(t, registration.ResultSuccess, outcomes[1].Status)
	assert.Len(t, event.Attendance, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(store, notifier, log)

	store.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "missing", []registration.Request{{UserID: "u1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

// The event is persisted exactly once no matter how many batches the
// request list spans.
func TestRegistrationService_Register_SingleSave(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(store, notifier, log)

	event := &domain.Event{ID: "e1"}
	var requests []registration.Request
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o"} {
		requests = append(requests, registration.Request{UserID: id})
	}

	store.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	store.EXPECT().Save(mock.Anything, event).Return(nil).Once()
	notifier.EXPECT().NotifyBatchProcessed(mock.Anything, event, mock.Anything).Return()

	outcomes, err := svc.Register(context.Background(), "e1", requests)

	require.NoError(t, err)
	assert.Len(t, outcomes, 15)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_SaveError(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(store, notifier, log)

	event := &domain.Event{ID: "e1"}
	saveErr := errors.New("write conflict")

	store.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	store.EXPECT().Save(mock.Anything, event).Return(saveErr)

	_, err := svc.Register(context.Background(), "e1", []registration.Request{{UserID: "u1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
}

func TestRegistrationService_Register_EmptyRequests(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(store, notifier, log)

	event := &domain.Event{ID: "e1"}

	store.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	store.EXPECT().Save(mock.Anything, event).Return(nil)

	outcomes, err := svc.Register(context.Background(), "e1", nil)

	require.NoError(t, err)
	assert.Empty(t, outcomes) // no notification for an empty batch
}
