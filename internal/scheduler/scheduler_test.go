package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/CristianSsousa/new-kitchen-web/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_PurgesExpired(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	log := newTestLogger(t)

	s := New(purger, 50*time.Millisecond, log)

	purger.EXPECT().PurgeExpired(mock.Anything).Return(int64(2), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	log := newTestLogger(t)

	s := New(purger, 50*time.Millisecond, log)

	purger.EXPECT().PurgeExpired(mock.Anything).Return(int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	log := newTestLogger(t)

	s := New(purger, time.Second, log) // interval longer than test

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

func TestScheduler_MultipleTicks(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	log := newTestLogger(t)

	s := New(purger, 30*time.Millisecond, log)

	purger.EXPECT().PurgeExpired(mock.Anything).Return(int64(0), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 3)
}
