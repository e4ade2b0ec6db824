package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRefresher is a mock implementation of Refresher
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestWorker_RunsRefresherOnInterval(t *testing.T) {
	refresher := new(MockRefresher)

	var mu sync.Mutex
	calls := 0
	refresher.On("Refresh", mock.Anything).Run(func(mock.Arguments) {
		mu.Lock()
		calls++
		mu.Unlock()
	}).Return(nil)

	worker := NewWorker(refresher, 10*time.Millisecond)
	go worker.Start(context.Background())

	time.Sleep(60 * time.Millisecond)
	worker.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, calls, 2)
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	refresher := new(MockRefresher)
	refresher.On("Refresh", mock.Anything).Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewWorker(refresher, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorker_ContinuesAfterRefreshError(t *testing.T) {
	refresher := new(MockRefresher)

	var mu sync.Mutex
	calls := 0
	refresher.On("Refresh", mock.Anything).Run(func(mock.Arguments) {
		mu.Lock()
		calls++
		mu.Unlock()
	}).Return(errors.New("upstream down"))

	worker := NewWorker(refresher, 10*time.Millisecond)
	go worker.Start(context.Background())

	time.Sleep(60 * time.Millisecond)
	worker.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, calls, 2, "errors must not kill the loop")
}
