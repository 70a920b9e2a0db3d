package intake

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu      sync.Mutex
	records []Record
	err     error
	block   chan struct{}
}

func (s *recordingSender) Send(_ context.Context, rec Record) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func TestDispatcherDeliversQueuedNotifications(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 2, 8)
	d.Start()

	n := testNotification(t)
	d.Notify(context.Background(), n)

	assert.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)
	d.Stop()

	assert.Equal(t, "000123456789", sender.records[0].Reference)
	assert.Equal(t, "successful", sender.records[0].PaymentStatus)
}

func TestDispatcherStopDrainsQueue(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 1, 8)

	n := testNotification(t)
	for i := 0; i < 3; i++ {
		d.Notify(context.Background(), n)
	}
	d.Start()
	d.Stop()

	assert.Equal(t, 3, sender.count())
}

func TestDispatcherNotifyNeverBlocks(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	d := NewDispatcher(sender, 1, 1)
	d.Start()

	n := testNotification(t)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Notify(context.Background(), n)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
	close(sender.block)
	d.Stop()
	assert.LessOrEqual(t, sender.count(), 2)
}

func TestDispatcherDeliveryFailureIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("relay down")}
	d := NewDispatcher(sender, 1, 4)
	d.Start()

	require.NotPanics(t, func() {
		d.Notify(context.Background(), testNotification(t))
	})
	d.Stop()
	assert.Equal(t, 1, sender.count())
}

func TestDispatcherStartStopIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, 0, 0)
	assert.Equal(t, DefaultWorkers, d.workers)
	d.Start()
	d.Start()
	d.Stop()
	d.Stop()
}
