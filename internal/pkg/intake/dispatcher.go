package intake

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/metrics"
)

const (
	DefaultWorkers   = 2
	DefaultQueueSize = 256
	sendTimeout      = 15 * time.Second
)

// Sender delivers a single record.
type Sender interface {
	Send(ctx context.Context, rec Record) error
}

// Dispatcher hands notifications to background workers so the request that
// committed the outcome never waits on the relay. Delivery failures are logged.
type Dispatcher struct {
	sender  Sender
	workers int
	jobs    chan Record
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	now     func() time.Time
}

func NewDispatcher(sender Sender, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		sender:  sender,
		workers: workers,
		jobs:    make(chan Record, queueSize),
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.stopCh = make(chan struct{})
	log.Infof("[Intake] Starting %d workers", d.workers)

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
}

// Stop drains queued records and waits for the workers to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}
	log.Info("[Intake] Stopping workers...")
	close(d.stopCh)
	d.running = false
	d.wg.Wait()
	log.Info("[Intake] All workers stopped")
}

// Notify implements checkout.Notifier. It never blocks: when the queue is full
// the record is dropped with a warning.
func (d *Dispatcher) Notify(_ context.Context, n checkout.Notification) {
	rec := NewRecord(n, d.now())
	select {
	case d.jobs <- rec:
	default:
		metrics.IntakeDeliveries.WithLabelValues("dropped").Inc()
		log.Warnf("[Intake] Queue full, dropping record for draft %s", rec.DraftID)
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for {
		select {
		case rec := <-d.jobs:
			d.deliver(id, rec)
		case <-d.stopCh:
			for {
				select {
				case rec := <-d.jobs:
					d.deliver(id, rec)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(worker int, rec Record) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, rec); err != nil {
		metrics.IntakeDeliveries.WithLabelValues("failed").Inc()
		log.Errorf("[Intake] Worker %d: delivery for draft %s (%s) failed: %v", worker, rec.DraftID, rec.PaymentStatus, err)
		return
	}
	metrics.IntakeDeliveries.WithLabelValues("delivered").Inc()
	log.Infof("[Intake] Worker %d: delivered draft %s (%s)", worker, rec.DraftID, rec.PaymentStatus)
}
