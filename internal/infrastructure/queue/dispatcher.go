package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/pkg/metrics"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher records audit entries off the request path. Entries are routed
// by product id so the trail of one product is written in order.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	service ports.AuditService
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to its worker. It never blocks: when the worker's
// buffer is full, or the dispatcher is stopped, the entry is dropped and logged.
func (d *Dispatcher) Enqueue(entry domain.AuditEntry) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(entry, "dispatcher stopped")
		return
	}

	idx := d.shardIndex(entry.ProductID)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.drop(entry, "worker queue full")
	}
}

// Stop closes the queues and waits until pending entries are written.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(productID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) drop(entry domain.AuditEntry, reason string) {
	metrics.AuditErrorsTotal.Inc()
	d.log.Warn().
		Str("reason", reason).
		Str("action", string(entry.Action)).
		Int64("product_id", entry.ProductID).
		Msg("audit entry dropped")
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for entry := range ch {
		metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		if err := d.service.Record(context.WithoutCancel(ctx), entry); err != nil {
			metrics.AuditErrorsTotal.Inc()
			d.log.Error().Err(err).
				Int64("product_id", entry.ProductID).
				Int("worker_id", id).
				Msg("audit entry not recorded")
		}
	}
}
