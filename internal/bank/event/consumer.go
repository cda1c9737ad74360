package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.LedgerEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// ReceiptConsumer drains the bus with a fixed pool of workers. Each event
// ID is handled at most once; a failing handler is retried with doubling
// backoff until MaxRetries is spent.
type ReceiptConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
	stopOnce    sync.Once
	quit        chan struct{}
}

func NewReceiptConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *ReceiptConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	maxRetries := max(cfg.MaxRetries, 0)

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &ReceiptConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		quit:        make(chan struct{}),
	}
}

func (c *ReceiptConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for queued events to drain. Pending
// backoffs are cut short once ctx is done.
func (c *ReceiptConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		c.stopOnce.Do(func() { close(c.quit) })
		return ctx.Err()
	}
}

func (c *ReceiptConsumer) worker() {
	defer c.wg.Done()

	events := c.bus.Subscribe()
	for {
		select {
		case event := <-events:
			c.processEvent(event)
		case <-c.bus.Done():
			c.drain(events)
			return
		}
	}
}

// drain handles whatever is still buffered after the bus closed.
func (c *ReceiptConsumer) drain(events <-chan entity.LedgerEvent) {
	for {
		select {
		case event := <-events:
			c.processEvent(event)
		default:
			return
		}
	}
}

func (c *ReceiptConsumer) processEvent(event entity.LedgerEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != "" {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate ledger event", "event_id", event.EventID, "account_id", event.AccountID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to issue receipt after retries", "event_id", event.EventID, "account_id", event.AccountID, "error", err)
			return
		}

		if !c.sleepBackoff(backoff) {
			return
		}
		backoff *= 2
	}
}

func (c *ReceiptConsumer) sleepBackoff(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.quit:
		return false
	}
}

// LogReceipts writes one structured log line per ledger event.
type LogReceipts struct{}

func (LogReceipts) Handle(ctx context.Context, event entity.LedgerEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	attrs := []any{
		"event_id", event.EventID,
		"account_id", event.AccountID,
		"operation", event.Operation,
		"amount", event.Amount.String(),
		"balance", event.Balance.String(),
	}
	if event.RecipientID != "" {
		attrs = append(attrs, "recipient_id", event.RecipientID)
	}
	if event.Timestamp != "" {
		attrs = append(attrs, "timestamp", event.Timestamp)
	}

	slog.InfoContext(ctx, "receipt issued", attrs...)
	return nil
}
