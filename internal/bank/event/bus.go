package event

import (
	"context"
	"errors"
	"sync"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
)

var ErrBusClosed = errors.New("event bus is closed")

// Bus fans ledger events out to the receipt workers over a buffered channel.
//
// The channel itself is never closed; Close signals Done instead, so a
// publisher blocked on a full buffer is released rather than holding up
// shutdown. Events racing with Close may be dropped.
type Bus struct {
	ch   chan entity.LedgerEvent
	done chan struct{}
	once sync.Once
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch:   make(chan entity.LedgerEvent, buffer),
		done: make(chan struct{}),
	}
}

func (b *Bus) Publish(ctx context.Context, event entity.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-b.done:
		return ErrBusClosed
	default:
	}

	select {
	case b.ch <- event:
		return nil
	case <-b.done:
		return ErrBusClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) Subscribe() <-chan entity.LedgerEvent {
	return b.ch
}

// Done is closed once Close has been called.
func (b *Bus) Done() <-chan struct{} {
	return b.done
}

func (b *Bus) Close() {
	b.once.Do(func() { close(b.done) })
}
