package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/notifications"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ErrClosed is returned by Submit after Close
var ErrClosed = errors.New("sync coordinator closed")

// Reconciler receives the IDs a backend assigned in place of provisional ones
type Reconciler interface {
	RemapColumn(from, to types.ColumnID)
	RemapCard(from, to types.CardID)
}

// Coordinator mirrors committed mutations onto a backend asynchronously
type Coordinator struct {
	backend     backend.Backend
	mode        Mode
	logger      *slog.Logger
	notes       *notifications.Center
	publisher   events.Publisher
	maxInFlight int64
	callTimeout time.Duration

	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	status atomic.Int32
	stats  Stats

	mu         sync.Mutex
	closed     bool
	reconciler Reconciler
}

// New creates a coordinator. b may be nil in simulated mode.
func New(b backend.Backend, opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		backend:     b,
		mode:        ModeLive,
		logger:      slog.Default(),
		notes:       notifications.NewCenter(0),
		maxInFlight: DefaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.mode == ModeLive && c.backend == nil {
		return nil, fmt.Errorf("live persistence requires a backend")
	}
	c.sem = semaphore.NewWeighted(c.maxInFlight)
	return c, nil
}

// Mode returns the configured persistence mode
func (c *Coordinator) Mode() Mode { return c.mode }

// Status returns the last observed backend health
func (c *Coordinator) Status() Status { return Status(c.status.Load()) }

// Stats returns a snapshot of the coordinator counters
func (c *Coordinator) Stats() StatsSnapshot { return c.stats.Snapshot() }

// Notifications returns the notification center operations are reported to
func (c *Coordinator) Notifications() *notifications.Center { return c.notes }

// SetReconciler registers the receiver of server-assigned IDs
func (c *Coordinator) SetReconciler(r Reconciler) {
	c.mu.Lock()
	c.reconciler = r
	c.mu.Unlock()
}

// Submit hands an operation off for mirroring and returns immediately
func (c *Coordinator) Submit(op Operation) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stats.submitted.Add(1)

	if c.mode == ModeSimulated {
		c.mu.Unlock()
		c.stats.simulated.Add(1)
		c.notes.Add(notifications.LevelInfo, op.Kind.Describe()+notifications.MockSuffix)
		c.logger.Debug("simulated sync", "op", op.Kind, "id", op.EntityID())
		return nil
	}

	c.wg.Add(1)
	c.mu.Unlock()

	go c.run(op)
	return nil
}

func (c *Coordinator) run(op Operation) {
	defer c.wg.Done()

	// Acquire never fails with a background context
	_ = c.sem.Acquire(context.Background(), 1)
	defer c.sem.Release(1)

	c.stats.inFlight.Add(1)
	defer c.stats.inFlight.Add(-1)

	ctx := context.Background()
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	if err := c.call(ctx, op); err != nil {
		c.markDegraded(op, err)
		return
	}
	c.markOnline(op)
}

// call performs the backend request for op, reporting reassigned IDs
func (c *Coordinator) call(ctx context.Context, op Operation) error {
	switch op.Kind {
	case OpCreateColumn:
		created, err := c.backend.CreateColumn(ctx, op.Column)
		if err != nil {
			return err
		}
		if !created.ID.IsZero() && created.ID != op.Column.ID {
			c.stats.remapped.Add(1)
			if r := c.currentReconciler(); r != nil {
				r.RemapColumn(op.Column.ID, created.ID)
			}
		}
		return nil
	case OpUpdateColumn:
		return c.backend.UpdateColumn(ctx, op.Column)
	case OpDeleteColumn:
		return c.backend.DeleteColumn(ctx, op.ColumnID)
	case OpCreateCard:
		created, err := c.backend.CreateCard(ctx, op.Card)
		if err != nil {
			return err
		}
		if !created.ID.IsZero() && created.ID != op.Card.ID {
			c.stats.remapped.Add(1)
			if r := c.currentReconciler(); r != nil {
				r.RemapCard(op.Card.ID, created.ID)
			}
		}
		return nil
	case OpUpdateCard:
		return c.backend.UpdateCard(ctx, op.Card)
	case OpDeleteCard:
		return c.backend.DeleteCard(ctx, op.CardID)
	case OpMoveCard:
		return c.backend.MoveCard(ctx, op.CardID, op.ColumnID, op.Order)
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
}

func (c *Coordinator) currentReconciler() Reconciler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reconciler
}

// markDegraded records a failed call. The local mutation stays in place.
func (c *Coordinator) markDegraded(op Operation, err error) {
	c.stats.failed.Add(1)
	c.logger.Warn("backend call failed, keeping local change",
		"op", op.Kind,
		"id", op.EntityID(),
		"board", op.BoardID,
		"error", err)
	c.notes.Add(notifications.LevelWarning, op.Kind.Describe()+notifications.MockSuffix)

	if c.status.CompareAndSwap(int32(StatusOnline), int32(StatusDegraded)) {
		c.publish(events.EventSyncDegraded, op.BoardID)
	}
}

func (c *Coordinator) markOnline(op Operation) {
	c.stats.succeeded.Add(1)
	if c.status.CompareAndSwap(int32(StatusDegraded), int32(StatusOnline)) {
		c.logger.Info("backend reachable again", "op", op.Kind)
		c.publish(events.EventSyncRecovered, op.BoardID)
	}
}

func (c *Coordinator) publish(t events.EventType, boardID types.BoardID) {
	if c.publisher != nil {
		c.publisher.Publish(events.Event{Type: t, BoardID: boardID})
	}
}

// Drain blocks until every submitted call has finished or ctx is done
func (c *Coordinator) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting operations and waits for in-flight calls
func (c *Coordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.Drain(ctx)
}
