package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuffer is the subscriber channel size used when Subscribe is given
// a non-positive buffer
const DefaultBuffer = 16

// Bus is an in-process fan-out of change events. Publishing never blocks: a
// subscriber whose buffer is full misses the event, which is safe because
// every event only means "re-read the board".
type Bus struct {
	mu              sync.RWMutex
	subscribers     map[int]chan Event
	nextID          int
	sequenceCounter atomic.Int64
	dropped         atomic.Int64
	closed          bool
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]chan Event)}
}

// Publish stamps the event with a sequence number and timestamp and delivers
// it to all subscribers
func (b *Bus) Publish(event Event) {
	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
			slog.Debug("subscriber buffer full, dropping event",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
}

// Subscribe registers a subscriber with the given channel buffer
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close removes every subscriber and closes their channels
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}

// Dropped returns how many deliveries were skipped because a buffer was full
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// SubscriberCount returns the number of active subscribers
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
