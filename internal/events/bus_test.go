package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch1, cancel1 := bus.Subscribe(4)
	defer cancel1()
	ch2, cancel2 := bus.Subscribe(4)
	defer cancel2()

	bus.Publish(Event{Type: EventCardsChanged, BoardID: "b1"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		evt := <-ch
		assert.Equal(t, EventCardsChanged, evt.Type)
		assert.Equal(t, "b1", evt.BoardID.String())
		assert.False(t, evt.Timestamp.IsZero())
	}
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(10)
	defer cancel()

	for i := 0; i < 5; i++ {
		bus.Publish(Event{Type: EventColumnsChanged})
	}

	var last int64
	for i := 0; i < 5; i++ {
		evt := <-ch
		assert.Greater(t, evt.SequenceID, last)
		last = evt.SequenceID
	}
}

func TestBus_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(Event{Type: EventCardsChanged})
	bus.Publish(Event{Type: EventCardsChanged})
	bus.Publish(Event{Type: EventCardsChanged})

	assert.Len(t, ch, 1)
	assert.Equal(t, int64(2), bus.Dropped())
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	require.Equal(t, 1, bus.SubscriberCount())

	cancel()
	cancel() // second call is a no-op

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, bus.SubscriberCount())

	// publishing after cancel must not panic
	bus.Publish(Event{Type: EventCardsChanged})
}

func TestBus_SubscribeAfterClose(t *testing.T) {
	bus := NewBus()
	bus.Close()

	ch, cancel := bus.Subscribe(1)
	defer cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(100)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				bus.Publish(Event{Type: EventCardsChanged})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ch, 100)
}
